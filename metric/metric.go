//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package metric defines metric configuration and evaluation results.
package metric

import (
	"fmt"
	"strings"
)

// ScoreType identifies the scoring discipline of a metric.
type ScoreType string

// Known score types.
const (
	ScoreTypeBinary      ScoreType = "binary"
	ScoreTypeNumeric     ScoreType = "numeric"
	ScoreTypeCategorical ScoreType = "categorical"
)

// ParseScoreType parses a score type string, case-insensitively.
func ParseScoreType(s string) (ScoreType, error) {
	switch ScoreType(strings.ToLower(s)) {
	case ScoreTypeBinary:
		return ScoreTypeBinary, nil
	case ScoreTypeNumeric:
		return ScoreTypeNumeric, nil
	case ScoreTypeCategorical:
		return ScoreTypeCategorical, nil
	default:
		return "", &ConfigError{Field: "score_type", Reason: fmt.Sprintf("unknown score type: %s", s)}
	}
}

// IsValid reports whether the score type is one of the known values.
func (t ScoreType) IsValid() bool {
	switch t {
	case ScoreTypeBinary, ScoreTypeNumeric, ScoreTypeCategorical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the score type.
func (t ScoreType) String() string {
	return string(t)
}

// MetricType classifies the domain a metric evaluates.
type MetricType string

// Known metric types.
const (
	MetricTypeRAG            MetricType = "rag"
	MetricTypeGeneration     MetricType = "generation"
	MetricTypeClassification MetricType = "classification"
)

// ParseMetricType parses a metric type string, case-insensitively.
func ParseMetricType(s string) (MetricType, error) {
	switch MetricType(strings.ToLower(s)) {
	case MetricTypeRAG:
		return MetricTypeRAG, nil
	case MetricTypeGeneration:
		return MetricTypeGeneration, nil
	case MetricTypeClassification:
		return MetricTypeClassification, nil
	default:
		return "", &ConfigError{Field: "metric_type", Reason: fmt.Sprintf("unknown metric type: %s", s)}
	}
}

// IsValid reports whether the metric type is one of the known values.
func (t MetricType) IsValid() bool {
	switch t {
	case MetricTypeRAG, MetricTypeGeneration, MetricTypeClassification:
		return true
	default:
		return false
	}
}

// String returns the string representation of the metric type.
func (t MetricType) String() string {
	return string(t)
}

// Config describes one configured metric instance.
//
// A Config is constructed once at metric-instantiation time, validated,
// and never mutated afterwards, so it may be read concurrently by
// parallel evaluations.
type Config struct {
	// Name uniquely identifies this metric instance.
	Name string `json:"name"`
	// Description explains what the metric measures.
	Description string `json:"description,omitempty"`
	// EvaluationPrompt contains the evaluator's main instructions.
	EvaluationPrompt string `json:"evaluation_prompt"`
	// EvaluationSteps contains the ordered evaluation guidance.
	EvaluationSteps string `json:"evaluation_steps,omitempty"`
	// Reasoning guides how the judge explains its score.
	Reasoning string `json:"reasoning,omitempty"`
	// EvaluationExamples contains few-shot example text.
	EvaluationExamples string `json:"evaluation_examples,omitempty"`
	// ScoreType selects the scoring discipline.
	ScoreType ScoreType `json:"score_type"`
	// MetricType classifies the metric domain.
	MetricType MetricType `json:"metric_type"`
	// RequiresGroundTruth requires an expected output at evaluation time.
	RequiresGroundTruth bool `json:"requires_ground_truth"`
	// RequiresContext requires context chunks at evaluation time.
	RequiresContext bool `json:"requires_context"`
	// ClassName identifies the judge implementation owning this config.
	ClassName string `json:"class_name,omitempty"`
}

// Validate checks the shared configuration fields.
func (c *Config) Validate() error {
	if c.EvaluationPrompt == "" {
		return &ConfigError{Field: "evaluation_prompt", Reason: "evaluation prompt is required"}
	}
	if !c.ScoreType.IsValid() {
		return &ConfigError{Field: "score_type", Reason: fmt.Sprintf("unknown score type: %s", c.ScoreType)}
	}
	if !c.MetricType.IsValid() {
		return &ConfigError{Field: "metric_type", Reason: fmt.Sprintf("unknown metric type: %s", c.MetricType)}
	}
	return nil
}
