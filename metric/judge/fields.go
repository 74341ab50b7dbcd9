//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

package judge

import (
	"fmt"

	"github.com/arbiterhq/arbiter-go/metric"
)

// Fields is a loosely typed configuration map, as decoded from JSON or
// YAML metric definitions. Lookups are tolerant: unknown keys are
// ignored by the disciplines, absent keys fall back to defaults, and
// only present-but-mistyped values are errors.
type Fields map[string]any

// String returns the string under key, or "" when absent.
func (f Fields) String(key string) (string, error) {
	v, ok := f[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &metric.ConfigError{
			Field:  key,
			Reason: fmt.Sprintf("expected a string, got: %T", v),
		}
	}
	return s, nil
}

// Bool returns the bool under key, or def when absent.
func (f Fields) Bool(key string, def bool) (bool, error) {
	v, ok := f[key]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, &metric.ConfigError{
			Field:  key,
			Reason: fmt.Sprintf("expected a bool, got: %T", v),
		}
	}
	return b, nil
}

// Float returns the number under key, or (nil) when absent. JSON
// decodes all numbers as float64; ints from YAML are widened.
func (f Fields) Float(key string) (*float64, error) {
	v, ok := f[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		return &n, nil
	case float32:
		widened := float64(n)
		return &widened, nil
	case int:
		widened := float64(n)
		return &widened, nil
	case int64:
		widened := float64(n)
		return &widened, nil
	default:
		return nil, &metric.ConfigError{
			Field:  key,
			Reason: fmt.Sprintf("expected a number, got: %T", v),
		}
	}
}

// StringSlice returns the string list under key, or nil when absent.
func (f Fields) StringSlice(key string) ([]string, error) {
	v, ok := f[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch items := v.(type) {
	case []string:
		return items, nil
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, &metric.ConfigError{
					Field:  key,
					Reason: fmt.Sprintf("expected a list of strings, got element: %T", item),
				}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &metric.ConfigError{
			Field:  key,
			Reason: fmt.Sprintf("expected a list of strings, got: %T", v),
		}
	}
}

// SharedConfig extracts the discipline-independent metric fields.
// requires_ground_truth defaults to true when absent, matching the
// conservative default for reference-based metrics.
func (f Fields) SharedConfig() (metric.Config, error) {
	var cfg metric.Config
	var err error
	if cfg.Name, err = f.String("name"); err != nil {
		return cfg, err
	}
	if cfg.Description, err = f.String("description"); err != nil {
		return cfg, err
	}
	if cfg.EvaluationPrompt, err = f.String("evaluation_prompt"); err != nil {
		return cfg, err
	}
	if cfg.EvaluationSteps, err = f.String("evaluation_steps"); err != nil {
		return cfg, err
	}
	if cfg.Reasoning, err = f.String("reasoning"); err != nil {
		return cfg, err
	}
	if cfg.EvaluationExamples, err = f.String("evaluation_examples"); err != nil {
		return cfg, err
	}
	if cfg.ClassName, err = f.String("class_name"); err != nil {
		return cfg, err
	}
	if cfg.RequiresGroundTruth, err = f.Bool("requires_ground_truth", true); err != nil {
		return cfg, err
	}
	if cfg.RequiresContext, err = f.Bool("requires_context", false); err != nil {
		return cfg, err
	}
	metricType, err := f.String("metric_type")
	if err != nil {
		return cfg, err
	}
	if metricType != "" {
		if cfg.MetricType, err = metric.ParseMetricType(metricType); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
