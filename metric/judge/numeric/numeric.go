//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package numeric implements the bounded-range scoring discipline. The
// judge model answers with a number inside the configured range; the
// verdict compares it against a threshold with a configurable operator.
package numeric

import (
	"fmt"

	"github.com/arbiterhq/arbiter-go/metric"
	"github.com/arbiterhq/arbiter-go/metric/judge"
	"github.com/arbiterhq/arbiter-go/metric/prompt"
	"github.com/arbiterhq/arbiter-go/metric/schema"
	"github.com/arbiterhq/arbiter-go/metric/score"
	"github.com/arbiterhq/arbiter-go/model"
)

// ClassName identifies this judge implementation in serialized configs.
const ClassName = "NumericJudge"

// Default score range when no explicit bounds are configured.
const (
	DefaultMinScore = 0.0
	DefaultMaxScore = 1.0
)

// Config configures a numeric judge. Unset bounds default to
// [DefaultMinScore, DefaultMaxScore]; an unset threshold defaults to
// the midpoint of the range.
type Config struct {
	metric.Config
	// MinScore is the lower bound of the score range. Set together
	// with MaxScore or not at all.
	MinScore *float64 `json:"min_score,omitempty"`
	// MaxScore is the upper bound of the score range.
	MaxScore *float64 `json:"max_score,omitempty"`
	// Threshold is the pass threshold, inside [MinScore, MaxScore].
	Threshold *float64 `json:"threshold,omitempty"`
	// ThresholdOperator compares score against threshold, ">=" when unset.
	ThresholdOperator score.Operator `json:"threshold_operator,omitempty"`
}

// Judge is a numeric metric instance.
type Judge struct {
	*judge.Engine
	d *discipline
}

// New constructs a numeric judge. Bounds must be set together; the
// resolved threshold must lie inside the resolved range.
func New(cfg *Config, opt ...judge.Option) (*Judge, error) {
	if cfg == nil {
		return nil, &metric.ConfigError{Reason: "config is nil"}
	}
	cfg.ScoreType = metric.ScoreTypeNumeric
	if cfg.MetricType == "" {
		cfg.MetricType = metric.MetricTypeRAG
	}
	if cfg.ClassName == "" {
		cfg.ClassName = ClassName
	}
	d, err := newDiscipline(cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.Config.Validate(); err != nil {
		return nil, err
	}
	engine, err := judge.NewEngine(&cfg.Config, d, opt...)
	if err != nil {
		return nil, err
	}
	return &Judge{Engine: engine, d: d}, nil
}

// FromMap builds a numeric judge from a loosely typed definition, as
// decoded from JSON or YAML. Unknown keys are ignored.
func FromMap(fields judge.Fields, opt ...judge.Option) (judge.Judge, error) {
	shared, err := fields.SharedConfig()
	if err != nil {
		return nil, err
	}
	cfg := &Config{Config: shared}
	if cfg.MinScore, err = fields.Float("min_score"); err != nil {
		return nil, err
	}
	if cfg.MaxScore, err = fields.Float("max_score"); err != nil {
		return nil, err
	}
	if cfg.Threshold, err = fields.Float("threshold"); err != nil {
		return nil, err
	}
	operator, err := fields.String("threshold_operator")
	if err != nil {
		return nil, err
	}
	if operator != "" {
		if cfg.ThresholdOperator, err = score.ParseOperator(operator); err != nil {
			return nil, err
		}
	}
	return New(cfg, opt...)
}

// MinScore returns the resolved lower bound.
func (j *Judge) MinScore() float64 { return j.d.min }

// MaxScore returns the resolved upper bound.
func (j *Judge) MaxScore() float64 { return j.d.max }

// Threshold returns the resolved pass threshold.
func (j *Judge) Threshold() float64 { return j.d.threshold }

// ThresholdOperator returns the comparison used against the threshold.
func (j *Judge) ThresholdOperator() score.Operator { return j.d.operator }

// discipline implements judge.Discipline for bounded numeric scores.
// Bounds and threshold are resolved to concrete values at construction.
type discipline struct {
	min       float64
	max       float64
	threshold float64
	operator  score.Operator
}

func newDiscipline(cfg *Config) (*discipline, error) {
	if cfg.MinScore != nil && cfg.MaxScore == nil {
		return nil, &metric.ConfigError{
			Field:  "max_score",
			Reason: "only min_score was set, please set max_score",
		}
	}
	if cfg.MinScore == nil && cfg.MaxScore != nil {
		return nil, &metric.ConfigError{
			Field:  "min_score",
			Reason: "only max_score was set, please set min_score",
		}
	}
	d := &discipline{min: DefaultMinScore, max: DefaultMaxScore}
	if cfg.MinScore != nil {
		d.min = *cfg.MinScore
		d.max = *cfg.MaxScore
	}
	if d.min >= d.max {
		return nil, &metric.ConfigError{
			Field:  "min_score",
			Reason: fmt.Sprintf("min_score (%v) must be less than max_score (%v)", d.min, d.max),
		}
	}
	if cfg.Threshold != nil {
		d.threshold = *cfg.Threshold
	} else {
		d.threshold = d.min + (d.max-d.min)/2
	}
	if d.threshold < d.min || d.threshold > d.max {
		return nil, &metric.ConfigError{
			Field:  "threshold",
			Reason: fmt.Sprintf("threshold must be between %v and %v", d.min, d.max),
		}
	}
	d.operator = cfg.ThresholdOperator
	if d.operator == "" {
		d.operator = score.DefaultOperator(metric.ScoreTypeNumeric)
	}
	if !d.operator.ValidFor(metric.ScoreTypeNumeric) {
		return nil, &metric.ConfigError{
			Field:  "threshold_operator",
			Reason: fmt.Sprintf("invalid operator for numeric scores: %s", d.operator),
		}
	}
	return d, nil
}

func (d *discipline) ResponseSchema() *model.StructuredOutput {
	return schema.Numeric("numeric_evaluation", d.min, d.max)
}

func (d *discipline) Verdict(scoreValue any) (bool, error) {
	value, err := toFloat(scoreValue)
	if err != nil {
		return false, err
	}
	return score.Numeric(value, d.threshold, d.operator)
}

// ErrorScore returns the range minimum, the worst possible score.
func (d *discipline) ErrorScore() any { return d.min }

func (d *discipline) Metadata() map[string]any {
	return map[string]any{
		metric.DetailMinScore:          d.min,
		metric.DetailMaxScore:          d.max,
		metric.DetailThreshold:         d.threshold,
		metric.DetailThresholdOperator: d.operator.String(),
	}
}

func (d *discipline) FillPromptVars(vars *prompt.Vars) {
	vars.MinScore = d.min
	vars.MaxScore = d.max
}

// toFloat widens the numeric types JSON and YAML decoders produce.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("numeric score must be a number, got: %T", v)
	}
}
