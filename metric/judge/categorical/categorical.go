//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package categorical implements the closed-label-set scoring
// discipline. The judge model must answer with exactly one of the
// configured category labels; the verdict is membership of that label
// in the passing set.
package categorical

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
const ClassName = "CategoricalJudge"

// ErrorScore is the sentinel score recorded on failed evaluations.
const ErrorScore = "error"

// Config configures a categorical judge.
type Config struct {
	metric.Config
	// Categories is the ordered closed set of valid labels.
	Categories []string `json:"categories"`
	// PassingCategories is the subset of Categories counted as passing.
	PassingCategories []string `json:"passing_categories"`
}

// Validate checks the categorical fields on top of the shared ones.
func (c *Config) Validate() error {
	if err := c.validateCategories(); err != nil {
		return err
	}
	if err := c.validatePassing(); err != nil {
		return err
	}
	return c.Config.Validate()
}

func (c *Config) validateCategories() error {
	if len(c.Categories) < 2 {
		return &metric.ConfigError{
			Field:  "categories",
			Reason: fmt.Sprintf("categories must contain at least 2 labels, got: %v", c.Categories),
		}
	}
	seen := make(map[string]struct{}, len(c.Categories))
	for _, label := range c.Categories {
		if _, dup := seen[label]; dup {
			return &metric.ConfigError{
				Field:  "categories",
				Reason: fmt.Sprintf("duplicate category label: %s", label),
			}
		}
		seen[label] = struct{}{}
	}
	return nil
}

func (c *Config) validatePassing() error {
	if len(c.PassingCategories) == 0 {
		return &metric.ConfigError{
			Field:  "passing_categories",
			Reason: "passing categories must not be empty",
		}
	}
	if len(c.PassingCategories) > len(c.Categories) {
		return &metric.ConfigError{
			Field: "passing_categories",
			Reason: fmt.Sprintf("the number of passing categories (%d) must be less than or equal to "+
				"the number of categories (%d)", len(c.PassingCategories), len(c.Categories)),
		}
	}
	valid := make(map[string]struct{}, len(c.Categories))
	for _, label := range c.Categories {
		valid[label] = struct{}{}
	}
	for _, label := range c.PassingCategories {
		if _, ok := valid[label]; !ok {
			return &metric.ConfigError{
				Field: "passing_categories",
				Reason: fmt.Sprintf("passing category %q is not present in categories %v",
					label, c.Categories),
			}
		}
	}
	return nil
}

// NormalizePassing converts a single label or a list of labels into a
// []string. It mirrors the loose input accepted in serialized configs.
func NormalizePassing(v any) ([]string, error) {
	switch passing := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{passing}, nil
	case []string:
		return passing, nil
	case []any:
		labels := make([]string, 0, len(passing))
		for _, item := range passing {
			label, ok := item.(string)
			if !ok {
				return nil, &metric.ConfigError{
					Field:  "passing_categories",
					Reason: fmt.Sprintf("passing category must be a string, got: %T", item),
				}
			}
			labels = append(labels, label)
		}
		return labels, nil
	default:
		return nil, &metric.ConfigError{
			Field:  "passing_categories",
			Reason: fmt.Sprintf("passing categories must be a string or a list, got: %T", v),
		}
	}
}

// FromMap builds a categorical judge from a loosely typed definition,
// as decoded from JSON or YAML. Unknown keys are ignored. A single
// passing label is accepted and normalized into a one-element list.
func FromMap(fields judge.Fields, opt ...judge.Option) (judge.Judge, error) {
	shared, err := fields.SharedConfig()
	if err != nil {
		return nil, err
	}
	categories, err := fields.StringSlice("categories")
	if err != nil {
		return nil, err
	}
	passing, err := NormalizePassing(fields["passing_categories"])
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Config:            shared,
		Categories:        categories,
		PassingCategories: passing,
	}
	return New(cfg, opt...)
}

// Judge is a categorical metric instance.
type Judge struct {
	*judge.Engine
	cfg *Config
}

// New constructs a categorical judge. Discipline parameters are
// validated before any shared configuration, so a bad category list is
// reported even when the shared fields are also wrong.
func New(cfg *Config, opt ...judge.Option) (*Judge, error) {
	if cfg == nil {
		return nil, &metric.ConfigError{Reason: "config is nil"}
	}
	cfg.ScoreType = metric.ScoreTypeCategorical
	if cfg.MetricType == "" {
		cfg.MetricType = metric.MetricTypeRAG
	}
	if cfg.ClassName == "" {
		cfg.ClassName = ClassName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &discipline{
		categories: append([]string(nil), cfg.Categories...),
		passing:    append([]string(nil), cfg.PassingCategories...),
	}
	engine, err := judge.NewEngine(&cfg.Config, d, opt...)
	if err != nil {
		return nil, err
	}
	return &Judge{Engine: engine, cfg: cfg}, nil
}

// Categories returns the configured label set.
func (j *Judge) Categories() []string {
	return append([]string(nil), j.cfg.Categories...)
}

// PassingCategories returns the configured passing labels, always as a
// list even when the config was built from a single label.
func (j *Judge) PassingCategories() []string {
	return append([]string(nil), j.cfg.PassingCategories...)
}

// discipline implements judge.Discipline for the closed label set.
type discipline struct {
	categories []string
	passing    []string
}

func (d *discipline) ResponseSchema() *model.StructuredOutput {
	return schema.Categorical("categorical_evaluation", d.categories)
}

// Verdict passes iff the label is in the passing set. Matching is
// exact and case-sensitive.
func (d *discipline) Verdict(scoreValue any) (bool, error) {
	label, ok := scoreValue.(string)
	if !ok {
		return false, fmt.Errorf("categorical score must be a string, got: %T", scoreValue)
	}
	return score.Membership(label, d.passing, score.OperatorEqual)
}

func (d *discipline) ErrorScore() any { return ErrorScore }

func (d *discipline) Metadata() map[string]any {
	return map[string]any{
		metric.DetailCategories:        d.categories,
		metric.DetailPassingCategories: d.passing,
	}
}

func (d *discipline) FillPromptVars(vars *prompt.Vars) {
	vars.Categories = d.categories
	vars.PassingCategories = d.passing
}
