//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package result defines the persisted shape of evaluation runs and
// the storage interface for them. The core never persists results on
// its own; callers opt in by attaching a Store to the runner.
package result

import (
	"context"
	"time"

	"github.com/arbiterhq/arbiter-go/metric"
)

// MetricResult is the outcome of one metric on one case.
type MetricResult struct {
	// MetricName identifies the metric instance.
	MetricName string `json:"metric_name"`
	// Score is the raw score, numeric or categorical label.
	Score any `json:"score,omitempty"`
	// IsSuccessful reports whether the score passed the verdict rule.
	IsSuccessful bool `json:"is_successful"`
	// Reason is the judge model's rationale.
	Reason string `json:"reason,omitempty"`
	// Details carries the full evaluation detail map.
	Details map[string]any `json:"details,omitempty"`
	// Error is set when the metric could not be evaluated at all,
	// e.g. the case was missing a required input.
	Error string `json:"error,omitempty"`
}

// FromMetric converts an evaluation outcome into its persisted form.
func FromMetric(metricName string, r *metric.Result) *MetricResult {
	return &MetricResult{
		MetricName:   metricName,
		Score:        r.Score,
		IsSuccessful: r.IsSuccessful(),
		Reason:       r.Reason(),
		Details:      r.Details,
	}
}

// Errored reports whether this metric did not produce a usable score,
// either because evaluation never ran or because it failed downstream.
func (r *MetricResult) Errored() bool {
	if r.Error != "" {
		return true
	}
	_, failed := r.Details[metric.DetailError]
	return failed
}

// CaseResult groups the metric outcomes for a single case.
type CaseResult struct {
	// CaseID identifies the case inside the run.
	CaseID string `json:"case_id"`
	// MetricResults holds one entry per metric, in runner order.
	MetricResults []*MetricResult `json:"metric_results,omitempty"`
}

// Summary aggregates a run.
type Summary struct {
	// TotalCases is the number of evaluated cases.
	TotalCases int `json:"total_cases"`
	// TotalEvaluations is cases times metrics.
	TotalEvaluations int `json:"total_evaluations"`
	// Passed counts evaluations whose verdict was successful.
	Passed int `json:"passed"`
	// Failed counts evaluations whose verdict was unsuccessful.
	Failed int `json:"failed"`
	// Errored counts evaluations that produced no usable score.
	Errored int `json:"errored"`
}

// Run is one complete evaluation run.
type Run struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`
	// RunName is a human-readable label, defaults to the run ID.
	RunName string `json:"run_name,omitempty"`
	// CaseResults holds one entry per case, in input order.
	CaseResults []*CaseResult `json:"case_results,omitempty"`
	// Summary aggregates the run.
	Summary *Summary `json:"summary,omitempty"`
	// CreatedAt is when the run started.
	CreatedAt time.Time `json:"created_at"`
}

// Summarize recomputes the run summary from its case results.
func (r *Run) Summarize() *Summary {
	s := &Summary{TotalCases: len(r.CaseResults)}
	for _, c := range r.CaseResults {
		for _, m := range c.MetricResults {
			s.TotalEvaluations++
			switch {
			case m.Errored():
				s.Errored++
			case m.IsSuccessful:
				s.Passed++
			default:
				s.Failed++
			}
		}
	}
	r.Summary = s
	return s
}

// Store persists evaluation runs.
type Store interface {
	// Save upserts a run and returns its ID.
	Save(ctx context.Context, run *Run) (string, error)
	// Get loads a run by ID.
	Get(ctx context.Context, runID string) (*Run, error)
	// List returns the stored run IDs.
	List(ctx context.Context) ([]string, error)
}
