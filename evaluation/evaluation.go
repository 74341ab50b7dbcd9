//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package evaluation runs a set of metrics against a set of cases.
//
// Evaluations fan out over a bounded worker pool; one slow or failing
// case never blocks the rest, and per-case problems are recorded on
// the run rather than aborting it.
package evaluation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arbiterhq/arbiter-go/evaluation/result"
	"github.com/arbiterhq/arbiter-go/log"
	"github.com/arbiterhq/arbiter-go/metric/judge"
)

// Case is one evaluation input: the triple under test plus optional
// context chunks.
type Case struct {
	// ID identifies the case; generated when empty.
	ID string `json:"id,omitempty"`
	// Input is the original query posed to the system under test.
	Input string `json:"input"`
	// Output is the system response under evaluation.
	Output string `json:"output"`
	// ExpectedOutput is the reference response, nil when absent.
	ExpectedOutput *string `json:"expected_output,omitempty"`
	// Contexts is the list of context chunks used for the response.
	Contexts []string `json:"contexts,omitempty"`
}

// Runner evaluates cases against a fixed set of judges.
type Runner struct {
	judges      []judge.Judge
	parallelism int
	store       result.Store
	runName     string
}

// NewRunner constructs a runner over the given judges.
func NewRunner(judges []judge.Judge, opt ...Option) (*Runner, error) {
	if len(judges) == 0 {
		return nil, fmt.Errorf("at least one judge is required")
	}
	opts := newOptions(opt...)
	return &Runner{
		judges:      judges,
		parallelism: opts.parallelism,
		store:       opts.store,
		runName:     opts.runName,
	}, nil
}

// Run evaluates every case against every judge and returns the
// assembled run. Individual evaluation problems are recorded on the
// corresponding metric result; Run itself fails only when the worker
// pool cannot be created or the configured store rejects the run.
func (r *Runner) Run(ctx context.Context, cases []*Case) (*result.Run, error) {
	run := &result.Run{
		RunID:     uuid.New().String(),
		RunName:   r.runName,
		CreatedAt: time.Now().UTC(),
	}
	if run.RunName == "" {
		run.RunName = run.RunID
	}

	run.CaseResults = make([]*result.CaseResult, len(cases))
	for i, c := range cases {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		run.CaseResults[i] = &result.CaseResult{
			CaseID:        c.ID,
			MetricResults: make([]*result.MetricResult, len(r.judges)),
		}
	}

	if err := r.evaluateAll(ctx, cases, run.CaseResults); err != nil {
		return nil, err
	}
	run.Summarize()

	if r.store != nil {
		if _, err := r.store.Save(ctx, run); err != nil {
			return run, fmt.Errorf("save run %s: %w", run.RunID, err)
		}
	}
	return run, nil
}

// evaluateOne runs a single (case, judge) pair. Evaluate returns an
// error only for malformed input; that is recorded as an errored
// metric result so the rest of the run proceeds.
func (r *Runner) evaluateOne(ctx context.Context, c *Case, j judge.Judge) *result.MetricResult {
	res, err := j.Evaluate(ctx, &judge.Request{
		Input:          c.Input,
		Output:         c.Output,
		ExpectedOutput: c.ExpectedOutput,
		Contexts:       c.Contexts,
	})
	if err != nil {
		log.Errorf("case %s: metric %s rejected input: %v", c.ID, j.Name(), err)
		return &result.MetricResult{
			MetricName: j.Name(),
			Error:      err.Error(),
		}
	}
	return result.FromMetric(j.Name(), res)
}
