//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

package result

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arbiterhq/arbiter-go/metric"
)

func TestFromMetric(t *testing.T) {
	r := metric.NewResult("good", map[string]any{
		metric.DetailReason:       "well grounded",
		metric.DetailIsSuccessful: true,
	})
	mr := FromMetric("faithfulness", r)
	assert.Equal(t, "faithfulness", mr.MetricName)
	assert.Equal(t, "good", mr.Score)
	assert.True(t, mr.IsSuccessful)
	assert.Equal(t, "well grounded", mr.Reason)
	assert.False(t, mr.Errored())
}

func TestErroredFromFailedEvaluation(t *testing.T) {
	r := metric.NewResult("error", map[string]any{
		metric.DetailError:        "backend unreachable",
		metric.DetailIsSuccessful: false,
	})
	mr := FromMetric("faithfulness", r)
	assert.True(t, mr.Errored())
}

func TestErroredFromRejectedInput(t *testing.T) {
	mr := &MetricResult{MetricName: "faithfulness", Error: "input must be a non-empty string"}
	assert.True(t, mr.Errored())
}

func TestSummarize(t *testing.T) {
	run := &Run{
		CaseResults: []*CaseResult{
			{CaseID: "c1", MetricResults: []*MetricResult{
				{MetricName: "m1", IsSuccessful: true},
				{MetricName: "m2", IsSuccessful: false},
			}},
			{CaseID: "c2", MetricResults: []*MetricResult{
				{MetricName: "m1", Error: "rejected"},
				{MetricName: "m2", IsSuccessful: true},
			}},
		},
	}
	s := run.Summarize()
	assert.Equal(t, 2, s.TotalCases)
	assert.Equal(t, 4, s.TotalEvaluations)
	assert.Equal(t, 2, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 1, s.Errored)
	assert.Same(t, s, run.Summary)
}

func TestSummarizeEmptyRun(t *testing.T) {
	run := &Run{}
	s := run.Summarize()
	assert.Equal(t, 0, s.TotalCases)
	assert.Equal(t, 0, s.TotalEvaluations)
}
