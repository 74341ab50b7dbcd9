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
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbiterhq/arbiter-go/metric"
	"github.com/arbiterhq/arbiter-go/metric/prompt"
	"github.com/arbiterhq/arbiter-go/metric/schema"
	"github.com/arbiterhq/arbiter-go/model"
)

// fakeModel returns canned responses and records the last request.
type fakeModel struct {
	resp    *model.Response
	err     error
	lastReq *model.Request
}

func (m *fakeModel) Generate(_ context.Context, req *model.Request) (*model.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *fakeModel) Info() model.Info {
	return model.Info{Provider: "fake", Name: "fake-judge"}
}

// labelDiscipline is a minimal categorical-style discipline for engine
// tests.
type labelDiscipline struct {
	categories []string
	passing    []string
	verdictErr error
}

func (d *labelDiscipline) ResponseSchema() *model.StructuredOutput {
	return schema.Categorical("evaluation", d.categories)
}

func (d *labelDiscipline) Verdict(scoreValue any) (bool, error) {
	if d.verdictErr != nil {
		return false, d.verdictErr
	}
	label, ok := scoreValue.(string)
	if !ok {
		return false, fmt.Errorf("score is not a string: %v", scoreValue)
	}
	for _, p := range d.passing {
		if p == label {
			return true, nil
		}
	}
	return false, nil
}

func (d *labelDiscipline) ErrorScore() any { return "error" }

func (d *labelDiscipline) Metadata() map[string]any {
	return map[string]any{
		metric.DetailCategories:        d.categories,
		metric.DetailPassingCategories: d.passing,
	}
}

func (d *labelDiscipline) FillPromptVars(vars *prompt.Vars) {
	vars.Categories = d.categories
	vars.PassingCategories = d.passing
}

func testConfig() *metric.Config {
	return &metric.Config{
		Name:             "tone-check",
		Description:      "Checks the tone of the response.",
		EvaluationPrompt: "Judge whether the response tone is appropriate.",
		ScoreType:        metric.ScoreTypeCategorical,
		MetricType:       metric.MetricTypeGeneration,
	}
}

func testDiscipline() *labelDiscipline {
	return &labelDiscipline{
		categories: []string{"good", "bad"},
		passing:    []string{"good"},
	}
}

func newTestEngine(t *testing.T, cfg *metric.Config, d Discipline, m model.Model) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, d, WithModel(m))
	require.NoError(t, err)
	return e
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.EvaluationPrompt = ""
	_, err := NewEngine(cfg, testDiscipline(), WithModel(&fakeModel{}))
	require.Error(t, err)
	var cfgErr *metric.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNewEngineRejectsNilDiscipline(t *testing.T) {
	_, err := NewEngine(testConfig(), nil, WithModel(&fakeModel{}))
	require.Error(t, err)
}

func TestEvaluatePassingLabel(t *testing.T) {
	m := &fakeModel{resp: &model.Response{Object: map[string]any{
		"score":  "good",
		"reason": "The tone is friendly.",
	}}}
	e := newTestEngine(t, testConfig(), testDiscipline(), m)

	result, err := e.Evaluate(context.Background(), &Request{
		Input:  "How do I reset my password?",
		Output: "Go to settings and click reset.",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "good", result.Score)
	assert.True(t, result.IsSuccessful())
	assert.False(t, result.Failed())
	assert.Equal(t, "The tone is friendly.", result.Reason())
	assert.Equal(t, "good", result.Details[metric.DetailScore])

	// The rendered prompt travels on the result and in the request.
	promptText, _ := result.Details[metric.DetailPrompt].(string)
	assert.Contains(t, promptText, "Judge whether the response tone is appropriate.")
	require.NotNil(t, m.lastReq)
	assert.Equal(t, promptText, m.lastReq.Prompt)
	require.NotNil(t, m.lastReq.StructuredOutput)
}

func TestEvaluateFailingLabel(t *testing.T) {
	m := &fakeModel{resp: &model.Response{Object: map[string]any{
		"score":  "bad",
		"reason": "The tone is dismissive.",
	}}}
	e := newTestEngine(t, testConfig(), testDiscipline(), m)

	result, err := e.Evaluate(context.Background(), &Request{Input: "q", Output: "a"})
	require.NoError(t, err)
	assert.Equal(t, "bad", result.Score)
	assert.False(t, result.IsSuccessful())
}

func TestEvaluateDecodesTextResponse(t *testing.T) {
	m := &fakeModel{resp: &model.Response{
		Text: "```json\n{\"score\": \"good\", \"reason\": \"ok\"}\n```",
	}}
	e := newTestEngine(t, testConfig(), testDiscipline(), m)

	result, err := e.Evaluate(context.Background(), &Request{Input: "q", Output: "a"})
	require.NoError(t, err)
	assert.Equal(t, "good", result.Score)
	assert.True(t, result.IsSuccessful())
}

func TestEvaluateRejectsEmptyInput(t *testing.T) {
	e := newTestEngine(t, testConfig(), testDiscipline(), &fakeModel{})

	_, err := e.Evaluate(context.Background(), &Request{Input: "   ", Output: "a"})
	require.Error(t, err)
	var valErr *metric.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "input", valErr.Field)
}

func TestEvaluateRejectsNilRequest(t *testing.T) {
	e := newTestEngine(t, testConfig(), testDiscipline(), &fakeModel{})
	_, err := e.Evaluate(context.Background(), nil)
	var valErr *metric.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestEvaluateRequiresGroundTruth(t *testing.T) {
	cfg := testConfig()
	cfg.RequiresGroundTruth = true
	e := newTestEngine(t, cfg, testDiscipline(), &fakeModel{})

	_, err := e.Evaluate(context.Background(), &Request{Input: "q", Output: "a"})
	var valErr *metric.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "expected_output", valErr.Field)

	expected := "the reference answer"
	m := &fakeModel{resp: &model.Response{Object: map[string]any{
		"score": "good", "reason": "matches",
	}}}
	e = newTestEngine(t, cfg, testDiscipline(), m)
	result, err := e.Evaluate(context.Background(), &Request{
		Input: "q", Output: "a", ExpectedOutput: &expected,
	})
	require.NoError(t, err)
	assert.True(t, result.IsSuccessful())
	assert.Contains(t, m.lastReq.Prompt, expected)
}

func TestEvaluateRequiresContext(t *testing.T) {
	cfg := testConfig()
	cfg.RequiresContext = true
	e := newTestEngine(t, cfg, testDiscipline(), &fakeModel{})

	_, err := e.Evaluate(context.Background(), &Request{Input: "q", Output: "a"})
	var valErr *metric.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "contexts", valErr.Field)
}

func TestEvaluateGenerationFailureBecomesResult(t *testing.T) {
	m := &fakeModel{err: errors.New("backend unreachable")}
	e := newTestEngine(t, testConfig(), testDiscipline(), m)

	result, err := e.Evaluate(context.Background(), &Request{Input: "q", Output: "a"})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "error", result.Score)
	assert.True(t, result.Failed())
	assert.False(t, result.IsSuccessful())
	assert.Equal(t, metric.ErrorTypeGeneration, result.ErrorType())
	assert.Contains(t, result.Reason(), "backend unreachable")
	assert.Equal(t, "fake-judge", result.Details[metric.DetailModel])
	assert.Equal(t, "backend unreachable", result.Details[metric.DetailErrorDetails])
}

func TestEvaluateSchemaViolationBecomesResult(t *testing.T) {
	// "excellent" is not one of the allowed categories.
	m := &fakeModel{resp: &model.Response{Object: map[string]any{
		"score":  "excellent",
		"reason": "off the rails",
	}}}
	e := newTestEngine(t, testConfig(), testDiscipline(), m)

	result, err := e.Evaluate(context.Background(), &Request{Input: "q", Output: "a"})
	require.NoError(t, err)
	assert.Equal(t, "error", result.Score)
	assert.Equal(t, metric.ErrorTypeSchema, result.ErrorType())
}

func TestEvaluateUnparsableTextBecomesResult(t *testing.T) {
	m := &fakeModel{resp: &model.Response{Text: "I cannot answer in JSON."}}
	e := newTestEngine(t, testConfig(), testDiscipline(), m)

	result, err := e.Evaluate(context.Background(), &Request{Input: "q", Output: "a"})
	require.NoError(t, err)
	assert.True(t, result.Failed())
	assert.Equal(t, metric.ErrorTypeSchema, result.ErrorType())
}

func TestEvaluateVerdictFailureBecomesResult(t *testing.T) {
	d := testDiscipline()
	d.verdictErr = errors.New("threshold misconfigured")
	m := &fakeModel{resp: &model.Response{Object: map[string]any{
		"score": "good", "reason": "fine",
	}}}
	e := newTestEngine(t, testConfig(), d, m)

	result, err := e.Evaluate(context.Background(), &Request{Input: "q", Output: "a"})
	require.NoError(t, err)
	assert.True(t, result.Failed())
	assert.Equal(t, metric.ErrorTypeVerdict, result.ErrorType())
}

func TestEvaluateTemplateFailureBecomesResult(t *testing.T) {
	renderer, err := prompt.NewRendererWithTemplate("{{.NoSuchField}}")
	require.NoError(t, err)
	e, err := NewEngine(testConfig(), testDiscipline(),
		WithModel(&fakeModel{}), WithRenderer(renderer))
	require.NoError(t, err)

	result, err := e.Evaluate(context.Background(), &Request{Input: "q", Output: "a"})
	require.NoError(t, err)
	assert.True(t, result.Failed())
	assert.Equal(t, metric.ErrorTypeTemplate, result.ErrorType())
}

func TestEvaluatePassesGenerationConfig(t *testing.T) {
	temp := 0.0
	m := &fakeModel{resp: &model.Response{Object: map[string]any{
		"score": "good", "reason": "ok",
	}}}
	e, err := NewEngine(testConfig(), testDiscipline(),
		WithModel(m),
		WithGenerationConfig(model.GenerationConfig{Temperature: &temp}))
	require.NoError(t, err)

	_, err = e.Evaluate(context.Background(), &Request{Input: "q", Output: "a"})
	require.NoError(t, err)
	require.NotNil(t, m.lastReq.Temperature)
	assert.Equal(t, temp, *m.lastReq.Temperature)
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"score\": 1}", "{\"score\": 1}"},
		{"```json\n{\"score\": 1}\n```", "{\"score\": 1}"},
		{"```\n{\"score\": 1}\n```", "{\"score\": 1}"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stripFences(strings.TrimSpace(tc.in)))
	}
}
