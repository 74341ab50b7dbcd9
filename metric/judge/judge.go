//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package judge hosts the shared orchestration engine for LLM judges.
//
// A judge renders an evaluation prompt, sends it to a model adapter
// with a discipline-specific response schema, validates the structured
// reply and reduces the returned score to a pass/fail verdict. The
// engine is polymorphic over the scoring discipline; the categorical
// and numeric subpackages provide the concrete variants.
package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/arbiterhq/arbiter-go/log"
	"github.com/arbiterhq/arbiter-go/metric"
	"github.com/arbiterhq/arbiter-go/metric/prompt"
	"github.com/arbiterhq/arbiter-go/metric/schema"
	"github.com/arbiterhq/arbiter-go/model"
	"github.com/arbiterhq/arbiter-go/telemetry"
)

// Request carries the inputs for a single evaluation.
type Request struct {
	// Input is the original query posed to the system under test.
	Input string `json:"input"`
	// Output is the system response under evaluation.
	Output string `json:"output"`
	// ExpectedOutput is the reference response. Nil means absent, which
	// is only legal when the metric does not require ground truth.
	ExpectedOutput *string `json:"expected_output,omitempty"`
	// Contexts is the ordered list of context chunks used to produce
	// the response.
	Contexts []string `json:"contexts,omitempty"`
}

// Judge is a configured metric instance that evaluates responses.
type Judge interface {
	// Name returns the metric instance name.
	Name() string
	// Description describes what the metric measures.
	Description() string
	// Evaluate runs one evaluation. Malformed caller input returns a
	// *metric.ValidationError; runtime evaluation failures come back as
	// failed results, never as errors.
	Evaluate(ctx context.Context, req *Request) (*metric.Result, error)
}

// Discipline is the scoring strategy a judge engine is parameterized
// with. Implementations are immutable after construction.
type Discipline interface {
	// ResponseSchema returns the structured decoding contract for the
	// judge model's reply.
	ResponseSchema() *model.StructuredOutput
	// Verdict reduces a schema-valid score to pass/fail.
	Verdict(score any) (bool, error)
	// ErrorScore returns the sentinel score recorded on failed
	// evaluations.
	ErrorScore() any
	// Metadata returns discipline configuration seeded into the result
	// details of every evaluation.
	Metadata() map[string]any
	// FillPromptVars sets the discipline-specific template variables.
	FillPromptVars(vars *prompt.Vars)
}

// Engine implements the evaluation state machine shared by all
// disciplines. It holds no per-call state; a single Engine serves
// concurrent evaluations.
type Engine struct {
	cfg        *metric.Config
	discipline Discipline
	model      model.Model
	renderer   *prompt.Renderer
	generation model.GenerationConfig
}

// NewEngine constructs an engine for the given config and discipline.
// The model adapter is resolved from the options: an explicit instance
// wins, then a string identifier, then the registered default.
func NewEngine(cfg *metric.Config, discipline Discipline, opt ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, &metric.ConfigError{Reason: "config is nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if discipline == nil {
		return nil, &metric.ConfigError{Reason: "scoring discipline is nil"}
	}
	opts := newOptions(opt...)
	m, err := opts.resolveModel()
	if err != nil {
		return nil, &metric.ConfigError{Field: "model", Reason: err.Error()}
	}
	renderer := opts.renderer
	if renderer == nil {
		renderer = prompt.NewRenderer()
	}
	return &Engine{
		cfg:        cfg,
		discipline: discipline,
		model:      m,
		renderer:   renderer,
		generation: opts.generation,
	}, nil
}

// Name returns the metric instance name.
func (e *Engine) Name() string { return e.cfg.Name }

// Description describes what the metric measures.
func (e *Engine) Description() string { return e.cfg.Description }

// Config returns the immutable metric configuration.
func (e *Engine) Config() *metric.Config { return e.cfg }

// Model returns the adapter the engine evaluates with.
func (e *Engine) Model() model.Model { return e.model }

// Evaluate runs the evaluation state machine for one request.
//
// Only malformed caller input is returned as an error. Template,
// adapter, schema and verdict failures are recorded on the result, so
// batch evaluation is never aborted by a single bad case.
func (e *Engine) Evaluate(ctx context.Context, req *Request) (*metric.Result, error) {
	if err := e.validateRequest(req); err != nil {
		return nil, err
	}
	ctx, span := telemetry.Tracer.Start(ctx,
		fmt.Sprintf("%s %s", telemetry.OperationEvaluate, e.cfg.Name))
	defer span.End()
	span.SetAttributes(
		telemetry.KeyMetricName.String(e.cfg.Name),
		telemetry.KeyScoreType.String(e.cfg.ScoreType.String()),
	)

	details := map[string]any{
		metric.DetailScoreType: e.cfg.ScoreType.String(),
	}
	for k, v := range e.discipline.Metadata() {
		details[k] = v
	}

	promptText, err := e.renderer.Render(e.promptVars(req))
	if err != nil {
		return e.failedResult(span, details, err, metric.ErrorTypeTemplate), nil
	}
	details[metric.DetailPrompt] = promptText

	responseSchema := e.discipline.ResponseSchema()
	resp, err := e.generate(ctx, promptText, responseSchema)
	if err != nil {
		return e.failedResult(span, details, err, metric.ErrorTypeGeneration), nil
	}

	object, err := decodeObject(resp)
	if err != nil {
		return e.failedResult(span, details, err, metric.ErrorTypeSchema), nil
	}
	if err := schema.Validate(responseSchema, object); err != nil {
		return e.failedResult(span, details, err, metric.ErrorTypeSchema), nil
	}
	scoreValue := object[schema.FieldScore]
	reason, _ := object[schema.FieldReason].(string)

	passed, err := e.discipline.Verdict(scoreValue)
	if err != nil {
		return e.failedResult(span, details, err, metric.ErrorTypeVerdict), nil
	}

	details[metric.DetailScore] = scoreValue
	details[metric.DetailReason] = reason
	details[metric.DetailIsSuccessful] = passed
	span.SetAttributes(telemetry.KeyIsSuccessful.Bool(passed))
	return metric.NewResult(scoreValue, details), nil
}

// validateRequest rejects malformed caller input before any model call.
func (e *Engine) validateRequest(req *Request) error {
	if req == nil {
		return &metric.ValidationError{Reason: "request is nil"}
	}
	if strings.TrimSpace(req.Input) == "" {
		return &metric.ValidationError{Field: "input", Reason: "input must be a non-empty string"}
	}
	if e.cfg.RequiresGroundTruth && req.ExpectedOutput == nil {
		return &metric.ValidationError{
			Field:  "expected_output",
			Reason: fmt.Sprintf("metric %s requires ground truth but none was provided", e.cfg.Name),
		}
	}
	if e.cfg.RequiresContext && len(req.Contexts) == 0 {
		return &metric.ValidationError{
			Field:  "contexts",
			Reason: fmt.Sprintf("metric %s requires context but none was provided", e.cfg.Name),
		}
	}
	return nil
}

// promptVars assembles the template variables for one request.
func (e *Engine) promptVars(req *Request) prompt.Vars {
	expected := ""
	if req.ExpectedOutput != nil {
		expected = *req.ExpectedOutput
	}
	vars := prompt.Vars{
		EvaluationPrompt:   e.cfg.EvaluationPrompt,
		EvaluationSteps:    e.cfg.EvaluationSteps,
		Reasoning:          e.cfg.Reasoning,
		EvaluationExamples: e.cfg.EvaluationExamples,
		Input:              req.Input,
		Output:             req.Output,
		ExpectedOutput:     expected,
		ContextText:        prompt.JoinContext(req.Contexts),
		ScoreType:          e.cfg.ScoreType.String(),
	}
	e.discipline.FillPromptVars(&vars)
	return vars
}

// generate invokes the model adapter inside its own span.
func (e *Engine) generate(ctx context.Context, promptText string,
	responseSchema *model.StructuredOutput) (*model.Response, error) {
	info := e.model.Info()
	ctx, span := telemetry.Tracer.Start(ctx,
		fmt.Sprintf("%s %s", telemetry.OperationGenerate, info.Name))
	defer span.End()
	span.SetAttributes(telemetry.KeyModelName.String(info.Name))
	return e.model.Generate(ctx, &model.Request{
		Prompt:           promptText,
		StructuredOutput: responseSchema,
		GenerationConfig: e.generation,
	})
}

// failedResult converts a runtime failure into a failed result.
func (e *Engine) failedResult(span trace.Span, details map[string]any,
	cause error, errType string) *metric.Result {
	errMsg := fmt.Sprintf("error evaluating with %s: %v", e.cfg.Name, cause)
	log.Errorf("metric %s evaluation failed (%s): %v", e.cfg.Name, errType, cause)
	span.SetAttributes(telemetry.KeyErrorType.String(errType))
	details[metric.DetailError] = errMsg
	details[metric.DetailReason] = errMsg
	details[metric.DetailErrorType] = errType
	details[metric.DetailErrorDetails] = cause.Error()
	details[metric.DetailModel] = e.model.Info().Name
	details[metric.DetailIsSuccessful] = false
	return metric.NewResult(e.discipline.ErrorScore(), details)
}

// decodeObject extracts the structured object from an adapter response,
// falling back to decoding the raw text as JSON.
func decodeObject(resp *model.Response) (map[string]any, error) {
	if resp == nil {
		return nil, fmt.Errorf("nil model response")
	}
	if resp.Object != nil {
		return resp.Object, nil
	}
	text := stripFences(strings.TrimSpace(resp.Text))
	if text == "" {
		return nil, fmt.Errorf("empty model response")
	}
	var object map[string]any
	if err := json.Unmarshal([]byte(text), &object); err != nil {
		return nil, fmt.Errorf("decode response text as JSON: %w", err)
	}
	return object, nil
}

// stripFences removes a surrounding markdown code fence, which some
// backends add around JSON replies.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
