//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package prompt renders evaluation prompts for judge models.
//
// Rendering is deterministic: the same configuration and inputs always
// produce a byte-identical prompt. Unresolved template variables are
// fatal rather than silently dropped.
package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// defaultPromptText is the template fed to the judge model.
const defaultPromptText = `You are an expert evaluator. Judge the system response below strictly according to the evaluation criteria. Do not answer the input yourself.

### Evaluation criteria
{{.EvaluationPrompt}}
{{- if .EvaluationSteps}}

### Evaluation steps
{{.EvaluationSteps}}
{{- end}}
{{- if .Reasoning}}

### Reasoning guidance
{{.Reasoning}}
{{- end}}
{{- if .EvaluationExamples}}

### Examples
{{.EvaluationExamples}}
{{- end}}

### Data
Input: {{.Input}}
Context: {{.ContextText}}
Expected response: {{.ExpectedOutput}}
System response: {{.Output}}
{{- if eq .ScoreType "categorical"}}

### Scoring
Respond with a JSON object containing "score" and "reason". The score must be exactly one of: {{join .Categories ", "}}. A response in one of the following categories is considered passing: {{join .PassingCategories ", "}}.
{{- else if eq .ScoreType "numeric"}}

### Scoring
Respond with a JSON object containing "score" and "reason". The score must be a number between {{.MinScore}} and {{.MaxScore}}.
{{- end}}

Requirement: be assertive and unambiguous; do not hedge.
`

// noContextText substitutes for an absent context chunk list.
const noContextText = "No context provided."

// Vars carries every variable the prompt template may reference.
// Discipline-specific fields are zero for the disciplines that do not
// use them.
type Vars struct {
	// EvaluationPrompt contains the evaluator's main instructions.
	EvaluationPrompt string
	// EvaluationSteps contains the ordered evaluation guidance.
	EvaluationSteps string
	// Reasoning guides how the judge explains its score.
	Reasoning string
	// EvaluationExamples contains few-shot example text.
	EvaluationExamples string
	// Input is the original query under evaluation.
	Input string
	// Output is the system response under test.
	Output string
	// ExpectedOutput is the reference response, empty when absent.
	ExpectedOutput string
	// ContextText is the joined context chunks.
	ContextText string
	// ScoreType selects the discipline-specific scoring section.
	ScoreType string
	// Categories lists the valid categorical labels.
	Categories []string
	// PassingCategories lists the labels counted as passing.
	PassingCategories []string
	// MinScore is the lower bound of a numeric score range.
	MinScore float64
	// MaxScore is the upper bound of a numeric score range.
	MaxScore float64
}

// Renderer renders evaluation prompts from a parsed template.
// A Renderer is immutable and safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer returns a renderer using the default evaluation prompt
// template.
func NewRenderer() *Renderer {
	r, err := NewRendererWithTemplate(defaultPromptText)
	if err != nil {
		// The default template is constant; failing to parse it is a
		// programming error.
		panic(err)
	}
	return r
}

// NewRendererWithTemplate returns a renderer using a caller-supplied
// template. The template may reference any field of Vars; referencing
// anything else fails here or at render time.
func NewRendererWithTemplate(text string) (*Renderer, error) {
	tmpl, err := template.New("evaluation_prompt").
		Funcs(template.FuncMap{"join": strings.Join}).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the evaluation prompt for the given variables.
func (r *Renderer) Render(vars Vars) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("render prompt template: %w", err)
	}
	return buf.String(), nil
}

// JoinContext joins context chunks into the text substituted for
// Vars.ContextText. An empty chunk list renders a fixed placeholder so
// the judge knows no context was supplied.
func JoinContext(contexts []string) string {
	if len(contexts) == 0 {
		return noContextText
	}
	return strings.Join(contexts, "\n")
}
