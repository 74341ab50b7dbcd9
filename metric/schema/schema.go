//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package schema builds and validates judge response schemas.
//
// Each scoring discipline constrains the judge model's reply to a small
// structured object: a score restricted to the discipline's value space
// and a free-text reason. The schema is handed to the model adapter for
// native structured decoding and re-checked locally, so a backend that
// ignores the contract is still caught before a verdict is computed.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/arbiterhq/arbiter-go/model"
)

// Field names required by every discipline response schema.
const (
	// FieldScore is the constrained score field.
	FieldScore = "score"
	// FieldReason is the free-text rationale field.
	FieldReason = "reason"
)

// Categorical builds a response schema whose score must be exactly one
// of the given labels.
func Categorical(name string, categories []string) *model.StructuredOutput {
	enum := make([]any, 0, len(categories))
	for _, c := range categories {
		enum = append(enum, c)
	}
	return &model.StructuredOutput{
		Type: model.StructuredOutputJSONSchema,
		JSONSchema: &model.JSONSchemaConfig{
			Name:        name,
			Description: "Categorical evaluation verdict",
			Strict:      true,
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					FieldScore: map[string]any{
						"type": "string",
						"enum": enum,
					},
					FieldReason: map[string]any{
						"type": "string",
					},
				},
				"required":             []any{FieldScore, FieldReason},
				"additionalProperties": false,
			},
		},
	}
}

// Numeric builds a response schema whose score must be a number within
// the inclusive [min, max] range.
func Numeric(name string, min, max float64) *model.StructuredOutput {
	return &model.StructuredOutput{
		Type: model.StructuredOutputJSONSchema,
		JSONSchema: &model.JSONSchemaConfig{
			Name:        name,
			Description: "Numeric evaluation verdict",
			Strict:      true,
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					FieldScore: map[string]any{
						"type":    "number",
						"minimum": min,
						"maximum": max,
					},
					FieldReason: map[string]any{
						"type": "string",
					},
				},
				"required":             []any{FieldScore, FieldReason},
				"additionalProperties": false,
			},
		},
	}
}

// Validate checks a decoded response object against the structured
// output contract.
func Validate(so *model.StructuredOutput, object map[string]any) error {
	if so == nil || so.JSONSchema == nil {
		return fmt.Errorf("no schema to validate against")
	}
	doc, err := roundTrip(so.JSONSchema.Schema)
	if err != nil {
		return fmt.Errorf("normalize schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	value, err := roundTrip(object)
	if err != nil {
		return fmt.Errorf("normalize response object: %w", err)
	}
	if err := compiled.Validate(value); err != nil {
		return fmt.Errorf("response does not match schema: %w", err)
	}
	return nil
}

// roundTrip re-encodes a value through JSON so the validator sees the
// same representation a wire response would have.
func roundTrip(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
