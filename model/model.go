//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package model defines the language model boundary consumed by judges.
//
// Implementations live outside the evaluation core. The core only
// requires the ability to turn a prompt, optionally constrained by a
// structured output schema, into text or a decoded object.
package model

import "context"

// Model is the capability judges require from an LLM backend.
//
// Generate must honor Request.StructuredOutput when set: the returned
// Response.Object must conform to the requested JSON schema, or an
// error must be returned. Implementations must be safe for concurrent
// use; judges share a single instance across parallel evaluations.
type Model interface {
	// Generate produces a completion for the request.
	Generate(ctx context.Context, req *Request) (*Response, error)
	// Info returns basic information about the model.
	Info() Info
}

// Info describes a model instance.
type Info struct {
	// Provider is the backend provider name, e.g. "openai".
	Provider string `json:"provider,omitempty"`
	// Name is the model name, e.g. "gpt-4o-mini".
	Name string `json:"name"`
}

// GenerationConfig contains the generation parameters.
type GenerationConfig struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens *int `json:"max_tokens,omitempty"`
	// Temperature controls randomness (0.0 to 2.0).
	Temperature *float64 `json:"temperature,omitempty"`
	// TopP controls nucleus sampling (0.0 to 1.0).
	TopP *float64 `json:"top_p,omitempty"`
	// Stop sequences where the backend will stop generating further tokens.
	Stop []string `json:"stop,omitempty"`
}

// Request is the request to the model.
type Request struct {
	// Prompt is the full evaluation prompt sent verbatim to the model.
	Prompt string `json:"prompt"`
	// StructuredOutput requests schema-constrained decoding when set.
	StructuredOutput *StructuredOutput `json:"structured_output,omitempty"`
	// GenerationConfig contains the generation parameters.
	GenerationConfig `json:",inline"`
}

// StructuredOutputType enumerates supported structured output modes.
type StructuredOutputType string

// StructuredOutputJSONSchema requests strict JSON schema decoding.
const StructuredOutputJSONSchema StructuredOutputType = "json_schema"

// StructuredOutput describes the structured decoding contract for a request.
type StructuredOutput struct {
	// Type selects the structured output mode.
	Type StructuredOutputType `json:"type"`
	// JSONSchema carries the schema when Type is StructuredOutputJSONSchema.
	JSONSchema *JSONSchemaConfig `json:"json_schema,omitempty"`
}

// JSONSchemaConfig carries a named JSON schema document.
type JSONSchemaConfig struct {
	// Name identifies the schema to the backend.
	Name string `json:"name"`
	// Description explains the schema intent to the backend.
	Description string `json:"description,omitempty"`
	// Strict requests strict schema adherence where supported.
	Strict bool `json:"strict,omitempty"`
	// Schema is the JSON schema document.
	Schema map[string]any `json:"schema"`
}

// Response is the model's reply.
type Response struct {
	// Text is the raw text completion.
	Text string `json:"text,omitempty"`
	// Object is the decoded structured object when structured output
	// was requested. Backends that only return text may leave Object
	// nil; callers fall back to decoding Text as JSON.
	Object map[string]any `json:"object,omitempty"`
	// Usage reports token consumption when the backend provides it.
	Usage *Usage `json:"usage,omitempty"`
}

// Usage reports token consumption for a single generation.
type Usage struct {
	// PromptTokens is the number of tokens in the prompt.
	PromptTokens int `json:"prompt_tokens"`
	// CompletionTokens is the number of tokens in the completion.
	CompletionTokens int `json:"completion_tokens"`
	// TotalTokens is the total number of tokens consumed.
	TotalTokens int `json:"total_tokens"`
}
