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
	"github.com/arbiterhq/arbiter-go/metric/prompt"
	"github.com/arbiterhq/arbiter-go/model"
	"github.com/arbiterhq/arbiter-go/model/provider"
)

// Options holds engine construction settings.
type Options struct {
	modelInstance   model.Model
	modelIdentifier string
	renderer        *prompt.Renderer
	generation      model.GenerationConfig
}

// Option configures an engine.
type Option func(*Options)

func newOptions(opt ...Option) *Options {
	opts := &Options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithModel sets an explicit model adapter. It takes precedence over
// WithModelIdentifier.
func WithModel(m model.Model) Option {
	return func(o *Options) {
		o.modelInstance = m
	}
}

// WithModelIdentifier selects the judge model by identifier, in the
// form "provider" or "provider/model". An empty identifier resolves to
// the registered default.
func WithModelIdentifier(identifier string) Option {
	return func(o *Options) {
		o.modelIdentifier = identifier
	}
}

// WithRenderer overrides the default prompt renderer, typically to use
// a custom prompt template.
func WithRenderer(r *prompt.Renderer) Option {
	return func(o *Options) {
		o.renderer = r
	}
}

// WithGenerationConfig sets the generation parameters passed to the
// model on every evaluation.
func WithGenerationConfig(cfg model.GenerationConfig) Option {
	return func(o *Options) {
		o.generation = cfg
	}
}

// resolveModel picks the model adapter: explicit instance first, then
// identifier lookup through the provider registry.
func (o *Options) resolveModel() (model.Model, error) {
	if o.modelInstance != nil {
		return o.modelInstance, nil
	}
	return provider.Resolve(o.modelIdentifier)
}
