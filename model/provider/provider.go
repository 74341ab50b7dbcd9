//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package provider provides a unified interface for constructing model.Model
// instances from different providers.
//
// The evaluation core ships no concrete backend. Applications register a
// constructor per provider name and judges resolve adapters through this
// registry, either from an explicit instance, a string identifier, or the
// configured default.
package provider

import (
	"fmt"
	"strings"
	"sync"

	"github.com/arbiterhq/arbiter-go/model"
)

// Provider builds a model.Model instance.
type Provider func(opts *Options) (model.Model, error)

var (
	providersMu sync.RWMutex                // providersMu guards providers access.
	providers   = make(map[string]Provider) // providers stores provider name to provider mappings.

	defaultMu       sync.RWMutex
	defaultProvider string // defaultProvider names the provider used when no identifier is given.
	defaultModel    string // defaultModel names the model used when an identifier omits it.
)

// Register registers a provider by name.
// Registering the same name again overwrites the previous constructor.
func Register(name string, provider Provider) {
	providersMu.Lock()
	defer providersMu.Unlock()
	providers[name] = provider
}

// Get returns the provider by name or nil if not found.
func Get(name string) (Provider, bool) {
	providersMu.RLock()
	defer providersMu.RUnlock()
	provider, ok := providers[name]
	return provider, ok
}

// SetDefault configures the provider and model used when Resolve is called
// without an identifier.
func SetDefault(providerName, modelName string) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultProvider = providerName
	defaultModel = modelName
}

// Model constructs a model.Model with the given provider name, model name and options.
func Model(providerName, modelName string, opt ...Option) (model.Model, error) {
	opts := &Options{
		ProviderName: providerName,
		ModelName:    modelName,
	}
	for _, o := range opt {
		o(opts)
	}
	provider, ok := Get(providerName)
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", providerName)
	}
	return provider(opts)
}

// Resolve resolves a model adapter from an identifier.
//
// Accepted forms:
//   - "" uses the default provider and model configured via SetDefault.
//   - "provider" uses the named provider with the default model name.
//   - "provider/model" selects both; the identifier splits on the first
//     slash so model names containing slashes still work.
func Resolve(identifier string, opt ...Option) (model.Model, error) {
	providerName, modelName := splitIdentifier(identifier)
	if providerName == "" {
		defaultMu.RLock()
		providerName = defaultProvider
		defaultMu.RUnlock()
		if providerName == "" {
			return nil, fmt.Errorf("no model identifier given and no default provider configured")
		}
	}
	if modelName == "" {
		defaultMu.RLock()
		modelName = defaultModel
		defaultMu.RUnlock()
	}
	return Model(providerName, modelName, opt...)
}

// splitIdentifier splits "provider/model" on the first slash.
func splitIdentifier(identifier string) (providerName, modelName string) {
	if identifier == "" {
		return "", ""
	}
	parts := strings.SplitN(identifier, "/", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
