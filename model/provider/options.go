//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

package provider

// Option configures how a model instance should be constructed.
type Option func(*Options)

// Options contains resolved settings used when constructing provider-backed models.
type Options struct {
	ProviderName string            // ProviderName is the provider identifier passed to Model.
	ModelName    string            // ModelName is the concrete model identifier.
	APIKey       string            // APIKey holds the credential used for downstream SDK initialization.
	BaseURL      string            // BaseURL overrides the default endpoint when specified.
	Headers      map[string]string // Headers are appended to outbound provider requests.
	ExtraFields  map[string]any    // ExtraFields are serialized into provider-specific request payloads.
}

// WithAPIKey sets the credential used by the provider constructor.
func WithAPIKey(apiKey string) Option {
	return func(o *Options) {
		o.APIKey = apiKey
	}
}

// WithBaseURL overrides the provider endpoint.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		o.BaseURL = baseURL
	}
}

// WithHeaders appends headers to outbound provider requests.
func WithHeaders(headers map[string]string) Option {
	return func(o *Options) {
		o.Headers = headers
	}
}

// WithExtraFields passes provider-specific extra request fields.
func WithExtraFields(fields map[string]any) Option {
	return func(o *Options) {
		o.ExtraFields = fields
	}
}
