//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbiterhq/arbiter-go/model"
)

type staticModel struct {
	info model.Info
}

func (s *staticModel) Generate(_ context.Context, _ *model.Request) (*model.Response, error) {
	return &model.Response{Text: "ok"}, nil
}

func (s *staticModel) Info() model.Info { return s.info }

func registerStatic(t *testing.T, name string) {
	t.Helper()
	Register(name, func(opts *Options) (model.Model, error) {
		return &staticModel{info: model.Info{Provider: opts.ProviderName, Name: opts.ModelName}}, nil
	})
}

func TestModelUnknownProvider(t *testing.T) {
	_, err := Model("does-not-exist", "any")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestModelAppliesOptions(t *testing.T) {
	var got *Options
	Register("capture-provider", func(opts *Options) (model.Model, error) {
		got = opts
		return &staticModel{}, nil
	})
	_, err := Model("capture-provider", "m1",
		WithAPIKey("key"),
		WithBaseURL("http://localhost:8080"),
		WithHeaders(map[string]string{"X-Test": "1"}),
		WithExtraFields(map[string]any{"ignore_eos": true}),
	)
	require.NoError(t, err)
	assert.Equal(t, "capture-provider", got.ProviderName)
	assert.Equal(t, "m1", got.ModelName)
	assert.Equal(t, "key", got.APIKey)
	assert.Equal(t, "http://localhost:8080", got.BaseURL)
	assert.Equal(t, "1", got.Headers["X-Test"])
	assert.Equal(t, true, got.ExtraFields["ignore_eos"])
}

func TestResolveIdentifierForms(t *testing.T) {
	registerStatic(t, "resolver-test")
	SetDefault("resolver-test", "default-model")
	defer SetDefault("", "")

	tests := []struct {
		name       string
		identifier string
		wantProv   string
		wantModel  string
	}{
		{"absent uses defaults", "", "resolver-test", "default-model"},
		{"provider only", "resolver-test", "resolver-test", "default-model"},
		{"provider and model", "resolver-test/custom", "resolver-test", "custom"},
		{"model name keeps extra slashes", "resolver-test/org/custom", "resolver-test", "org/custom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Resolve(tt.identifier)
			require.NoError(t, err)
			assert.Equal(t, tt.wantProv, m.Info().Provider)
			assert.Equal(t, tt.wantModel, m.Info().Name)
		})
	}
}

func TestResolveWithoutDefault(t *testing.T) {
	SetDefault("", "")
	_, err := Resolve("")
	require.Error(t, err)
}
