//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

package mysql

import "time"

const (
	defaultTable       = "evaluation_runs"
	defaultInitTimeout = 10 * time.Second
)

type options struct {
	table          string
	skipSchemaInit bool
	initTimeout    time.Duration
}

// Option configures the MySQL store.
type Option func(*options)

func newOptions(opt ...Option) *options {
	opts := &options{
		table:       defaultTable,
		initTimeout: defaultInitTimeout,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithTable overrides the table name.
func WithTable(table string) Option {
	return func(o *options) {
		o.table = table
	}
}

// WithSkipSchemaInit skips the CREATE TABLE on startup, for
// deployments where schema is managed externally.
func WithSkipSchemaInit() Option {
	return func(o *options) {
		o.skipSchemaInit = true
	}
}

// WithInitTimeout bounds the schema initialization.
func WithInitTimeout(d time.Duration) Option {
	return func(o *options) {
		o.initTimeout = d
	}
}
