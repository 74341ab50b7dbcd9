//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"github.com/arbiterhq/arbiter-go/evaluation/result"
)

const defaultParallelism = 4

// Options holds runner settings.
type Options struct {
	parallelism int
	store       result.Store
	runName     string
}

// Option configures a runner.
type Option func(*Options)

func newOptions(opt ...Option) *Options {
	opts := &Options{parallelism: defaultParallelism}
	for _, o := range opt {
		o(opts)
	}
	if opts.parallelism <= 0 {
		opts.parallelism = defaultParallelism
	}
	return opts
}

// WithParallelism bounds the number of concurrent evaluations.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.parallelism = n
	}
}

// WithStore persists each run to the given store after it completes.
func WithStore(s result.Store) Option {
	return func(o *Options) {
		o.store = s
	}
}

// WithRunName labels runs produced by this runner.
func WithRunName(name string) Option {
	return func(o *Options) {
		o.runName = name
	}
}
