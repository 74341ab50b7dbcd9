//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package registry maps judge class names to their factories, so
// serialized metric definitions can be instantiated by name. The
// built-in disciplines are registered on import; additional disciplines
// register themselves the same way.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arbiterhq/arbiter-go/metric"
	"github.com/arbiterhq/arbiter-go/metric/judge"
	"github.com/arbiterhq/arbiter-go/metric/judge/categorical"
	"github.com/arbiterhq/arbiter-go/metric/judge/numeric"
)

// Factory builds a judge from a loosely typed metric definition.
type Factory func(fields judge.Fields, opt ...judge.Option) (judge.Judge, error)

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

func init() {
	Register(categorical.ClassName, categorical.FromMap)
	Register(numeric.ClassName, numeric.FromMap)
}

// Register adds a factory under the given class name, replacing any
// existing registration.
func Register(className string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[className] = factory
}

// Get returns the factory registered under the given class name.
func Get(className string) (Factory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	factory, ok := factories[className]
	return factory, ok
}

// Names returns the registered class names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New instantiates a judge from a metric definition. The class name is
// read from the definition's "class_name" field.
func New(fields judge.Fields, opt ...judge.Option) (judge.Judge, error) {
	className, err := fields.String("class_name")
	if err != nil {
		return nil, err
	}
	if className == "" {
		return nil, &metric.ConfigError{
			Field:  "class_name",
			Reason: "class name is required to instantiate a judge",
		}
	}
	factory, ok := Get(className)
	if !ok {
		return nil, &metric.ConfigError{
			Field:  "class_name",
			Reason: fmt.Sprintf("unknown judge class: %s (registered: %v)", className, Names()),
		}
	}
	return factory(fields, opt...)
}
