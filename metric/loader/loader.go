//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package loader reads metric definitions from YAML and instantiates
// judges through the class-name registry.
//
// The file format is a single document with a top-level metrics list:
//
//	metrics:
//	  - class_name: CategoricalJudge
//	    name: toxicity
//	    evaluation_prompt: ...
//	    categories: [toxic, non_toxic]
//	    passing_categories: non_toxic
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/arbiterhq/arbiter-go/metric/judge"
	"github.com/arbiterhq/arbiter-go/metric/judge/registry"
)

// document is the top-level YAML shape.
type document struct {
	Metrics []map[string]any `yaml:"metrics"`
}

// Load reads metric definitions from r.
func Load(r io.Reader) ([]judge.Fields, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read metric definitions: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse metric definitions: %w", err)
	}
	if len(doc.Metrics) == 0 {
		return nil, fmt.Errorf("no metrics defined")
	}
	definitions := make([]judge.Fields, 0, len(doc.Metrics))
	for _, m := range doc.Metrics {
		definitions = append(definitions, judge.Fields(m))
	}
	return definitions, nil
}

// LoadFile reads metric definitions from a YAML file.
func LoadFile(path string) ([]judge.Fields, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metric definitions: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Judges instantiates every definition through the registry. All
// definitions are attempted; construction errors are accumulated and
// returned together, alongside the judges that did construct.
func Judges(definitions []judge.Fields, opt ...judge.Option) ([]judge.Judge, error) {
	var judges []judge.Judge
	var errs *multierror.Error
	for i, fields := range definitions {
		j, err := registry.New(fields, opt...)
		if err != nil {
			name, _ := fields.String("name")
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			errs = multierror.Append(errs, fmt.Errorf("metric %s: %w", name, err))
			continue
		}
		judges = append(judges, j)
	}
	return judges, errs.ErrorOrNil()
}

// LoadJudges reads a YAML file and instantiates its metrics.
func LoadJudges(path string, opt ...judge.Option) ([]judge.Judge, error) {
	definitions, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Judges(definitions, opt...)
}
