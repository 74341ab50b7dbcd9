//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package telemetry exposes the tracer used across arbiter-go.
package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentName identifies arbiter-go spans to the tracer provider.
const InstrumentName = "github.com/arbiterhq/arbiter-go"

// Tracer is the tracer used for evaluation spans. It resolves through
// the global otel tracer provider, so applications control exporting.
var Tracer trace.Tracer = otel.Tracer(InstrumentName)

// Span attribute keys recorded during evaluation.
const (
	// KeyMetricName records the metric name on evaluation spans.
	KeyMetricName = attribute.Key("arbiter.metric.name")
	// KeyScoreType records the scoring discipline on evaluation spans.
	KeyScoreType = attribute.Key("arbiter.metric.score_type")
	// KeyIsSuccessful records the verdict on evaluation spans.
	KeyIsSuccessful = attribute.Key("arbiter.result.is_successful")
	// KeyErrorType records the failure classification on evaluation spans.
	KeyErrorType = attribute.Key("arbiter.result.error_type")
	// KeyModelName records the judge model on generation spans.
	KeyModelName = attribute.Key("arbiter.model.name")
)

// Operation names used as span name prefixes.
const (
	// OperationEvaluate is the span name prefix for metric evaluations.
	OperationEvaluate = "evaluate_metric"
	// OperationGenerate is the span name prefix for judge model calls.
	OperationGenerate = "judge_generate"
)
