//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

package metric

import "fmt"

// ConfigError reports invalid metric configuration at construction time.
// It is always returned to the caller; a metric instance is never
// created from an invalid configuration.
type ConfigError struct {
	// Field names the offending configuration field.
	Field string
	// Reason explains why the field is invalid.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid metric config: %s", e.Reason)
	}
	return fmt.Sprintf("invalid metric config: %s: %s", e.Field, e.Reason)
}

// ValidationError reports malformed caller input at evaluation time.
// It signals a caller or integration bug, so unlike runtime evaluation
// failures it propagates as an error instead of a failed result.
type ValidationError struct {
	// Field names the offending call argument.
	Field string
	// Reason explains why the argument is invalid.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid evaluation input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid evaluation input: %s: %s", e.Field, e.Reason)
}
