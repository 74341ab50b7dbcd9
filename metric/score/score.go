//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

// Package score evaluates raw scores against pass criteria.
//
// It hosts the threshold operators shared by the scoring disciplines:
// numeric scores compare against a threshold with a configurable
// operator, categorical and binary scores test membership in a passing
// label set.
package score

import (
	"fmt"
	"strings"

	"github.com/arbiterhq/arbiter-go/metric"
)

// Operator compares a score against a threshold.
type Operator string

// Supported threshold operators.
const (
	OperatorEqual              Operator = "="
	OperatorLessThan           Operator = "<"
	OperatorGreaterThan        Operator = ">"
	OperatorLessThanOrEqual    Operator = "<="
	OperatorGreaterThanOrEqual Operator = ">="
	OperatorNotEqual           Operator = "!="
)

// validOperatorsByScoreType restricts ordering comparisons to numeric scores.
var validOperatorsByScoreType = map[metric.ScoreType]map[Operator]bool{
	metric.ScoreTypeNumeric: {
		OperatorEqual:              true,
		OperatorLessThan:           true,
		OperatorGreaterThan:        true,
		OperatorLessThanOrEqual:    true,
		OperatorGreaterThanOrEqual: true,
		OperatorNotEqual:           true,
	},
	metric.ScoreTypeCategorical: {
		OperatorEqual:    true,
		OperatorNotEqual: true,
	},
	metric.ScoreTypeBinary: {
		OperatorEqual:    true,
		OperatorNotEqual: true,
	},
}

// ParseOperator parses an operator string, trimming surrounding whitespace.
func ParseOperator(s string) (Operator, error) {
	op := Operator(strings.TrimSpace(s))
	switch op {
	case OperatorEqual, OperatorLessThan, OperatorGreaterThan,
		OperatorLessThanOrEqual, OperatorGreaterThanOrEqual, OperatorNotEqual:
		return op, nil
	default:
		return "", fmt.Errorf("invalid threshold operator: %q", s)
	}
}

// DefaultOperator returns the operator used when a metric does not
// configure one: >= for numeric scores, = otherwise.
func DefaultOperator(scoreType metric.ScoreType) Operator {
	if scoreType == metric.ScoreTypeNumeric {
		return OperatorGreaterThanOrEqual
	}
	return OperatorEqual
}

// ValidFor reports whether the operator is allowed for the score type.
func (op Operator) ValidFor(scoreType metric.ScoreType) bool {
	valid, ok := validOperatorsByScoreType[scoreType]
	if !ok {
		return false
	}
	return valid[op]
}

// String returns the string representation of the operator.
func (op Operator) String() string {
	return string(op)
}

// Compare applies the operator to a numeric score and threshold.
func (op Operator) Compare(score, threshold float64) (bool, error) {
	switch op {
	case OperatorEqual:
		return score == threshold, nil
	case OperatorLessThan:
		return score < threshold, nil
	case OperatorGreaterThan:
		return score > threshold, nil
	case OperatorLessThanOrEqual:
		return score <= threshold, nil
	case OperatorGreaterThanOrEqual:
		return score >= threshold, nil
	case OperatorNotEqual:
		return score != threshold, nil
	default:
		return false, fmt.Errorf("invalid threshold operator: %q", op)
	}
}

// Numeric reports whether a numeric score passes under the operator and
// threshold.
func Numeric(scoreValue, threshold float64, op Operator) (bool, error) {
	if op == "" {
		op = DefaultOperator(metric.ScoreTypeNumeric)
	}
	if !op.ValidFor(metric.ScoreTypeNumeric) {
		return false, fmt.Errorf("operator %q is not valid for numeric scores", op)
	}
	return op.Compare(scoreValue, threshold)
}

// Membership reports whether a categorical score passes, given the
// passing label set. Matching is exact and case-sensitive. With
// OperatorNotEqual the verdict is inverted.
func Membership(scoreLabel string, passing []string, op Operator) (bool, error) {
	if op == "" {
		op = OperatorEqual
	}
	if !op.ValidFor(metric.ScoreTypeCategorical) {
		return false, fmt.Errorf("operator %q is not valid for categorical scores", op)
	}
	member := false
	for _, label := range passing {
		if scoreLabel == label {
			member = true
			break
		}
	}
	if op == OperatorNotEqual {
		return !member, nil
	}
	return member, nil
}
