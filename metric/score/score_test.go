//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbiterhq/arbiter-go/metric"
)

func TestParseOperator(t *testing.T) {
	op, err := ParseOperator(" >= ")
	require.NoError(t, err)
	assert.Equal(t, OperatorGreaterThanOrEqual, op)

	_, err = ParseOperator("=>")
	require.Error(t, err)

	_, err = ParseOperator("")
	require.Error(t, err)
}

func TestDefaultOperator(t *testing.T) {
	assert.Equal(t, OperatorGreaterThanOrEqual, DefaultOperator(metric.ScoreTypeNumeric))
	assert.Equal(t, OperatorEqual, DefaultOperator(metric.ScoreTypeCategorical))
	assert.Equal(t, OperatorEqual, DefaultOperator(metric.ScoreTypeBinary))
}

func TestOperatorValidFor(t *testing.T) {
	assert.True(t, OperatorLessThan.ValidFor(metric.ScoreTypeNumeric))
	assert.False(t, OperatorLessThan.ValidFor(metric.ScoreTypeCategorical))
	assert.True(t, OperatorNotEqual.ValidFor(metric.ScoreTypeBinary))
	assert.False(t, OperatorEqual.ValidFor(metric.ScoreType("percentile")))
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		score     float64
		threshold float64
		op        Operator
		want      bool
	}{
		{0.8, 0.7, OperatorGreaterThanOrEqual, true},
		{0.7, 0.7, OperatorGreaterThanOrEqual, true},
		{0.6, 0.7, OperatorGreaterThanOrEqual, false},
		{0.6, 0.7, OperatorLessThan, true},
		{0.7, 0.7, OperatorEqual, true},
		{0.7, 0.7, OperatorNotEqual, false},
		{0.9, 0.7, OperatorGreaterThan, true},
		{0.7, 0.7, OperatorLessThanOrEqual, true},
		// Empty operator falls back to >=.
		{0.8, 0.7, "", true},
	}
	for _, tt := range tests {
		got, err := Numeric(tt.score, tt.threshold, tt.op)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "score=%v threshold=%v op=%q", tt.score, tt.threshold, tt.op)
	}
}

func TestMembership(t *testing.T) {
	passing := []string{"helpful", "neutral"}

	got, err := Membership("helpful", passing, OperatorEqual)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Membership("harmful", passing, OperatorEqual)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = Membership("harmful", passing, OperatorNotEqual)
	require.NoError(t, err)
	assert.True(t, got)

	// Label matching is case-sensitive.
	got, err = Membership("Helpful", passing, "")
	require.NoError(t, err)
	assert.False(t, got)

	_, err = Membership("helpful", passing, OperatorGreaterThan)
	require.Error(t, err)
}
