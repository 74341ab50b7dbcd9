//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

package metric

// Detail keys populated by judges.
const (
	// DetailScore is the raw score returned by the judge model.
	DetailScore = "score"
	// DetailScoreType is the scoring discipline of the metric.
	DetailScoreType = "score_type"
	// DetailPrompt is the full evaluation prompt sent to the model.
	DetailPrompt = "prompt"
	// DetailReason is the model's rationale for the score.
	DetailReason = "reason"
	// DetailIsSuccessful reports whether the score passed the verdict rule.
	DetailIsSuccessful = "is_successful"
	// DetailError carries the error message of a failed evaluation.
	DetailError = "error"
	// DetailErrorType classifies a failed evaluation.
	DetailErrorType = "exception_type"
	// DetailErrorDetails carries diagnostic detail of a failed evaluation.
	DetailErrorDetails = "exception_details"
	// DetailCategories lists the valid categorical labels.
	DetailCategories = "categories"
	// DetailPassingCategories lists the labels counted as passing.
	DetailPassingCategories = "passing_categories"
	// DetailMinScore is the lower bound of a numeric score range.
	DetailMinScore = "min_score"
	// DetailMaxScore is the upper bound of a numeric score range.
	DetailMaxScore = "max_score"
	// DetailThreshold is the numeric pass threshold.
	DetailThreshold = "threshold"
	// DetailThresholdOperator is the comparison used against the threshold.
	DetailThresholdOperator = "threshold_operator"
	// DetailModel identifies the judge model involved in a failure.
	DetailModel = "model"
)

// Error classifications recorded under DetailErrorType.
const (
	ErrorTypeTemplate   = "template_error"
	ErrorTypeGeneration = "generation_error"
	ErrorTypeSchema     = "schema_validation_error"
	ErrorTypeVerdict    = "verdict_error"
)

// Result is the outcome of a single metric evaluation.
//
// A Result is created once per evaluate call and returned to the
// caller; the core does not persist it. A failed evaluation is still a
// Result: its score is an error sentinel and its details carry the
// error classification, so batch pipelines are never aborted by one
// bad case.
type Result struct {
	// Score is the raw score, numeric or categorical depending on the
	// scoring discipline.
	Score any `json:"score"`
	// Details carries the prompt, rationale, success flag and
	// discipline-specific metadata, plus error information on failure.
	Details map[string]any `json:"details,omitempty"`
}

// NewResult creates a result with the given score and details.
func NewResult(score any, details map[string]any) *Result {
	if details == nil {
		details = map[string]any{}
	}
	return &Result{Score: score, Details: details}
}

// IsSuccessful reports whether the evaluation passed its verdict rule.
// Failed evaluations report false.
func (r *Result) IsSuccessful() bool {
	ok, _ := r.Details[DetailIsSuccessful].(bool)
	return ok
}

// Reason returns the model's rationale, or the error message for a
// failed evaluation.
func (r *Result) Reason() string {
	reason, _ := r.Details[DetailReason].(string)
	return reason
}

// Failed reports whether the evaluation failed at runtime.
func (r *Result) Failed() bool {
	_, ok := r.Details[DetailError]
	return ok
}

// ErrorType returns the failure classification, or "" on success.
func (r *Result) ErrorType() string {
	errType, _ := r.Details[DetailErrorType].(string)
	return errType
}
