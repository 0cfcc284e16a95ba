package types

import "github.com/google/uuid"

// FieldVerdict is the outcome of validating one dimension of one record.
type FieldVerdict struct {
	Dimension   Dimension `json:"dimension"`
	Passed      bool      `json:"passed"`
	MatchedRule string    `json:"matched_rule,omitempty"` // description of the rule entry that decided the outcome
	Reason      string    `json:"reason"`
}

// RecordIssue is one error or warning attached to a record, tagged with the
// dimension that produced it.
type RecordIssue struct {
	Dimension Dimension `json:"dimension"`
	Message   string    `json:"message"`
}

// RecordVerdict is the full evaluation result for one equipment record.
// Score starts at 100 and is reduced by a fixed deduction per failed
// dimension, floored at 0. PassedOverall is false iff at least one
// error-class dimension failed; OS failures are warnings and never flip it.
type RecordVerdict struct {
	RecordID      uuid.UUID      `json:"record_id"`
	PassedOverall bool           `json:"passed_overall"`
	Score         int            `json:"score"`
	FieldVerdicts []FieldVerdict `json:"field_verdicts"`
	Errors        []RecordIssue  `json:"errors,omitempty"`
	Warnings      []RecordIssue  `json:"warnings,omitempty"`
}
