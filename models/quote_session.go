package models

import "time"

// SessionPhase is the sub-state of the contact step while a submission runs.
type SessionPhase string

const (
	PhaseIdle       SessionPhase = "idle"
	PhaseSubmitting SessionPhase = "submitting"
)

// QuoteSession is one opened wizard: its position, draft and reference snapshot.
type QuoteSession struct {
	ID              string           `json:"sessionId"`
	Step            Step             `json:"step"`
	Draft           QuoteDraft       `json:"draft"`
	Phase           SessionPhase     `json:"phase"`
	Reference       ReferenceDataSet `json:"reference"`
	ReferenceLoaded bool             `json:"referenceLoaded"`
	SubmittingSince *time.Time       `json:"submittingSince,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
