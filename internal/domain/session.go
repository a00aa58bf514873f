package domain

import (
	"sort"
	"time"
)

type SessionID string
type TopicID string

// SessionState is the lifecycle state of a session.
type SessionState string

const (
	StateDraft          SessionState = "Draft"
	StateActive         SessionState = "Active"
	StateOutcomeDefined SessionState = "OutcomeDefined"
	StatePending        SessionState = "Pending"
	StateClosed         SessionState = "Closed"
)

// ExpectedOutputType tags what kind of result a session is aiming for.
// It is informational only and never gates a transition.
type ExpectedOutputType string

const (
	OutputDecision      ExpectedOutputType = "Decision"
	OutputClarification ExpectedOutputType = "Clarification"
	OutputFeasibility   ExpectedOutputType = "Feasibility"
	OutputRiskMap       ExpectedOutputType = "RiskMap"
)

type OutcomeType string

const (
	OutcomeDecision OutcomeType = "Decision"
	OutcomeNextStep OutcomeType = "NextStep"
	OutcomePending  OutcomeType = "Pending"
)

// Topic is a discussion item owned by exactly one session.
type Topic struct {
	ID            TopicID
	Title         string
	Notes         string
	OpenQuestions []string
}

// Outcome is the single recorded result of a session. At most one exists
// per session; it is nil until the first outcome edit.
type Outcome struct {
	Type       OutcomeType
	Summary    string
	Owner      string
	NextStep   string
	DueDate    string
	ImpactArea string
}

// Session is the root aggregate of one facilitation session. Topics and the
// outcome are owned exclusively by the session.
type Session struct {
	ID                 SessionID
	Title              string
	Objective          string
	ExpectedOutputType ExpectedOutputType
	State              SessionState
	Topics             []Topic
	Outcome            *Outcome
	ClosingSummary     string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewTopic returns an empty topic. The id is produced by the caller so the
// factory stays deterministic.
func NewTopic(id TopicID) Topic {
	return Topic{
		ID:            id,
		OpenQuestions: []string{},
	}
}

// NewSession returns a Draft session with defaults. Both side effects of
// creation (fresh id, wall clock) are hoisted to the caller.
func NewSession(id SessionID, now time.Time) Session {
	return Session{
		ID:                 id,
		ExpectedOutputType: OutputDecision,
		State:              StateDraft,
		Topics:             []Topic{},
		Outcome:            nil,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// SortByCreatedAtDesc orders sessions newest-first. The sort is stable so
// sessions sharing a timestamp keep a deterministic relative order.
func SortByCreatedAtDesc(sessions []Session) []Session {
	sorted := make([]Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}
