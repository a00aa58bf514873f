package domain

import "strings"

// The predicates below are content gates only. They never look at the
// session state; the transition engine re-checks state legality on its own,
// so a caller skipping these cannot force an illegal transition.

// IsOutcomeComplete reports whether the outcome exists and has summary,
// owner and next step filled after trimming.
func IsOutcomeComplete(outcome *Outcome) bool {
	if outcome == nil {
		return false
	}
	return strings.TrimSpace(outcome.Summary) != "" &&
		strings.TrimSpace(outcome.Owner) != "" &&
		strings.TrimSpace(outcome.NextStep) != ""
}

// CanStart reports whether the session has a usable objective.
func CanStart(session Session) bool {
	return strings.TrimSpace(session.Objective) != ""
}

// CanMarkPending reports whether the session may be parked as pending.
func CanMarkPending(session Session) bool {
	return IsOutcomeComplete(session.Outcome)
}

// CanClose reports whether the session has both a complete outcome and a
// closing summary.
func CanClose(session Session) bool {
	return IsOutcomeComplete(session.Outcome) &&
		strings.TrimSpace(session.ClosingSummary) != ""
}
