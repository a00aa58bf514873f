package engine

import "github.com/bnema/zclarity/internal/domain"

// Action is the closed set of inputs the transition engine accepts. The UI
// layer never edits session fields directly; it dispatches one of these.
//
// Optional payload fields are pointers so "not provided" and "set to empty"
// stay distinct during merges.
type Action interface {
	isAction()
}

// InitFromStorage replaces the whole application state with a snapshot.
// Used once at startup.
type InitFromStorage struct {
	Sessions        []domain.Session
	ActiveSessionID domain.SessionID
}

// NewSession appends a fresh Draft session and makes it active.
type NewSession struct{}

// SelectSession re-points the active id to an existing session.
type SelectSession struct {
	SessionID domain.SessionID
}

// DeleteSession removes a session. If it was active, the most recently
// created survivor becomes active.
type DeleteSession struct {
	SessionID domain.SessionID
}

// UpdateIntent merges title/objective/output-type edits into the active
// session.
type UpdateIntent struct {
	Title              *string
	Objective          *string
	ExpectedOutputType *domain.ExpectedOutputType
}

// StartSession moves the active session from Draft to Active when the
// objective is filled.
type StartSession struct{}

// AddTopic appends an empty topic to the active session.
type AddTopic struct{}

// UpdateTopic merges title/notes edits into one topic of the active session.
type UpdateTopic struct {
	TopicID domain.TopicID
	Title   *string
	Notes   *string
}

// RemoveTopic deletes one topic from the active session.
type RemoveTopic struct {
	TopicID domain.TopicID
}

// AddOpenQuestion appends a question to a topic. Whitespace-only input is a
// silent no-op.
type AddOpenQuestion struct {
	TopicID  domain.TopicID
	Question string
}

// RemoveOpenQuestion deletes a question by positional index.
type RemoveOpenQuestion struct {
	TopicID domain.TopicID
	Index   int
}

// UpdateOutcome merges outcome edits into the active session, creating a
// default outcome first when absent, then re-derives the
// Active/OutcomeDefined state from completeness.
type UpdateOutcome struct {
	Type       *domain.OutcomeType
	Summary    *string
	Owner      *string
	NextStep   *string
	DueDate    *string
	ImpactArea *string
}

// ClearOutcome drops the outcome entirely.
type ClearOutcome struct{}

// UpdateClosingSummary sets the closing summary text.
type UpdateClosingSummary struct {
	Summary string
}

// MarkPending parks an OutcomeDefined session as Pending.
type MarkPending struct{}

// CloseSession closes an OutcomeDefined session that has a closing summary.
type CloseSession struct{}

// ReopenSession brings a Pending session back to Active.
type ReopenSession struct{}

func (InitFromStorage) isAction()      {}
func (NewSession) isAction()           {}
func (SelectSession) isAction()        {}
func (DeleteSession) isAction()        {}
func (UpdateIntent) isAction()         {}
func (StartSession) isAction()         {}
func (AddTopic) isAction()             {}
func (UpdateTopic) isAction()          {}
func (RemoveTopic) isAction()          {}
func (AddOpenQuestion) isAction()      {}
func (RemoveOpenQuestion) isAction()   {}
func (UpdateOutcome) isAction()        {}
func (ClearOutcome) isAction()         {}
func (UpdateClosingSummary) isAction() {}
func (MarkPending) isAction()          {}
func (CloseSession) isAction()         {}
func (ReopenSession) isAction()        {}
