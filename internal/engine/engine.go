package engine

import (
	"strings"

	"github.com/bnema/zclarity/internal/domain"
	"github.com/bnema/zclarity/internal/ports"
)

// AppState is the whole application state. An empty ActiveSessionID means no
// session is focused.
type AppState struct {
	Sessions        []domain.Session
	ActiveSessionID domain.SessionID
}

// ActiveSession resolves the active-id pointer against the session list.
func (s AppState) ActiveSession() (domain.Session, bool) {
	if s.ActiveSessionID == "" {
		return domain.Session{}, false
	}
	for _, session := range s.Sessions {
		if session.ID == s.ActiveSessionID {
			return session, true
		}
	}
	return domain.Session{}, false
}

// Engine is the pure transition function over AppState. The two creation
// side effects (fresh ids, wall clock) are injected so every transition is
// deterministic under test.
//
// Apply is total: any action against any state returns a well-formed next
// state. Illegal transitions and dangling references return the input state
// unchanged, never an error.
type Engine struct {
	ids   ports.IDGenerator
	clock ports.Clock
}

func New(ids ports.IDGenerator, clock ports.Clock) *Engine {
	if ids == nil {
		ids = ports.UUIDGenerator{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Engine{ids: ids, clock: clock}
}

func (e *Engine) Apply(state AppState, action Action) AppState {
	switch a := action.(type) {
	case InitFromStorage:
		return AppState{
			Sessions:        a.Sessions,
			ActiveSessionID: a.ActiveSessionID,
		}

	case NewSession:
		session := domain.NewSession(domain.SessionID(e.ids.NewID()), e.clock.Now())
		sessions := make([]domain.Session, 0, len(state.Sessions)+1)
		sessions = append(sessions, state.Sessions...)
		sessions = append(sessions, session)
		return AppState{Sessions: sessions, ActiveSessionID: session.ID}

	case SelectSession:
		for _, session := range state.Sessions {
			if session.ID == a.SessionID {
				return AppState{Sessions: state.Sessions, ActiveSessionID: a.SessionID}
			}
		}
		return state

	case DeleteSession:
		return e.deleteSession(state, a.SessionID)

	case UpdateIntent:
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			if a.Title != nil {
				session.Title = *a.Title
			}
			if a.Objective != nil {
				session.Objective = *a.Objective
			}
			if a.ExpectedOutputType != nil {
				session.ExpectedOutputType = *a.ExpectedOutputType
			}
			return session
		})

	case StartSession:
		active, ok := state.ActiveSession()
		if !ok || active.State != domain.StateDraft || !domain.CanStart(active) {
			return state
		}
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			session.State = domain.StateActive
			return session
		})

	case AddTopic:
		topic := domain.NewTopic(domain.TopicID(e.ids.NewID()))
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			topics := make([]domain.Topic, 0, len(session.Topics)+1)
			topics = append(topics, session.Topics...)
			topics = append(topics, topic)
			session.Topics = topics
			return session
		})

	case UpdateTopic:
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			session.Topics = mapTopic(session.Topics, a.TopicID, func(topic domain.Topic) domain.Topic {
				if a.Title != nil {
					topic.Title = *a.Title
				}
				if a.Notes != nil {
					topic.Notes = *a.Notes
				}
				return topic
			})
			return session
		})

	case RemoveTopic:
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			topics := make([]domain.Topic, 0, len(session.Topics))
			for _, topic := range session.Topics {
				if topic.ID != a.TopicID {
					topics = append(topics, topic)
				}
			}
			session.Topics = topics
			return session
		})

	case AddOpenQuestion:
		if strings.TrimSpace(a.Question) == "" {
			return state
		}
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			session.Topics = mapTopic(session.Topics, a.TopicID, func(topic domain.Topic) domain.Topic {
				questions := make([]string, 0, len(topic.OpenQuestions)+1)
				questions = append(questions, topic.OpenQuestions...)
				questions = append(questions, a.Question)
				topic.OpenQuestions = questions
				return topic
			})
			return session
		})

	case RemoveOpenQuestion:
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			session.Topics = mapTopic(session.Topics, a.TopicID, func(topic domain.Topic) domain.Topic {
				if a.Index < 0 || a.Index >= len(topic.OpenQuestions) {
					return topic
				}
				questions := make([]string, 0, len(topic.OpenQuestions)-1)
				questions = append(questions, topic.OpenQuestions[:a.Index]...)
				questions = append(questions, topic.OpenQuestions[a.Index+1:]...)
				topic.OpenQuestions = questions
				return topic
			})
			return session
		})

	case UpdateOutcome:
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			outcome := domain.Outcome{Type: domain.OutcomeDecision}
			if session.Outcome != nil {
				outcome = *session.Outcome
			}
			if a.Type != nil {
				outcome.Type = *a.Type
			}
			if a.Summary != nil {
				outcome.Summary = *a.Summary
			}
			if a.Owner != nil {
				outcome.Owner = *a.Owner
			}
			if a.NextStep != nil {
				outcome.NextStep = *a.NextStep
			}
			if a.DueDate != nil {
				outcome.DueDate = *a.DueDate
			}
			if a.ImpactArea != nil {
				outcome.ImpactArea = *a.ImpactArea
			}

			session.Outcome = &outcome
			session.State = deriveOutcomeState(session.State, domain.IsOutcomeComplete(&outcome))
			return session
		})

	case ClearOutcome:
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			session.Outcome = nil
			if session.State == domain.StateOutcomeDefined {
				session.State = domain.StateActive
			}
			return session
		})

	case UpdateClosingSummary:
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			session.ClosingSummary = a.Summary
			return session
		})

	case MarkPending:
		active, ok := state.ActiveSession()
		if !ok || active.State != domain.StateOutcomeDefined || !domain.CanMarkPending(active) {
			return state
		}
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			session.State = domain.StatePending
			return session
		})

	case CloseSession:
		active, ok := state.ActiveSession()
		if !ok || active.State != domain.StateOutcomeDefined || !domain.CanClose(active) {
			return state
		}
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			session.State = domain.StateClosed
			return session
		})

	case ReopenSession:
		active, ok := state.ActiveSession()
		if !ok || active.State != domain.StatePending {
			return state
		}
		return e.updateActiveSession(state, func(session domain.Session) domain.Session {
			session.State = domain.StateActive
			return session
		})

	default:
		return state
	}
}

// deriveOutcomeState applies the Active/OutcomeDefined derivation rule that
// rides along with every outcome edit. Completeness can promote only from
// Active or Pending, and incompleteness can demote only from OutcomeDefined;
// Draft and Closed are never touched by this rule.
func deriveOutcomeState(current domain.SessionState, complete bool) domain.SessionState {
	if complete {
		if current == domain.StateActive || current == domain.StatePending {
			return domain.StateOutcomeDefined
		}
		return current
	}
	if current == domain.StateOutcomeDefined {
		return domain.StateActive
	}
	return current
}

// updateActiveSession rebuilds the session list with the updater applied to
// the active session, stamping its UpdatedAt. No-op when the active pointer
// does not resolve. The input slice is never mutated.
func (e *Engine) updateActiveSession(state AppState, update func(domain.Session) domain.Session) AppState {
	if _, ok := state.ActiveSession(); !ok {
		return state
	}

	now := e.clock.Now()
	sessions := make([]domain.Session, len(state.Sessions))
	for i, session := range state.Sessions {
		if session.ID == state.ActiveSessionID {
			updated := update(session)
			updated.UpdatedAt = now
			sessions[i] = updated
		} else {
			sessions[i] = session
		}
	}

	return AppState{Sessions: sessions, ActiveSessionID: state.ActiveSessionID}
}

func (e *Engine) deleteSession(state AppState, id domain.SessionID) AppState {
	sessions := make([]domain.Session, 0, len(state.Sessions))
	for _, session := range state.Sessions {
		if session.ID != id {
			sessions = append(sessions, session)
		}
	}
	if len(sessions) == len(state.Sessions) {
		return state
	}

	activeID := state.ActiveSessionID
	if activeID == id {
		activeID = ""
		if len(sessions) > 0 {
			activeID = domain.SortByCreatedAtDesc(sessions)[0].ID
		}
	}

	return AppState{Sessions: sessions, ActiveSessionID: activeID}
}

func mapTopic(topics []domain.Topic, id domain.TopicID, update func(domain.Topic) domain.Topic) []domain.Topic {
	mapped := make([]domain.Topic, len(topics))
	for i, topic := range topics {
		if topic.ID == id {
			mapped[i] = update(topic)
		} else {
			mapped[i] = topic
		}
	}
	return mapped
}
