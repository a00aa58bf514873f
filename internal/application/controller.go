package application

import (
	"github.com/bnema/zclarity/internal/domain"
	"github.com/bnema/zclarity/internal/engine"
	"github.com/bnema/zclarity/internal/ports"
)

// Controller owns the in-memory application state and is the only writer to
// it. Every mutation goes through Dispatch: the engine computes the next
// state, the controller commits it, and only then mirrors it to storage.
// Storage failures therefore can never corrupt the in-memory state.
type Controller struct {
	engine *engine.Engine
	store  ports.SessionStore
	state  engine.AppState
}

func NewController(eng *engine.Engine, store ports.SessionStore) *Controller {
	if eng == nil {
		eng = engine.New(nil, nil)
	}

	return &Controller{engine: eng, store: store}
}

// Load builds the initial state from storage. A dangling active-id pointer
// (stale or hand-edited record) is cleared rather than kept.
func (c *Controller) Load() engine.AppState {
	sessions := c.store.LoadSessions()
	activeID := c.store.LoadActiveSessionID()

	if !sessionExists(sessions, activeID) {
		activeID = ""
	}

	c.state = c.engine.Apply(c.state, engine.InitFromStorage{
		Sessions:        sessions,
		ActiveSessionID: activeID,
	})

	return c.state
}

// Dispatch runs one action through the engine and persists the committed
// state. It always returns a valid state; illegal actions leave it
// unchanged.
func (c *Controller) Dispatch(action engine.Action) engine.AppState {
	c.state = c.engine.Apply(c.state, action)

	c.store.SaveSessions(c.state.Sessions)
	c.store.SaveActiveSessionID(c.state.ActiveSessionID)

	return c.state
}

func (c *Controller) State() engine.AppState {
	return c.state
}

// Sessions returns the session list in display order, newest first.
func (c *Controller) Sessions() []domain.Session {
	return domain.SortByCreatedAtDesc(c.state.Sessions)
}

// ActiveSession resolves the focused session.
func (c *Controller) ActiveSession() (domain.Session, error) {
	session, ok := c.state.ActiveSession()
	if !ok {
		return domain.Session{}, domain.ErrNoActiveSession
	}
	return session, nil
}

// Session looks a session up by id.
func (c *Controller) Session(id domain.SessionID) (domain.Session, error) {
	for _, session := range c.state.Sessions {
		if session.ID == id {
			return session, nil
		}
	}
	return domain.Session{}, domain.ErrSessionNotFound
}

// Topic looks a topic up inside the active session.
func (c *Controller) Topic(id domain.TopicID) (domain.Topic, error) {
	session, err := c.ActiveSession()
	if err != nil {
		return domain.Topic{}, err
	}

	for _, topic := range session.Topics {
		if topic.ID == id {
			return topic, nil
		}
	}
	return domain.Topic{}, domain.ErrTopicNotFound
}

func sessionExists(sessions []domain.Session, id domain.SessionID) bool {
	if id == "" {
		return false
	}
	for _, session := range sessions {
		if session.ID == id {
			return true
		}
	}
	return false
}
