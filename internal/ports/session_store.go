package ports

import "github.com/bnema/zclarity/internal/domain"

// SessionStore mirrors the in-memory session collection to local persistent
// storage as two independent records: the session list and the active-id
// pointer.
//
// The contract is deliberately error-free: every read failure (medium
// unavailable, record missing, malformed payload) degrades to an empty
// result, and writes are best-effort. Autosave after each dispatch must
// never be able to fail the dispatch itself.
type SessionStore interface {
	LoadSessions() []domain.Session
	LoadActiveSessionID() domain.SessionID
	SaveSessions(sessions []domain.Session)
	SaveActiveSessionID(id domain.SessionID)
}
