package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/zclarity/internal/domain"
	"github.com/bnema/zclarity/internal/ports"
)

const (
	sessionsFile  = "sessions.json"
	activeIDFile  = "active_session"
	storeDirMode  = 0o700
	storeFileMode = 0o600

	sessionsTempPattern = ".sessions-*.json.tmp"
)

// Store keeps the session collection and the active-id pointer as two
// independent records under one directory, the way the browser build kept
// two localStorage keys.
//
// Reads degrade to empty on any failure and writes are best-effort, per the
// SessionStore contract. Entries that do not decode as an object with a
// string id are dropped during load rather than failing the whole record.
type Store struct {
	dir string
	mu  sync.RWMutex
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

func (s *Store) LoadSessions() []domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.dir, sessionsFile))
	if err != nil {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}

	sessions := make([]domain.Session, 0, len(entries))
	for _, raw := range entries {
		record, ok := decodeSessionEntry(raw)
		if !ok {
			continue
		}
		sessions = append(sessions, fromRecord(record))
	}

	return sessions
}

// decodeSessionEntry probes the entry shape before committing to a full
// decode: anything that is not a JSON object carrying a string id is
// rejected. Legacy and hand-edited records fail here silently.
func decodeSessionEntry(raw json.RawMessage) (sessionRecord, bool) {
	var probe struct {
		ID *string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return sessionRecord{}, false
	}
	if probe.ID == nil {
		return sessionRecord{}, false
	}

	var record sessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return sessionRecord{}, false
	}

	return record, true
}

func (s *Store) LoadActiveSessionID() domain.SessionID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.dir, activeIDFile))
	if err != nil {
		return ""
	}

	return domain.SessionID(data)
}

func (s *Store) SaveSessions(sessions []domain.Session) {
	records := make([]sessionRecord, 0, len(sessions))
	for _, session := range sessions {
		records = append(records, toRecord(session))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeRecord(sessionsFile, data)
}

func (s *Store) SaveActiveSessionID(id domain.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		_ = os.Remove(filepath.Join(s.dir, activeIDFile))
		return
	}

	s.writeRecord(activeIDFile, []byte(id))
}

// writeRecord replaces one record atomically via a temp file. Failures are
// swallowed: autosave must never surface storage trouble to the caller.
func (s *Store) writeRecord(name string, data []byte) {
	if err := os.MkdirAll(s.dir, storeDirMode); err != nil {
		return
	}

	tempFile, err := os.CreateTemp(s.dir, sessionsTempPattern)
	if err != nil {
		return
	}

	tempName := tempFile.Name()
	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempName)
		return
	}
	if err := tempFile.Chmod(storeFileMode); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempName)
		return
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempName)
		return
	}

	if err := os.Rename(tempName, filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tempName)
	}
}
