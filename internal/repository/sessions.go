package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jinian-0/web-AI-cs1/internal/domain"
)

// SessionStore persists session records as JSON files under a single
// directory, one file per session named <session_id>.json. The directory is
// created on first write. The store assumes a single active process; two
// processes writing the same id race with last-writer-wins semantics.
type SessionStore struct {
	dir string
}

func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{dir: dir}
}

// Save writes the record keyed by its session id, replacing any previous
// content atomically (temp file + rename). Saving a record with an empty
// session id is a no-op.
func (s *SessionStore) Save(record domain.SessionRecord) error {
	if record.SessionID == "" {
		return nil
	}
	if record.Messages == nil {
		record.Messages = []domain.Message{}
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create sessions dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return fmt.Errorf("encode session %s: %w", record.SessionID, err)
	}

	tmp, err := os.CreateTemp(s.dir, record.SessionID+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write session %s: %w", record.SessionID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close session file %s: %w", record.SessionID, err)
	}
	if err := os.Rename(tmp.Name(), s.path(record.SessionID)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace session %s: %w", record.SessionID, err)
	}
	return nil
}

// ListRecent returns at most limit session ids in descending lexicographic
// order, which is descending chronological order given the fixed-width
// timestamp ids. A missing storage directory yields an empty list.
func (s *SessionStore) ListRecent(limit int) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sessions dir: %w", err)
	}

	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))
	if limit >= 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// Load reads the record stored under id. The session id inside the record is
// normalized to the storage key.
func (s *SessionStore) Load(id string) (*domain.SessionRecord, error) {
	if !validID(id) {
		return nil, domain.ErrSessionNotFound
	}
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", id, err)
	}

	var record domain.SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionCorrupt, err)
	}
	if record.Messages == nil {
		return nil, fmt.Errorf("%w: missing messages field", domain.ErrSessionCorrupt)
	}
	record.SessionID = id
	return &record, nil
}

// Delete removes the record stored under id. Deleting a session that does not
// exist is not an error.
func (s *SessionStore) Delete(id string) error {
	if !validID(id) {
		return nil
	}
	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("delete of missing session", "session_id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

func (s *SessionStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// validID rejects ids that could escape the sessions directory.
func validID(id string) bool {
	return id != "" && !strings.ContainsAny(id, `/\`) && id != "." && id != ".."
}
