package history

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store persists history entries between console sessions.
type Store interface {
	Save(entries []Entry) error
	Load() ([]Entry, error)
}

// FileStore keeps the history as one JSON document on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Load reads the stored entries. A missing file is an empty history, not
// an error.
func (s *FileStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}

// SaveTo writes the current entries, newest first, through st.
func (h *History) SaveTo(st Store) error {
	h.mu.RLock()
	entries := make([]Entry, len(h.entries))
	copy(entries, h.entries)
	h.mu.RUnlock()

	return st.Save(entries)
}

// LoadFrom replaces the buffer with the entries read from st, trimmed to
// the limit.
func (h *History) LoadFrom(st Store) error {
	entries, err := st.Load()
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(entries) > h.limit {
		entries = entries[:h.limit]
	}
	h.entries = entries
	return nil
}
