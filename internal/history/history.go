// Package history keeps the per-processor command history: a size-bounded,
// deduplicated list of past inputs with an optional remembered row, persisted
// through the blob store, plus the recall cursor that walks it.
package history

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jeffrimko/quickwin/internal/storage"
)

// Entry is one history record.
type Entry struct {
	Cmd string `json:"cmd"`
	Row string `json:"row,omitempty"`
}

// Store is the persistent entry list. Entries are ordered most recent first,
// deduplicated by exact command text, and capped at max entries.
type Store struct {
	blob    storage.Blob
	name    string
	max     int
	entries []Entry
}

// NewStore loads the named history from blob. A missing or malformed blob
// yields an empty store; load problems are never fatal.
func NewStore(blob storage.Blob, name string, max int) *Store {
	s := &Store{blob: blob, name: name, max: max}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := s.blob.Read(s.name)
	if err != nil || len(data) == 0 {
		return
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return // malformed history is treated as empty
	}
	s.entries = entries
}

// Add prepends a new entry for cmd (trimmed), removing any prior entry with
// the same command text and truncating to the cap, then persists.
func (s *Store) Add(cmd, row string) error {
	cmd = strings.TrimSpace(cmd)
	next := make([]Entry, 0, len(s.entries)+1)
	next = append(next, Entry{Cmd: cmd, Row: row})
	for _, e := range s.entries {
		if e.Cmd == cmd {
			continue
		}
		if len(next) >= s.max {
			break
		}
		next = append(next, e)
	}
	s.entries = next
	return s.save()
}

// Get returns the idx-th entry (0 = most recent) among entries whose command
// starts with prefix. An empty prefix matches all entries.
func (s *Store) Get(prefix string, idx int) (Entry, bool) {
	matched := s.filter(prefix)
	if idx < 0 || idx >= len(matched) {
		return Entry{}, false
	}
	return matched[idx], true
}

// Len counts entries whose command starts with prefix.
func (s *Store) Len(prefix string) int {
	return len(s.filter(prefix))
}

func (s *Store) filter(prefix string) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if strings.HasPrefix(e.Cmd, prefix) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) save() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.blob.Write(s.name, data); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Manager owns the recall cursor over a Store. The prefix context is captured
// lazily on the first navigation after a reset and held until the input
// returns to empty, so repeated recall walks a stable subset even as the
// displayed text changes.
type Manager struct {
	store    *Store
	pointer  int
	prefix   string
	captured bool
}

func NewManager(store *Store) *Manager {
	m := &Manager{store: store}
	m.Reset()
	return m
}

// Reset clears the cursor and forgets the captured prefix context. Called
// when the input becomes hidden or a processor is (re)activated.
func (m *Manager) Reset() {
	m.pointer = -1
	m.prefix = ""
	m.captured = false
}

// Add records a committed input.
func (m *Manager) Add(cmd, row string) error {
	return m.store.Add(cmd, row)
}

// Older moves the cursor toward older entries and returns the command text
// there. Reports false when no entry matches the captured prefix.
func (m *Manager) Older(prefix string) (string, bool) {
	m.capture(prefix)
	m.pointer++
	if n := m.store.Len(m.context()); m.pointer >= n {
		m.pointer = n - 1
	}
	e, ok := m.store.Get(m.context(), m.pointer)
	return e.Cmd, ok
}

// Newer moves the cursor back toward the most recent entry.
func (m *Manager) Newer(prefix string) (string, bool) {
	m.capture(prefix)
	m.pointer--
	if m.pointer < 0 {
		m.pointer = 0
	}
	e, ok := m.store.Get(m.context(), m.pointer)
	return e.Cmd, ok
}

// MatchToRow returns the index within rows of the row remembered by the most
// recent entry matching prefix, or -1.
func (m *Manager) MatchToRow(prefix string, rows []string) int {
	e, ok := m.store.Get(prefix, 0)
	if !ok || e.Row == "" {
		return -1
	}
	for i, r := range rows {
		if r == e.Row {
			return i
		}
	}
	return -1
}

// capture pins the prefix context on first navigation. The context is
// recaptured while it matches nothing, and dropped once the live input
// returns to empty.
func (m *Manager) capture(prefix string) {
	switch {
	case !m.captured || m.store.Len(m.context()) == 0:
		m.prefix = prefix
		m.captured = true
	case prefix == "":
		m.prefix = ""
		m.captured = false
	}
}

func (m *Manager) context() string {
	if !m.captured {
		return ""
	}
	return m.prefix
}
