// Package alias maintains the bidirectional mapping between item identities
// and user-chosen alias names. Aliases are globally unique: assigning an
// alias that another item owns moves it. The mapping persists through the
// blob store and is pruned against the current item universe on every save.
package alias

import (
	"encoding/json"
	"fmt"

	"github.com/jeffrimko/quickwin/internal/storage"
)

// Record is one persisted identity/alias pair.
type Record struct {
	ID    string `json:"id"`
	Alias string `json:"alias"`
}

// Store holds the alias mapping for one item universe.
type Store struct {
	blob    storage.Blob
	name    string
	entries []Record
	known   map[string]bool
}

// NewStore loads the named alias mapping from blob. A missing or malformed
// blob yields an empty store.
func NewStore(blob storage.Blob, name string) *Store {
	s := &Store{blob: blob, name: name}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := s.blob.Read(s.name)
	if err != nil || len(data) == 0 {
		return
	}
	var entries []Record
	if err := json.Unmarshal(data, &entries); err != nil {
		return // malformed aliases are treated as empty
	}
	for _, e := range entries {
		if e.Alias == "" {
			continue
		}
		s.entries = append(s.entries, e)
	}
}

// SetKnown records the identities present in the current universe. Entries
// outside it are silently dropped on the next save.
func (s *Store) SetKnown(ids []string) {
	s.known = make(map[string]bool, len(ids))
	for _, id := range ids {
		s.known[id] = true
	}
}

// Get returns the alias for id, or "" when unaliased.
func (s *Store) Get(id string) string {
	for _, e := range s.entries {
		if e.ID == id {
			return e.Alias
		}
	}
	return ""
}

// Set assigns name to id and persists. A name owned by a different item is
// moved here; an empty name clears the alias for id.
func (s *Store) Set(id, name string) error {
	if name != "" {
		s.remove(func(e Record) bool { return e.Alias == name })
	}
	s.remove(func(e Record) bool { return e.ID == id })
	if name != "" {
		s.entries = append(s.entries, Record{ID: id, Alias: name})
	}
	return s.save()
}

// DeleteAll clears the whole mapping and persists.
func (s *Store) DeleteAll() error {
	s.entries = nil
	return s.save()
}

func (s *Store) remove(match func(Record) bool) {
	out := s.entries[:0]
	for _, e := range s.entries {
		if !match(e) {
			out = append(out, e)
		}
	}
	s.entries = out
}

func (s *Store) save() error {
	if s.known != nil {
		s.remove(func(e Record) bool { return !s.known[e.ID] })
	}
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode aliases: %w", err)
	}
	if err := s.blob.Write(s.name, data); err != nil {
		return fmt.Errorf("save aliases: %w", err)
	}
	return nil
}
