package winlist

import (
	"sort"
	"strings"

	"github.com/jeffrimko/quickwin/internal/alias"
	"github.com/jeffrimko/quickwin/internal/strcompare"
)

// Order keys. Prefix-matched in this priority order by SetOrderBy.
const (
	OrderNone  = ""
	OrderTitle = "title"
	OrderExe   = "exe"
	OrderAlias = "alias"
)

var orderKeys = []string{OrderTitle, OrderExe, OrderAlias}

// Manager owns the entry list, the display order, and the tracked selection.
type Manager struct {
	entries  []*Entry
	selected *Entry
	orderBy  string
	aliases  *alias.Store
	excluder *Excluder
}

func NewManager(aliases *alias.Store, excluder *Excluder) *Manager {
	return &Manager{aliases: aliases, excluder: excluder}
}

// Reset replaces all entries with a fresh enumeration from src, skipping
// excluded windows. Ordinals are reassigned 1..N; the order key survives the
// reset and, when set, drives ordinal assignment. The previous selection is
// preserved when an identity-equal window reappears, otherwise the first
// entry is selected, otherwise nothing.
func (m *Manager) Reset(src Source) error {
	wins, err := src.List()
	if err != nil {
		return err
	}
	kept := make([]Window, 0, len(wins))
	for _, w := range wins {
		if m.excluder.Excluded(w) {
			continue
		}
		kept = append(kept, w)
	}
	if m.orderBy != OrderNone {
		sort.SliceStable(kept, func(i, j int) bool {
			return m.sortKey(kept[i]) < m.sortKey(kept[j])
		})
	}

	prevKey := ""
	if m.selected != nil {
		prevKey = m.selected.Window.Key()
	}
	m.entries = nil
	m.selected = nil
	keys := make([]string, 0, len(kept))
	for i, w := range kept {
		e := &Entry{Num: i + 1, Window: w, visible: true}
		m.entries = append(m.entries, e)
		keys = append(keys, w.Key())
		if m.selected == nil && prevKey != "" && w.Key() == prevKey {
			m.selected = e
		}
	}
	if m.selected == nil && len(m.entries) > 0 {
		m.selected = m.entries[0]
	}
	m.aliases.SetKnown(keys)
	return nil
}

// ShowAll restores every entry to visible; filters for the current input are
// reapplied from scratch each event.
func (m *Manager) ShowAll() {
	for _, e := range m.entries {
		e.visible = true
	}
}

// Len returns the total number of managed entries, visible or not.
func (m *Manager) Len() int { return len(m.entries) }

// Visible returns the visible entries in display order.
func (m *Manager) Visible() []*Entry {
	var out []*Entry
	for _, e := range m.entries {
		if e.visible {
			out = append(out, e)
		}
	}
	if m.orderBy != OrderNone {
		sort.SliceStable(out, func(i, j int) bool {
			return m.sortKey(out[i].Window) < m.sortKey(out[j].Window)
		})
	}
	return out
}

func (m *Manager) sortKey(w Window) string {
	switch m.orderBy {
	case OrderTitle:
		return w.Title
	case OrderExe:
		return w.Exe
	case OrderAlias:
		return m.aliases.Get(w.Key())
	default:
		return ""
	}
}

// Selected returns the currently selected entry, if any.
func (m *Manager) Selected() (*Entry, bool) {
	if m.selected == nil {
		return nil, false
	}
	return m.selected, true
}

// SelectedIndex returns the selection's position within the visible set, or
// 0 when nothing is selected.
func (m *Manager) SelectedIndex() int {
	if m.selected == nil {
		return 0
	}
	for i, e := range m.Visible() {
		if e == m.selected {
			return i
		}
	}
	return 0
}

// SelectIndex moves the selection to the idx-th visible entry. Out-of-range
// indices leave the selection unchanged.
func (m *Manager) SelectIndex(idx int) {
	vis := m.Visible()
	if idx >= 0 && idx < len(vis) {
		m.selected = vis[idx]
	}
}

// ClearSelection drops the selection entirely.
func (m *Manager) ClearSelection() { m.selected = nil }

// Filter hides every visible entry whose field value does not match text.
// field selects the value to match (nil means the entry's alias); entries
// with an empty field value are always hidden. When the selected entry is
// hidden, the selection moves to the nearest preceding entry that stays
// visible, or becomes empty when none precedes it.
func (m *Manager) Filter(text string, field func(Window) string, exactMode bool) {
	var prevVisible *Entry
	for _, e := range m.Visible() {
		value := ""
		if field != nil {
			value = field(e.Window)
		} else {
			value = m.aliases.Get(e.Window.Key())
		}
		match := false
		if value != "" {
			if exactMode {
				match = strcompare.Exact(text, value)
			} else {
				match = strcompare.Choice(text, value)
			}
		}
		e.visible = match
		if !match && e == m.selected {
			m.selected = prevVisible
		}
		if match {
			prevVisible = e
		}
	}
}

// SetOrderBy sets the display order from a key prefix ("t" matches "title").
// The keys are tried in a fixed priority order: title, exe, alias. An empty,
// ambiguous, or unmatched key clears the ordering; the return reports
// whether a key was matched.
func (m *Manager) SetOrderBy(key string) bool {
	if key == "" {
		m.orderBy = OrderNone
		return false
	}
	for _, valid := range orderKeys {
		if strings.HasPrefix(valid, key) {
			m.orderBy = valid
			return true
		}
	}
	m.orderBy = OrderNone
	return false
}

// OrderBy returns the active order key, or OrderNone.
func (m *Manager) OrderBy() string { return m.orderBy }

// Alias returns the alias of e's window.
func (m *Manager) Alias(e *Entry) string {
	return m.aliases.Get(e.Window.Key())
}

// SetAlias assigns (or clears, for an empty name) the alias of e's window.
func (m *Manager) SetAlias(e *Entry, name string) error {
	if e == nil {
		return nil
	}
	return m.aliases.Set(e.Window.Key(), name)
}

// DeleteAllAliases clears the whole alias mapping.
func (m *Manager) DeleteAllAliases() error {
	return m.aliases.DeleteAll()
}
