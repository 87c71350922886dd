// Package winlist holds the live candidate window list: a filterable,
// orderable set of entries with one tracked selection. Entries are rebuilt
// wholesale on reset; identity across resets is by field equality, not by
// handle, since OS window handles are not stable across enumerations.
package winlist

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Window is one switchable item: a window title plus the owning executable
// (or any comparable pair of fields for non-window universes).
type Window struct {
	Title string
	Exe   string
}

// Key returns the stable value-equality identity for the window, used to
// carry selection and aliases across resets and process restarts.
func (w Window) Key() string {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(w.Title)))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(w.Exe)))
	return fmt.Sprintf("%016x", h.Sum64())
}

// Source enumerates the current window universe. Called only during reset.
type Source interface {
	List() ([]Window, error)
}

// Entry wraps a window with its per-reset ordinal and visibility flag.
// Ordinals are 1-based and stable until the next reset.
type Entry struct {
	Num     int
	Window  Window
	visible bool
}

// Visible reports whether the entry passes the currently applied filters.
func (e *Entry) Visible() bool { return e.visible }
