// Package processor drives the request/response cycle: one external input
// event in, one render directive out. The root processor narrows the window
// list; prefix-triggered subprocessors take over the cycle for other item
// universes (named command snippets, launchable files).
package processor

import "github.com/jeffrimko/quickwin/internal/winlist"

// NavKey is the navigation key carried by an input event.
type NavKey int

const (
	NavNone NavKey = iota
	NavPrev
	NavNext
	NavInto
	// NavOutOf is part of the event contract for subprocessors that nest
	// listings. None of the current processors react to it.
	NavOutOf
)

// Input is one external input event.
type Input struct {
	// Text is the current raw input line.
	Text string
	// Commit is set when the user confirmed the input/selection.
	Commit bool
	// WasHidden is set when the shell was hidden before this event.
	WasHidden bool
	// Activated is set by the router when the handling processor changed
	// with this event.
	Activated bool
	// Nav is the navigation key, if any.
	Nav NavKey
	// SelRow is the highlighted row index from the prior render.
	SelRow int
	// SelRowCells holds the highlighted row's cell values from the prior
	// render, empty when nothing was highlighted.
	SelRowCells []string
}

// Column describes one table column with a relative width weight.
type Column struct {
	Name   string
	Weight int
}

// Table is the ordered row set to render.
type Table struct {
	Columns []Column
	Rows    [][]string
	Cursor  int
}

// Output tells the shell what to change after an event. Zero fields mean
// "leave that part alone".
type Output struct {
	Status       string
	Table        *Table
	Hide         bool
	ReplaceInput string
	HasReplace   bool
}

// SetInput directs the shell to replace the input line with text.
func (o *Output) SetInput(text string) {
	o.ReplaceInput = text
	o.HasReplace = true
}

// Processor handles one input event. The second return is false when the
// event produced no output at all.
type Processor interface {
	Help() string
	Update(in Input) (Output, bool)
}

// Subprocessor is a processor that claims events by inspecting the input,
// typically from a leading prefix character.
type Subprocessor interface {
	Processor
	Use(in Input) bool
}

// Activator is the side-effect sink: bring a window to front, open a path.
// Implemented outside the core.
type Activator interface {
	Activate(w winlist.Window) error
	Open(path string) error
}

// cell returns the idx-th cell of a row, or "".
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
