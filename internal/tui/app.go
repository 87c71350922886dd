package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeffrimko/quickwin/internal/processor"
)

// App is the selector shell: one input line, a status line and the item
// table. Every edit, navigation key and commit becomes one processor event.
type App struct {
	router *processor.Router

	// Reload is invoked on ctrl+r before the list refreshes, typically to
	// re-read the exclusion rules.
	Reload func() error

	input  textinput.Model
	table  *processor.Table
	cursor int
	status string
	width  int
	height int

	wasHidden bool
	lastText  string
	showHelp  bool
}

func New(router *processor.Router) *App {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	return &App{
		router:    router,
		input:     ti,
		wasHidden: true,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return refreshMsg{} })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil
	case refreshMsg:
		return a.dispatch(processor.Input{})
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc", "ctrl+c":
		return a, tea.Quit
	case "f1":
		a.showHelp = !a.showHelp
		return a, nil
	case "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down":
		if a.table != nil && a.cursor < len(a.table.Rows)-1 {
			a.cursor++
		}
		return a, nil
	case "ctrl+r":
		if a.Reload != nil {
			if err := a.Reload(); err != nil {
				a.status = fmt.Sprintf("Reload failed: %v", err)
				return a, nil
			}
		}
		a.input.SetValue("")
		return a.dispatch(processor.Input{})
	case "ctrl+p":
		return a.dispatch(processor.Input{Nav: processor.NavPrev})
	case "ctrl+n":
		return a.dispatch(processor.Input{Nav: processor.NavNext})
	case "tab":
		return a.dispatch(processor.Input{Nav: processor.NavInto})
	case "shift+tab":
		return a.dispatch(processor.Input{Nav: processor.NavOutOf})
	case "enter":
		return a.dispatch(processor.Input{Commit: true})
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	if a.input.Value() != a.lastText {
		model, dcmd := a.dispatch(processor.Input{})
		return model, tea.Batch(cmd, dcmd)
	}
	return a, cmd
}

// dispatch fills in the shared event fields, runs the router and applies the
// output. An input replacement triggers one synchronous follow-up event so
// the table reflects the replaced text immediately.
func (a *App) dispatch(in processor.Input) (tea.Model, tea.Cmd) {
	for range 2 {
		in.Text = a.input.Value()
		in.WasHidden = a.wasHidden
		in.SelRow = a.cursor
		in.SelRowCells = a.selectedCells()
		a.wasHidden = false
		a.lastText = in.Text

		out, ok := a.router.Update(in)
		if !ok {
			return a, nil
		}
		if out.Hide {
			a.router.Deactivate()
			return a, tea.Quit
		}
		if out.Status != "" {
			a.status = out.Status
		}
		if out.Table != nil {
			a.table = out.Table
			a.cursor = out.Table.Cursor
			if a.cursor >= len(out.Table.Rows) {
				a.cursor = 0
			}
		}
		if !out.HasReplace {
			break
		}
		a.input.SetValue(out.ReplaceInput)
		a.input.CursorEnd()
		in = processor.Input{}
	}
	return a, nil
}

func (a *App) selectedCells() []string {
	if a.table == nil || a.cursor < 0 || a.cursor >= len(a.table.Rows) {
		return nil
	}
	return a.table.Rows[a.cursor]
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.input.View())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(a.status))
	b.WriteString("\n")
	if a.showHelp {
		b.WriteString(a.router.Help())
		return b.String()
	}
	b.WriteString(a.renderTable())
	return b.String()
}

// styles
var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

func (a *App) renderTable() string {
	if a.table == nil || len(a.table.Columns) == 0 {
		return ""
	}
	widths := columnWidths(a.table.Columns, a.tableWidth())

	var b strings.Builder
	header := make([]string, len(a.table.Columns))
	for i, col := range a.table.Columns {
		header[i] = pad(col.Name, widths[i])
	}
	b.WriteString(headerStyle.Render(strings.Join(header, " ")))
	b.WriteString("\n")

	rows := a.table.Rows
	if max := a.height - 4; max > 0 && len(rows) > max {
		rows = rows[:max]
	}
	for i, row := range rows {
		cells := make([]string, len(widths))
		for j := range widths {
			var v string
			if j < len(row) {
				v = row[j]
			}
			cells[j] = pad(v, widths[j])
		}
		line := strings.Join(cells, " ")
		if i == a.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) tableWidth() int {
	if a.width > 0 {
		return a.width
	}
	return 100
}

// columnWidths splits total across columns proportionally to their weights.
func columnWidths(cols []processor.Column, total int) []int {
	total -= len(cols) - 1 // cell separators
	sum := 0
	for _, c := range cols {
		sum += c.Weight
	}
	widths := make([]int, len(cols))
	used := 0
	for i, c := range cols {
		w := total * c.Weight / sum
		if w < 1 {
			w = 1
		}
		widths[i] = w
		used += w
	}
	// hand leftover cells to the widest column
	widest := 0
	for i, w := range widths {
		if w > widths[widest] {
			widest = i
		}
	}
	if rest := total - used; rest > 0 {
		widths[widest] += rest
	}
	return widths
}

func pad(s string, width int) string {
	if width < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) > width {
		if width <= 1 {
			return string(r[:width])
		}
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}

// messages
type refreshMsg struct{}
