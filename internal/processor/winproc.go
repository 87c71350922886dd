package processor

import (
	"fmt"
	"strings"

	"github.com/jeffrimko/quickwin/internal/command"
	"github.com/jeffrimko/quickwin/internal/history"
	"github.com/jeffrimko/quickwin/internal/util"
	"github.com/jeffrimko/quickwin/internal/winlist"
)

var winColumns = []Column{
	{Name: "Number", Weight: 6},
	{Name: "Title", Weight: 74},
	{Name: "Executable", Weight: 10},
	{Name: "Alias", Weight: 10},
}

// WinProcessor is the root processor: it narrows the live window list with
// filter commands and activates the selected window on commit.
type WinProcessor struct {
	wins   *winlist.Manager
	src    winlist.Source
	hist   *history.Manager
	act    Activator
	log    *util.Logger
	status []string
}

func NewWinProcessor(wins *winlist.Manager, src winlist.Source, hist *history.Manager, act Activator, log *util.Logger) *WinProcessor {
	return &WinProcessor{wins: wins, src: src, hist: hist, act: act, log: log}
}

func (p *WinProcessor) Help() string {
	return strings.TrimSpace(`
Window commands (separated by ;):
  ;t TEXT   filter by title
  ;e TEXT   filter by executable
  ;g TEXT   filter by alias
  ;s NAME   set alias on the selected window (empty clears)
  ;o KEY    order by title, exe or alias
  ;l        limit to the selected window's executable
  ;d        delete all aliases
`)
}

// Update handles one event against the window list.
func (p *WinProcessor) Update(in Input) (Output, bool) {
	if in.WasHidden || in.Activated {
		p.hist.Reset()
	}
	if out, ok := recallNav(p.hist, in); ok {
		return out, true
	}
	if in.Commit && in.Text != "" {
		if err := p.hist.Add(in.Text, ""); err != nil {
			p.log.Errorf("history save: %v", err)
			p.status = append(p.status, fmt.Sprintf("History save failed: %v", err))
		}
	}

	if in.WasHidden {
		p.wins.ClearSelection()
	} else {
		p.wins.SelectIndex(in.SelRow)
	}
	p.wins.ShowAll()

	cmds := command.Parse(in.Text)
	if in.Text == "" && len(cmds) == 0 {
		if err := p.wins.Reset(p.src); err != nil {
			p.log.Errorf("window list: %v", err)
			p.status = append(p.status, fmt.Sprintf("Window list failed: %v", err))
		}
	}

	// Set, Delete and Unknown act only on commit; the last such command on
	// the line wins.
	var deferred *command.Command
	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Kind {
		case command.Title:
			p.wins.Filter(cmd.Text, func(w winlist.Window) string { return w.Title }, false)
		case command.Exe:
			p.wins.Filter(cmd.Text, func(w winlist.Window) string { return w.Exe }, false)
		case command.Get:
			p.wins.Filter(cmd.Text, nil, false)
		case command.Limit:
			if sel, ok := p.wins.Selected(); ok {
				p.wins.Filter(sel.Window.Exe, func(w winlist.Window) string { return w.Exe }, true)
			}
		case command.Order:
			if !p.wins.SetOrderBy(cmd.Text) && cmd.Text != "" {
				p.status = append(p.status, fmt.Sprintf("Order unchanged, unknown key %q", cmd.Text))
			}
		case command.Set, command.Delete, command.Unknown:
			deferred = cmd
		}
	}

	if in.Commit {
		return p.commit(deferred)
	}
	return p.render(), true
}

// commit finishes the cycle: activate the selection, or run the deferred
// alias command and keep the shell open with a cleared input.
func (p *WinProcessor) commit(cmd *command.Command) (Output, bool) {
	if cmd == nil {
		sel, ok := p.wins.Selected()
		if !ok {
			return Output{}, false
		}
		if err := p.act.Activate(sel.Window); err != nil {
			p.log.Errorf("activate %q: %v", sel.Window.Title, err)
			p.status = append(p.status, fmt.Sprintf("Activate failed: %v", err))
			return p.render(), true
		}
		return Output{Hide: true}, true
	}

	switch cmd.Kind {
	case command.Set:
		if sel, ok := p.wins.Selected(); ok {
			if err := p.wins.SetAlias(sel, cmd.Text); err != nil {
				p.log.Errorf("set alias: %v", err)
				p.status = append(p.status, fmt.Sprintf("Alias save failed: %v", err))
			} else if cmd.Text == "" {
				p.status = append(p.status, "Alias cleared")
			} else {
				p.status = append(p.status, fmt.Sprintf("Alias set: %s", cmd.Text))
			}
		}
	case command.Delete:
		if err := p.wins.DeleteAllAliases(); err != nil {
			p.log.Errorf("delete aliases: %v", err)
			p.status = append(p.status, fmt.Sprintf("Alias save failed: %v", err))
		} else {
			p.status = append(p.status, "All aliases deleted")
		}
	default:
		msg := fmt.Sprintf("Unknown command %q", cmd.Word)
		if s := command.Suggest(cmd.Word); s != "" {
			msg += fmt.Sprintf(", did you mean %q?", ";"+s)
		}
		p.status = append(p.status, msg)
	}

	out := p.render()
	out.SetInput("")
	return out, true
}

func (p *WinProcessor) render() Output {
	vis := p.wins.Visible()
	p.status = append(p.status, fmt.Sprintf("Windows found: %d", len(vis)))
	rows := make([][]string, 0, len(vis))
	for _, e := range vis {
		rows = append(rows, []string{
			padNum(e.Num, p.wins.Len()),
			e.Window.Title,
			e.Window.Exe,
			p.wins.Alias(e),
		})
	}
	out := Output{Status: p.flushStatus()}
	out.Table = &Table{Columns: winColumns, Rows: rows, Cursor: p.wins.SelectedIndex()}
	return out
}

func (p *WinProcessor) flushStatus() string {
	msg := strings.Join(p.status, "; ")
	p.status = p.status[:0]
	return msg
}

// padNum zero-pads an ordinal to the width of the largest one.
func padNum(num, total int) string {
	width := len(fmt.Sprint(total))
	return fmt.Sprintf("%0*d", width, num)
}
