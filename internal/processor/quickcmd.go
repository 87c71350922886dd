package processor

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jeffrimko/quickwin/internal/history"
	"github.com/jeffrimko/quickwin/internal/strcompare"
)

// QuickCmdPrefix switches the input line to the named-command universe.
const QuickCmdPrefix = "`"

// NamedCmd is one configured name/command pair.
type NamedCmd struct {
	Name string
	Cmd  string
}

// LoadNamedCmds reads a YAML map of name to command text. A missing file
// yields no commands.
func LoadNamedCmds(path string) ([]NamedCmd, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read quickcmds: %w", err)
	}
	var raw yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse quickcmds: %w", err)
	}
	if len(raw.Content) == 0 {
		return nil, nil
	}
	doc := raw.Content[0]
	var cmds []NamedCmd
	for i := 0; i+1 < len(doc.Content); i += 2 {
		cmds = append(cmds, NamedCmd{Name: doc.Content[i].Value, Cmd: doc.Content[i+1].Value})
	}
	return cmds, nil
}

// QuickCmd lists the configured named commands and pastes the selected
// command text back into the input line.
type QuickCmd struct {
	cmds []NamedCmd
	hist *history.Manager
}

func NewQuickCmd(cmds []NamedCmd, hist *history.Manager) *QuickCmd {
	return &QuickCmd{cmds: cmds, hist: hist}
}

func (q *QuickCmd) Use(in Input) bool {
	return strings.HasPrefix(in.Text, QuickCmdPrefix)
}

func (q *QuickCmd) Help() string {
	return "QuickCmd prefix: " + QuickCmdPrefix
}

func (q *QuickCmd) Update(in Input) (Output, bool) {
	if in.WasHidden || in.Activated {
		q.hist.Reset()
	}
	if out, ok := recallNav(q.hist, in); ok {
		return out, true
	}
	var saveErr error
	if in.Commit && in.Text != "" {
		saveErr = q.hist.Add(in.Text, cell(in.SelRowCells, 0))
	}
	if (in.Commit || in.Nav == NavInto) && len(in.SelRowCells) > 1 {
		var out Output
		out.SetInput(cell(in.SelRowCells, 1))
		if saveErr != nil {
			out.Status = fmt.Sprintf("History save failed: %v", saveErr)
		}
		return out, true
	}

	text := strings.TrimPrefix(in.Text, QuickCmdPrefix)
	var rows [][]string
	var names []string
	for _, c := range q.cmds {
		if !strcompare.Choice(text, c.Name) {
			continue
		}
		rows = append(rows, []string{c.Name, c.Cmd})
		names = append(names, c.Name)
	}

	cursor := in.SelRow
	if in.Activated {
		cursor = 0
		if i := q.hist.MatchToRow(QuickCmdPrefix, names); i >= 0 {
			cursor = i
		}
	}

	status := fmt.Sprintf("QuickCmds found: %d", len(rows))
	if saveErr != nil {
		status = fmt.Sprintf("History save failed: %v; %s", saveErr, status)
	}
	out := Output{Status: status}
	out.Table = &Table{
		Columns: []Column{{Name: "Name", Weight: 1}, {Name: "Command", Weight: 3}},
		Rows:    rows,
		Cursor:  cursor,
	}
	return out, true
}
