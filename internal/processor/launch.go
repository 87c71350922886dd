package processor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jeffrimko/quickwin/internal/history"
	"github.com/jeffrimko/quickwin/internal/strcompare"
	"github.com/jeffrimko/quickwin/internal/util"
)

// LaunchPrefix switches the input line to the launchable-file universe.
const LaunchPrefix = "."

// FileEntry is one launchable item, split into stem and extension.
type FileEntry struct {
	Stem string
	Ext  string
}

// FileSource enumerates the launchable items.
type FileSource interface {
	List() ([]FileEntry, error)
}

// Launch lists the files of a configured directory and opens the selected
// one on commit.
type Launch struct {
	dir   string
	files FileSource
	hist  *history.Manager
	act   Activator
	log   *util.Logger
}

func NewLaunch(dir string, files FileSource, hist *history.Manager, act Activator, log *util.Logger) *Launch {
	return &Launch{dir: dir, files: files, hist: hist, act: act, log: log}
}

func (l *Launch) Use(in Input) bool {
	return strings.HasPrefix(in.Text, LaunchPrefix)
}

func (l *Launch) Help() string {
	return "Launch prefix: " + LaunchPrefix
}

func (l *Launch) Update(in Input) (Output, bool) {
	if in.WasHidden || in.Activated {
		l.hist.Reset()
	}
	if out, ok := recallNav(l.hist, in); ok {
		return out, true
	}
	var saveErr error
	if in.Commit && in.Text != "" {
		if saveErr = l.hist.Add(in.Text, cell(in.SelRowCells, 0)); saveErr != nil {
			l.log.Errorf("history save: %v", saveErr)
		}
	}
	if in.Commit && len(in.SelRowCells) > 1 {
		path := filepath.Join(l.dir, cell(in.SelRowCells, 0)+cell(in.SelRowCells, 1))
		if err := l.act.Open(path); err != nil {
			l.log.Errorf("open %q: %v", path, err)
			return Output{Status: fmt.Sprintf("Open failed: %v", err)}, true
		}
		return Output{Hide: true}, true
	}
	if in.Nav != NavNone {
		return Output{}, false
	}

	entries, err := l.files.List()
	if err != nil {
		l.log.Errorf("list launch dir: %v", err)
		return Output{Status: fmt.Sprintf("Launch list failed: %v", err)}, true
	}
	text := strings.TrimSpace(strings.TrimPrefix(in.Text, LaunchPrefix))
	var rows [][]string
	var stems []string
	for _, e := range entries {
		if !strcompare.Choice(text, e.Stem+e.Ext) {
			continue
		}
		rows = append(rows, []string{e.Stem, e.Ext})
		stems = append(stems, e.Stem)
	}

	cursor := in.SelRow
	if i := l.hist.MatchToRow(strings.TrimSpace(in.Text), stems); i >= 0 {
		cursor = i
	}

	status := fmt.Sprintf("Launch items found: %d", len(rows))
	if saveErr != nil {
		status = fmt.Sprintf("History save failed: %v; %s", saveErr, status)
	}
	out := Output{Status: status}
	out.Table = &Table{
		Columns: []Column{{Name: "Name", Weight: 3}, {Name: "Ext", Weight: 1}},
		Rows:    rows,
		Cursor:  cursor,
	}
	return out, true
}
