package processor

import (
	"errors"
	"strings"
	"testing"

	"github.com/jeffrimko/quickwin/internal/alias"
	"github.com/jeffrimko/quickwin/internal/history"
	"github.com/jeffrimko/quickwin/internal/winlist"
)

type memBlob struct {
	data map[string][]byte
}

func newMemBlob() *memBlob { return &memBlob{data: map[string][]byte{}} }

func (m *memBlob) Read(name string) ([]byte, error) { return m.data[name], nil }
func (m *memBlob) Write(name string, data []byte) error {
	m.data[name] = data
	return nil
}
func (m *memBlob) Exists(name string) bool {
	_, ok := m.data[name]
	return ok
}

// failingBlob rejects every write.
type failingBlob struct {
	memBlob
}

func (f *failingBlob) Write(name string, data []byte) error {
	return errors.New("disk full")
}

type fakeSource struct {
	wins []winlist.Window
}

func (f *fakeSource) List() ([]winlist.Window, error) { return f.wins, nil }

type fakeActivator struct {
	activated []winlist.Window
	opened    []string
}

func (f *fakeActivator) Activate(w winlist.Window) error {
	f.activated = append(f.activated, w)
	return nil
}

func (f *fakeActivator) Open(path string) error {
	f.opened = append(f.opened, path)
	return nil
}

func newWinProc(t *testing.T, wins ...winlist.Window) (*WinProcessor, *fakeActivator) {
	t.Helper()
	blob := newMemBlob()
	mgr := winlist.NewManager(alias.NewStore(blob, "aliases"), nil)
	hist := history.NewManager(history.NewStore(blob, "winhist", 100))
	act := &fakeActivator{}
	p := NewWinProcessor(mgr, &fakeSource{wins: wins}, hist, act, nil)
	return p, act
}

func update(t *testing.T, p Processor, in Input) Output {
	t.Helper()
	out, ok := p.Update(in)
	if !ok {
		t.Fatalf("Update(%+v) produced no output", in)
	}
	return out
}

func rowTitles(tbl *Table) []string {
	var out []string
	for _, r := range tbl.Rows {
		out = append(out, r[1])
	}
	return out
}

func TestEmptyInputListsEverything(t *testing.T) {
	p, _ := newWinProc(t,
		winlist.Window{Title: "Notes", Exe: "notepad.exe"},
		winlist.Window{Title: "Browser", Exe: "chrome.exe"},
	)
	out := update(t, p, Input{WasHidden: true})
	if len(out.Table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(out.Table.Rows))
	}
	if got := out.Table.Rows[0][0]; got != "1" {
		t.Fatalf("first ordinal = %q, want %q", got, "1")
	}
	if !strings.Contains(out.Status, "Windows found: 2") {
		t.Fatalf("status = %q, want window count", out.Status)
	}
}

func TestFilterByExeAndOrderByTitle(t *testing.T) {
	p, _ := newWinProc(t,
		winlist.Window{Title: "Zeta notes", Exe: "notepad.exe"},
		winlist.Window{Title: "Browser", Exe: "chrome.exe"},
		winlist.Window{Title: "Alpha notes", Exe: "notepad.exe"},
	)
	update(t, p, Input{WasHidden: true})
	out := update(t, p, Input{Text: ";e notepad.exe;o title"})
	want := []string{"Alpha notes", "Zeta notes"}
	got := rowTitles(out.Table)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("titles = %v, want %v", got, want)
	}
}

func TestBareTextFiltersTitle(t *testing.T) {
	p, _ := newWinProc(t,
		winlist.Window{Title: "Finance Report", Exe: "excel.exe"},
		winlist.Window{Title: "Browser", Exe: "chrome.exe"},
	)
	update(t, p, Input{WasHidden: true})
	out := update(t, p, Input{Text: "fnc"})
	if got := rowTitles(out.Table); len(got) != 1 || got[0] != "Finance Report" {
		t.Fatalf("titles = %v, want [Finance Report]", got)
	}
}

func TestEmptyInputResetsFilters(t *testing.T) {
	p, _ := newWinProc(t,
		winlist.Window{Title: "Notes", Exe: "notepad.exe"},
		winlist.Window{Title: "Browser", Exe: "chrome.exe"},
	)
	update(t, p, Input{WasHidden: true})
	update(t, p, Input{Text: "notes"})
	out := update(t, p, Input{Text: ""})
	if len(out.Table.Rows) != 2 {
		t.Fatalf("rows after clear = %d, want 2", len(out.Table.Rows))
	}
}

func TestCommitActivatesSelection(t *testing.T) {
	p, act := newWinProc(t,
		winlist.Window{Title: "Notes", Exe: "notepad.exe"},
		winlist.Window{Title: "Browser", Exe: "chrome.exe"},
	)
	update(t, p, Input{WasHidden: true})
	out := update(t, p, Input{Commit: true, SelRow: 1, SelRowCells: []string{"2", "Browser", "chrome.exe", ""}})
	if !out.Hide {
		t.Fatalf("commit did not hide")
	}
	if len(act.activated) != 1 || act.activated[0].Title != "Browser" {
		t.Fatalf("activated = %v, want Browser", act.activated)
	}
}

func TestCommitWithoutSelectionIsSilent(t *testing.T) {
	p, act := newWinProc(t)
	update(t, p, Input{WasHidden: true})
	if _, ok := p.Update(Input{Commit: true}); ok {
		t.Fatalf("commit on empty list produced output")
	}
	if len(act.activated) != 0 {
		t.Fatalf("activated = %v, want none", act.activated)
	}
}

func TestSetAliasOnCommit(t *testing.T) {
	p, act := newWinProc(t,
		winlist.Window{Title: "Notes", Exe: "notepad.exe"},
		winlist.Window{Title: "Browser", Exe: "chrome.exe"},
	)
	update(t, p, Input{WasHidden: true})
	out := update(t, p, Input{Text: ";s work", Commit: true, SelRow: 0})
	if len(act.activated) != 0 {
		t.Fatalf("alias commit activated a window")
	}
	if !out.HasReplace || out.ReplaceInput != "" {
		t.Fatalf("alias commit did not clear the input")
	}
	if got := out.Table.Rows[0][3]; got != "work" {
		t.Fatalf("alias cell = %q, want %q", got, "work")
	}
	if !strings.Contains(out.Status, "Alias set: work") {
		t.Fatalf("status = %q, want alias confirmation", out.Status)
	}
}

func TestDeleteAliasesOnCommit(t *testing.T) {
	p, _ := newWinProc(t, winlist.Window{Title: "Notes", Exe: "notepad.exe"})
	update(t, p, Input{WasHidden: true})
	update(t, p, Input{Text: ";s work", Commit: true, SelRow: 0})
	out := update(t, p, Input{Text: ";d", Commit: true, SelRow: 0})
	if got := out.Table.Rows[0][3]; got != "" {
		t.Fatalf("alias cell = %q, want empty", got)
	}
}

func TestAliasFilterHidesUnaliased(t *testing.T) {
	p, _ := newWinProc(t,
		winlist.Window{Title: "Notes", Exe: "notepad.exe"},
		winlist.Window{Title: "Browser", Exe: "chrome.exe"},
	)
	update(t, p, Input{WasHidden: true})
	update(t, p, Input{Text: ";s work", Commit: true, SelRow: 0})
	out := update(t, p, Input{Text: ";g"})
	if got := rowTitles(out.Table); len(got) != 1 || got[0] != "Notes" {
		t.Fatalf("titles = %v, want [Notes]", got)
	}
}

func TestLimitToSelectedExe(t *testing.T) {
	p, _ := newWinProc(t,
		winlist.Window{Title: "Notes", Exe: "notepad.exe"},
		winlist.Window{Title: "Scratch", Exe: "notepad.exe"},
		winlist.Window{Title: "Browser", Exe: "chrome.exe"},
	)
	update(t, p, Input{WasHidden: true})
	out := update(t, p, Input{Text: ";l", SelRow: 0})
	if got := rowTitles(out.Table); len(got) != 2 {
		t.Fatalf("titles = %v, want the two notepad windows", got)
	}
}

func TestUnknownCommandSuggestsOnCommit(t *testing.T) {
	p, _ := newWinProc(t, winlist.Window{Title: "Notes", Exe: "notepad.exe"})
	update(t, p, Input{WasHidden: true})
	out := update(t, p, Input{Text: ";ttile x", Commit: true})
	if !strings.Contains(out.Status, `did you mean ";t"`) {
		t.Fatalf("status = %q, want a suggestion", out.Status)
	}
}

func TestHistoryRecallRoundTrip(t *testing.T) {
	p, _ := newWinProc(t, winlist.Window{Title: "Notes", Exe: "notepad.exe"})
	update(t, p, Input{WasHidden: true})
	update(t, p, Input{Text: "notes", Commit: true, SelRow: 0})
	update(t, p, Input{WasHidden: true})

	out := update(t, p, Input{Nav: NavPrev})
	if !out.HasReplace || out.ReplaceInput != "notes" {
		t.Fatalf("recall = %+v, want input %q", out, "notes")
	}
	// Walking past the oldest entry stays clamped there.
	out = update(t, p, Input{Text: "notes", Nav: NavPrev})
	if !out.HasReplace || out.ReplaceInput != "notes" {
		t.Fatalf("clamped recall = %+v, want input %q", out, "notes")
	}
}

func TestRecallOnEmptyHistoryLeavesInputAlone(t *testing.T) {
	p, _ := newWinProc(t, winlist.Window{Title: "Notes", Exe: "notepad.exe"})
	update(t, p, Input{WasHidden: true})
	out := update(t, p, Input{Nav: NavPrev})
	if out.HasReplace {
		t.Fatalf("recall on empty history replaced input with %q", out.ReplaceInput)
	}
}

func TestPadNum(t *testing.T) {
	tests := []struct {
		num, total int
		want       string
	}{
		{1, 5, "1"},
		{1, 10, "01"},
		{42, 100, "042"},
	}
	for _, tt := range tests {
		if got := padNum(tt.num, tt.total); got != tt.want {
			t.Errorf("padNum(%d, %d) = %q, want %q", tt.num, tt.total, got, tt.want)
		}
	}
}
