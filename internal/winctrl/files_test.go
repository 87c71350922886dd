package winctrl

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirSourceListsSortedFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zed.desktop", "alpha.desktop", ".hidden"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	entries, err := DirSource{Dir: dir}.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %v, want 2", entries)
	}
	if entries[0].Stem != "alpha" || entries[0].Ext != ".desktop" {
		t.Fatalf("first entry = %+v, want alpha.desktop", entries[0])
	}
	if entries[1].Stem != "zed" {
		t.Fatalf("second entry = %+v, want zed", entries[1])
	}
}

func TestDirSourceMissingDir(t *testing.T) {
	entries, err := DirSource{Dir: filepath.Join(t.TempDir(), "nope")}.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if entries != nil {
		t.Fatalf("entries = %v, want nil", entries)
	}
}
