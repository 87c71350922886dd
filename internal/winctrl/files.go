package winctrl

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jeffrimko/quickwin/internal/processor"
)

// DirSource lists the regular files of a directory as launch items.
type DirSource struct {
	Dir string
}

// List returns the directory's files sorted by name, split into stem and
// extension. A missing directory yields no items.
func (d DirSource) List() ([]processor.FileEntry, error) {
	dirents, err := os.ReadDir(d.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []processor.FileEntry
	for _, de := range dirents {
		if de.IsDir() || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		ext := filepath.Ext(de.Name())
		entries = append(entries, processor.FileEntry{
			Stem: strings.TrimSuffix(de.Name(), ext),
			Ext:  ext,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Stem < entries[j].Stem })
	return entries, nil
}
