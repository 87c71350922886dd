package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBlob stores each name as a JSON file under a data directory.
type FileBlob struct {
	dir string
}

// NewFileBlob returns a file-backed blob store rooted at dir. The directory
// is created on first write.
func NewFileBlob(dir string) *FileBlob {
	return &FileBlob{dir: dir}
}

func (b *FileBlob) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

func (b *FileBlob) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(b.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", name, err)
	}
	return data, nil
}

func (b *FileBlob) Write(name string, data []byte) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(b.path(name), data, 0o644); err != nil {
		return fmt.Errorf("write blob %s: %w", name, err)
	}
	return nil
}

func (b *FileBlob) Exists(name string) bool {
	_, err := os.Stat(b.path(name))
	return err == nil
}
