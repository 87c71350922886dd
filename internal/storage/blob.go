// Package storage persists the flat record blobs used by the history and
// alias stores. A Blob keys byte payloads by name; backends are a plain file
// per name or a single sqlite database.
package storage

// Blob is the persistence contract consumed by the stores. Read returns
// (nil, nil) for a name that has never been written. Write is a whole-value
// overwrite; the last writer wins.
type Blob interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	Exists(name string) bool
}
