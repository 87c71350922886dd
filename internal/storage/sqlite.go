package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteBlob keeps every named blob as a row in one sqlite database, for
// users who prefer a single data file over scattered JSON files.
type SQLiteBlob struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the blob database at path and applies
// schema migrations.
func OpenSQLite(path string) (*SQLiteBlob, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open blob db: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate blob db: %w", err)
	}
	return &SQLiteBlob{db: db}, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (b *SQLiteBlob) Close() error {
	return b.db.Close()
}

func (b *SQLiteBlob) Read(name string) ([]byte, error) {
	var data []byte
	err := b.db.QueryRow(`SELECT data FROM blobs WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", name, err)
	}
	return data, nil
}

func (b *SQLiteBlob) Write(name string, data []byte) error {
	_, err := b.db.Exec(
		`INSERT INTO blobs (name, data) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("write blob %s: %w", name, err)
	}
	return nil
}

func (b *SQLiteBlob) Exists(name string) bool {
	var one int
	err := b.db.QueryRow(`SELECT 1 FROM blobs WHERE name = ?`, name).Scan(&one)
	return err == nil
}
