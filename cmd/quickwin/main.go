package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeffrimko/quickwin/internal/alias"
	"github.com/jeffrimko/quickwin/internal/config"
	"github.com/jeffrimko/quickwin/internal/history"
	"github.com/jeffrimko/quickwin/internal/processor"
	"github.com/jeffrimko/quickwin/internal/storage"
	"github.com/jeffrimko/quickwin/internal/tui"
	"github.com/jeffrimko/quickwin/internal/util"
	"github.com/jeffrimko/quickwin/internal/winctrl"
	"github.com/jeffrimko/quickwin/internal/winlist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
		log.Fatalf("mkdir data dir: %v", err)
	}
	blob, closeBlob, err := openStorage(cfg.Storage)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer closeBlob()

	excluder, err := winlist.NewExcluder(cfg.Windows.ExcludePath)
	if err != nil {
		log.Fatalf("exclusions: %v", err)
	}

	quickCmds, err := processor.LoadNamedCmds(cfg.QuickCmd.Path)
	if err != nil {
		log.Fatalf("quickcmds: %v", err)
	}

	client := winctrl.NewClient()
	wins := winlist.NewManager(alias.NewStore(blob, "aliases"), excluder)

	root := processor.NewWinProcessor(wins, client,
		history.NewManager(history.NewStore(blob, "winhist", cfg.History.Max)),
		client, logger)
	quick := processor.NewQuickCmd(quickCmds,
		history.NewManager(history.NewStore(blob, "cmdhist", cfg.History.Max)))
	launch := processor.NewLaunch(cfg.Launch.Dir, winctrl.DirSource{Dir: cfg.Launch.Dir},
		history.NewManager(history.NewStore(blob, "launchhist", cfg.History.Max)),
		client, logger)
	router := processor.NewRouter(root, quick, launch)

	app := tui.New(router)
	app.Reload = excluder.Reload

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func openStorage(cfg config.StorageConfig) (storage.Blob, func(), error) {
	if cfg.Backend == "file" {
		return storage.NewFileBlob(cfg.Dir), func() {}, nil
	}
	db, err := storage.OpenSQLite(filepath.Join(cfg.Dir, "quickwin.db"))
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = db.Close() }, nil
}

func newLogger(cfg config.LogConfig) (*util.Logger, func(), error) {
	level, err := util.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = os.Stderr
	closeLog := func() {}
	if cfg.Path != "" {
		f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { _ = f.Close() }
	}
	return util.NewLogger(level, w), closeLog, nil
}
