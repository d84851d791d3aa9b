package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/ranking"
	"github.com/vovakirdan/tui-garden/internal/storage"
)

// rankingOptions selects the ranking backend. Empty fields fall back to the
// loaded configuration.
type rankingOptions struct {
	backend string
	file    string
	dbPath  string
}

// openRanking opens the store the ranking lives in. The returned close
// function is never nil.
func openRanking(cfg config.RankingConfig, opts rankingOptions) (ranking.Store, func(), error) {
	backend := opts.backend
	if backend == "" {
		backend = cfg.Backend
	}

	switch backend {
	case "json":
		file := opts.file
		if file == "" {
			file = cfg.File
		}
		path, err := jsonRankingPath(file)
		if err != nil {
			return nil, func() {}, err
		}
		return ranking.NewFileStore(path), func() {}, nil

	case "", "sqlite":
		store, err := storage.Open(opts.dbPath)
		if err != nil {
			return nil, func() {}, err
		}
		return store, func() { store.Close() }, nil

	default:
		return nil, func() {}, fmt.Errorf("unknown ranking backend %q (expected sqlite or json)", backend)
	}
}

// jsonRankingPath expands ~ and defaults to the XDG data directory.
func jsonRankingPath(file string) (string, error) {
	if file == "" {
		path, err := xdg.DataFile("garden/ranking.json")
		if err != nil {
			return "", fmt.Errorf("could not get ranking path: %w", err)
		}
		return path, nil
	}
	if strings.HasPrefix(file, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand home directory: %w", err)
		}
		file = filepath.Join(home, file[1:])
	}
	return file, nil
}
