package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/revelaction/glosa/storage"
	"github.com/revelaction/glosa/storage/filesystem"
	"github.com/revelaction/glosa/storage/sqlite/zombiezen"
	"github.com/urfave/cli/v2"
)

const defaultStore = "./chapters"

func storeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "store",
		Aliases: []string{"s"},
		Usage:   "chapter store: a directory of JSON chapters or a SQLite file",
		Value:   defaultStore,
	}
}

// newRepository selects the storage backend by path kind: a directory is
// the filesystem store, a file the SQLite store. The returned func releases
// the backend.
func newRepository(path string) (storage.ChapterRepository, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("store not found: %s", path)
	}

	if info.IsDir() {
		s, err := filesystem.NewChapterStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, nil, err
	}
	return zombiezen.NewChapterStore(pool), pool.Close, nil
}

// newWritableRepository is newRepository that also creates a missing store:
// a path with an extension becomes a SQLite file, anything else a directory.
func newWritableRepository(path string) (storage.ChapterRepository, func() error, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && filepath.Ext(path) == "" {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, nil, err
		}
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		s, err := filesystem.NewChapterStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, nil, err
	}
	if err := zombiezen.CreateChapterTables(pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to create chapter tables: %w", err)
	}
	return zombiezen.NewChapterStore(pool), pool.Close, nil
}
