package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/glosa/chapter"
	"github.com/revelaction/glosa/parse"
)

// Ext is the extension of chapter markup files.
const Ext = ".chapter"

// ReadChapter reads a markup file from the given path and parses it.
func ReadChapter(path string) (*chapter.Chapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ch, err := parse.Chapter(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ch, nil
}

// Name derives the chapter name from its file path: the base name without
// the extension.
func Name(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// List returns the paths of the chapter files (by Ext) directly inside dir.
func List(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != Ext {
			continue
		}
		out = append(out, filepath.Join(dir, f.Name()))
	}
	return out, nil
}
