package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/revelaction/glosa/chapter"
	"github.com/revelaction/glosa/storage"
)

// ChapterStore persists chapters as one JSON file per chapter inside a
// directory. IDs are the position in the sorted file listing.
type ChapterStore struct {
	dir string

	// In-memory cache
	names    []string
	chapters []*chapter.Chapter
}

var _ storage.ChapterRepository = (*ChapterStore)(nil)

// NewChapterStore creates a filesystem chapter store on dir.
func NewChapterStore(dir string) (*ChapterStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}
	return &ChapterStore{dir: dir}, nil
}

// load reads all chapter files into memory once.
func (s *ChapterStore) load() error {
	if s.chapters != nil {
		return nil
	}

	files, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}
		s.names = append(s.names, strings.TrimSuffix(f.Name(), ".json"))
	}
	slices.Sort(s.names)

	s.chapters = make([]*chapter.Chapter, 0, len(s.names))
	for _, name := range s.names {
		content, err := os.ReadFile(s.path(name))
		if err != nil {
			return err
		}

		ch := &chapter.Chapter{}
		if err := json.Unmarshal(content, ch); err != nil {
			return fmt.Errorf("chapter %s: %w", name, err)
		}
		s.chapters = append(s.chapters, ch)
	}
	return nil
}

func (s *ChapterStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *ChapterStore) List() ([]storage.Meta, error) {
	if err := s.load(); err != nil {
		return nil, err
	}

	metas := make([]storage.Meta, 0, len(s.names))
	for i, name := range s.names {
		metas = append(metas, storage.Meta{
			Id:         i,
			Name:       name,
			NumEntries: s.chapters[i].Len(),
		})
	}
	return metas, nil
}

func (s *ChapterStore) Read(id int) (*chapter.Chapter, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	if id < 0 || id >= len(s.chapters) {
		return nil, fmt.Errorf("chapter id out of range: %d", id)
	}
	return s.chapters[id], nil
}

func (s *ChapterStore) ReadByName(name string) (*chapter.Chapter, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	for i, n := range s.names {
		if n == name {
			return s.chapters[i], nil
		}
	}
	return nil, fmt.Errorf("chapter not found: %s", name)
}

func (s *ChapterStore) Labels(pattern string) ([]string, error) {
	if err := s.load(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var labels []string
	for _, ch := range s.chapters {
		for _, l := range ch.Labels() {
			if pattern != "" && !strings.Contains(l, pattern) {
				continue
			}
			if !seen[l] {
				seen[l] = true
				labels = append(labels, l)
			}
		}
	}
	slices.Sort(labels)
	return labels, nil
}

func (s *ChapterStore) Write(name string, ch *chapter.Chapter) error {
	data, err := json.MarshalIndent(ch, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return err
	}

	// drop the cache, the listing changed
	s.names = nil
	s.chapters = nil
	return nil
}
