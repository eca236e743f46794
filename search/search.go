// Package search finds entries in stored chapters whose sentence,
// translation or annotations contain a term.
package search

import (
	"strings"

	"github.com/revelaction/glosa/chapter"
	"github.com/revelaction/glosa/storage"
)

// Where names the part of an entry a term matched in.
const (
	WhereSentence    = "sentence"
	WhereTranslation = "translation"
	WherePhrase      = "phrase"
	WhereMeaning     = "meaning"
)

// Match is one entry matching a search term.
type Match struct {
	ChapterId   int
	ChapterName string
	Entry       chapter.Entry

	// Where is the first part of the entry the term was found in.
	Where string
}

// Search orchestrates the strategy selection for finding entries matching
// a term against a chapter repository.
type Search struct {
	repo      storage.ChapterReader
	chapterID *int
}

// New creates a new Search instance over the given repository.
func New(repo storage.ChapterReader) *Search {
	return &Search{repo: repo}
}

// WithChapterID restricts the search to a single chapter ID. If set, the
// single-chapter strategy (Read) is used instead of scanning the store.
func (s *Search) WithChapterID(id int) *Search {
	s.chapterID = &id
	return s
}

// Entries calls onMatch for every matching entry, in store order then
// document order. Matching is case-insensitive substring containment.
func (s *Search) Entries(term string, onMatch func(*Match) error) error {
	term = strings.ToLower(term)

	// Strategy 1: single chapter
	if s.chapterID != nil {
		ch, err := s.repo.Read(*s.chapterID)
		if err != nil {
			return err
		}
		return s.scan(*s.chapterID, "", ch, term, onMatch)
	}

	// Strategy 2: whole store
	metas, err := s.repo.List()
	if err != nil {
		return err
	}
	for _, meta := range metas {
		ch, err := s.repo.Read(meta.Id)
		if err != nil {
			return err
		}
		if err := s.scan(meta.Id, meta.Name, ch, term, onMatch); err != nil {
			return err
		}
	}
	return nil
}

func (s *Search) scan(id int, name string, ch *chapter.Chapter, term string, onMatch func(*Match) error) error {
	for _, e := range ch.Entries() {
		where, ok := matchEntry(e, term)
		if !ok {
			continue
		}
		m := &Match{
			ChapterId:   id,
			ChapterName: name,
			Entry:       e,
			Where:       where,
		}
		if err := onMatch(m); err != nil {
			return err
		}
	}
	return nil
}

// matchEntry reports where the term occurs in the entry, checking the
// sentence first, then translation lines, then annotation phrases and
// meanings.
func matchEntry(e chapter.Entry, term string) (string, bool) {
	if strings.Contains(strings.ToLower(e.Original.Text), term) {
		return WhereSentence, true
	}
	for _, line := range e.Translation {
		if strings.Contains(strings.ToLower(line), term) {
			return WhereTranslation, true
		}
	}
	for _, a := range e.Original.Annotations {
		if strings.Contains(strings.ToLower(a.Phrase), term) {
			return WherePhrase, true
		}
		if strings.Contains(strings.ToLower(a.Meaning), term) {
			return WhereMeaning, true
		}
	}
	return "", false
}
