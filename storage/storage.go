// Package storage defines the repository interfaces for persisted chapters,
// so downstream consumers read parsed documents without re-parsing markup.
package storage

import (
	"github.com/revelaction/glosa/chapter"
)

// Meta is the stored identity of a chapter. Content is not loaded.
type Meta struct {
	Id         int
	Name       string
	NumEntries int
}

// ChapterReader defines read operations for chapter storage.
type ChapterReader interface {
	// List returns the metadata of all stored chapters, ordered by name.
	List() ([]Meta, error)

	// Read returns a chapter by ID.
	Read(id int) (*chapter.Chapter, error)

	// ReadByName returns a chapter by its stored name.
	ReadByName(name string) (*chapter.Chapter, error)

	// Labels returns all unique entry labels across all chapters, sorted
	// alphabetically. If pattern is not empty, only labels containing the
	// pattern are returned.
	Labels(pattern string) ([]string, error)
}

// ChapterWriter defines write operations for chapter storage.
type ChapterWriter interface {
	// Write persists a chapter and its entries/annotations under name.
	Write(name string, ch *chapter.Chapter) error
}

// ChapterRepository combines read and write operations.
type ChapterRepository interface {
	ChapterReader
	ChapterWriter
}
