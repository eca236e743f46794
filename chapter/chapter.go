// Package chapter holds the parsed document model for one chapter of
// bilingual study material: an ordered sequence of entries, each pairing an
// annotated original-language sentence with its translation.
//
// A Chapter is built once from a complete parse and is immutable afterwards,
// so it can be shared freely between downstream consumers (renderers,
// glossary builders, quiz generators) without locking.
package chapter

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"
)

// Annotation is one inline word-or-phrase-to-meaning association embedded
// in an original sentence.
type Annotation struct {
	// Phrase is the literal substring retained in the rendered sentence.
	Phrase string `json:"phrase"`

	// Meaning is the gloss as written in the markup. Multiple meanings may
	// be separated by ";", see Meanings.
	Meaning string `json:"meaning"`

	// Offset is the byte offset into the rendered sentence text where
	// Phrase begins. Text[Offset:Offset+Length] == Phrase always holds.
	Offset int `json:"offset"`

	// Length is len(Phrase) in bytes.
	Length int `json:"length"`

	// Index is the 0-based position of this annotation among the
	// annotations of its sentence, in order of appearance.
	Index int `json:"index"`
}

// Meanings splits the gloss on ";" into individual trimmed meanings.
func (a Annotation) Meanings() []string {
	parts := strings.Split(a.Meaning, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Sentence is the rendered original-language sentence of an entry: the plain
// text with all annotation markup removed, plus the positioned annotations.
type Sentence struct {
	Text        string       `json:"text"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Entry is one label/sentence/translation unit of a chapter.
type Entry struct {
	// Label is the human-chosen identifier, empty for unlabeled entries.
	Label string `json:"label,omitempty"`

	// Seq is the 0-based position of the entry in the chapter. It is the
	// stable synthetic index of unlabeled entries and never participates
	// in label lookup.
	Seq int `json:"seq"`

	// Line is the source line the entry started on.
	Line int `json:"line"`

	Original Sentence `json:"original"`

	// Translation holds the translation block, one element per line.
	Translation []string `json:"translation"`
}

// Labeled reports whether the entry carries a real label.
func (e Entry) Labeled() bool {
	return e.Label != ""
}

// TranslationText joins the translation lines.
func (e Entry) TranslationText() string {
	return strings.Join(e.Translation, "\n")
}

// Chapter is one parsed document: the ordered entries plus the label index.
type Chapter struct {
	entries []Entry
	byLabel map[string]int
}

// New builds a Chapter from entries in their textual order. It assigns Seq
// and builds the label index, failing with *DuplicateLabelError if two
// entries share a non-empty label. A failed New produces no Chapter: a
// malformed document never becomes partially queryable.
func New(entries []Entry) (*Chapter, error) {
	c := &Chapter{
		entries: make([]Entry, len(entries)),
		byLabel: make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	for i := range c.entries {
		c.entries[i].Seq = i
		label := c.entries[i].Label
		if label == "" {
			continue
		}
		if _, ok := c.byLabel[label]; ok {
			return nil, &DuplicateLabelError{Label: label}
		}
		c.byLabel[label] = i
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Chapter) Len() int {
	return len(c.entries)
}

// Entries returns the entries in textual order. The returned slice is a
// copy, the Chapter itself stays immutable.
func (c *Chapter) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// FindByLabel returns the entry carrying the given label. It fails with
// *NotFoundError when no entry does; unlabeled entries never match.
func (c *Chapter) FindByLabel(label string) (Entry, error) {
	if label != "" {
		if i, ok := c.byLabel[label]; ok {
			return c.entries[i], nil
		}
	}
	return Entry{}, &NotFoundError{Label: label}
}

// Labels returns all labels in entry order.
func (c *Chapter) Labels() []string {
	var out []string
	for _, e := range c.entries {
		if e.Labeled() {
			out = append(out, e.Label)
		}
	}
	return out
}

// Annotations yields every (entry, annotation) pair in document order.
// Intended for glossary and quiz consumers.
func (c *Chapter) Annotations() iter.Seq2[Entry, Annotation] {
	return func(yield func(Entry, Annotation) bool) {
		for _, e := range c.entries {
			for _, a := range e.Original.Annotations {
				if !yield(e, a) {
					return
				}
			}
		}
	}
}

// MarshalJSON encodes the chapter as its entry list.
func (c *Chapter) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.entries)
}

// UnmarshalJSON decodes an entry list and rebuilds the chapter through New,
// re-validating label uniqueness.
func (c *Chapter) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	nc, err := New(entries)
	if err != nil {
		return fmt.Errorf("rebuild chapter: %w", err)
	}
	*c = *nc
	return nil
}
