// Package glossary aggregates the annotations of one or more chapters into
// a phrase index, the raw material for vocabulary lists and quizzes.
package glossary

import (
	"slices"

	"github.com/revelaction/glosa/chapter"
)

// Entry is one glossed phrase with everything learned about it.
type Entry struct {
	Phrase string

	// Meanings in first-seen order, deduplicated across occurrences.
	Meanings []string

	// Count is the number of annotations carrying this phrase.
	Count int

	// Labels of the entries the phrase appeared in, in document order.
	// Unlabeled entries contribute nothing here.
	Labels []string
}

// Glossary is the ordered phrase index, first appearance first.
type Glossary []Entry

type Handler struct {
	order  []string
	phrase map[string]*Entry
}

func NewHandler() *Handler {
	return &Handler{
		phrase: make(map[string]*Entry),
	}
}

// Aggregate folds the annotations of ch into the glossary.
func (h *Handler) Aggregate(ch *chapter.Chapter) {
	for e, a := range ch.Annotations() {
		g, ok := h.phrase[a.Phrase]
		if !ok {
			g = &Entry{Phrase: a.Phrase}
			h.phrase[a.Phrase] = g
			h.order = append(h.order, a.Phrase)
		}

		g.Count++
		for _, m := range a.Meanings() {
			if !slices.Contains(g.Meanings, m) {
				g.Meanings = append(g.Meanings, m)
			}
		}
		if e.Labeled() && !slices.Contains(g.Labels, e.Label) {
			g.Labels = append(g.Labels, e.Label)
		}
	}
}

// Get returns the aggregated glossary.
func (h *Handler) Get() Glossary {
	out := make(Glossary, 0, len(h.order))
	for _, p := range h.order {
		out = append(out, *h.phrase[p])
	}
	return out
}
