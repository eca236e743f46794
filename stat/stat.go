package stat

import (
	"github.com/revelaction/glosa/chapter"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumEntries          int
	NumLabeled          int
	NumAnnotations      int
	NumTranslationLines int

	AnnotationsPerEntryMean int
	AnnotationsPerEntryDis  map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{AnnotationsPerEntryDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(ch *chapter.Chapter) {
	for _, e := range ch.Entries() {
		h.stats.NumEntries++
		if e.Labeled() {
			h.stats.NumLabeled++
		}

		n := len(e.Original.Annotations)
		h.stats.NumAnnotations += n
		h.stats.AnnotationsPerEntryDis[n]++

		h.stats.NumTranslationLines += len(e.Translation)
	}

	if h.stats.NumEntries > 0 {
		h.stats.AnnotationsPerEntryMean = h.stats.NumAnnotations / h.stats.NumEntries
	}
}
