package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/glosa/chapter"
)

var (
	Yellow = "\033[0;33m"
	Teal   = "\033[1;36m"
	Gray   = "\033[0;37m"
	Off    = "\033[0m"

	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

// Renderer writes a chapter to some output form.
type Renderer interface {
	Chapter(ch *chapter.Chapter) error
}

// TextRenderer writes entries as terminal text. Annotated phrases are
// highlighted by slicing the rendered sentence at the recorded annotation
// offsets.
type TextRenderer struct {
	W io.Writer

	HasColor bool

	// HasLabel prints the label (or the synthetic sequence index) before
	// each entry.
	HasLabel bool

	// HasGloss prints a phrase = meaning footnote under each entry.
	HasGloss bool
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w, HasColor: true, HasLabel: true}
}

func (r *TextRenderer) Chapter(ch *chapter.Chapter) error {
	for _, e := range ch.Entries() {
		if err := r.Entry(e); err != nil {
			return err
		}
	}
	return nil
}

// Entry writes one entry: label line, highlighted sentence, translation.
func (r *TextRenderer) Entry(e chapter.Entry) error {
	if r.HasLabel {
		label := e.Label
		if !e.Labeled() {
			label = fmt.Sprintf("#%d", e.Seq)
		}
		if _, err := fmt.Fprintf(r.W, "%s\n", r.color(Yellow256, "@ "+label)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(r.W, "%s\n", r.sentence(e.Original)); err != nil {
		return err
	}

	for _, line := range e.Translation {
		if _, err := fmt.Fprintf(r.W, "%s\n", r.color(Grey256, line)); err != nil {
			return err
		}
	}

	if r.HasGloss {
		for _, a := range e.Original.Annotations {
			if _, err := fmt.Fprintf(r.W, "    %s = %s\n", r.color(Teal, a.Phrase), strings.Join(a.Meanings(), "; ")); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(r.W)
	return err
}

// sentence returns the rendered sentence text with every annotated phrase
// wrapped in color, relying on the annotation position invariant.
func (r *TextRenderer) sentence(s chapter.Sentence) string {
	if !r.HasColor || len(s.Annotations) == 0 {
		return s.Text
	}

	var b strings.Builder
	pos := 0
	for _, a := range s.Annotations {
		b.WriteString(s.Text[pos:a.Offset])
		b.WriteString(Teal)
		b.WriteString(s.Text[a.Offset : a.Offset+a.Length])
		b.WriteString(Off)
		pos = a.Offset + a.Length
	}
	b.WriteString(s.Text[pos:])
	return b.String()
}

func (r *TextRenderer) color(c, s string) string {
	if !r.HasColor {
		return s
	}
	return c + s + Off
}

// compile-time interface check
var _ Renderer = (*TextRenderer)(nil)
