package parse

import (
	"strings"

	"github.com/revelaction/glosa/chapter"
)

// sentenceBuilder accumulates one original-sentence block: the rendered
// plain text with annotation markup stripped, plus the positioned
// annotations. Lines are joined with a single space; an annotation span may
// not cross a line boundary.
//
// Annotation offsets are computed against the rendered output text, not the
// raw input, so downstream highlighting can slice the sentence directly.
type sentenceBuilder struct {
	text   strings.Builder
	annots []chapter.Annotation

	// current line, offsets in lineAnnots are relative to lineBuf
	lineBuf    strings.Builder
	lineAnnots []chapter.Annotation

	// open annotation span
	inAnnot   bool
	annotBuf  strings.Builder
	annotLine int
}

// writeText handles a Text token.
func (s *sentenceBuilder) writeText(v string) {
	if s.inAnnot {
		s.annotBuf.WriteString(v)
		return
	}
	if s.lineBuf.Len() == 0 && len(s.lineAnnots) == 0 {
		v = strings.TrimLeft(v, " \t")
	}
	s.lineBuf.WriteString(v)
}

// open handles an AnnotOpen token.
func (s *sentenceBuilder) open(line int) *Error {
	if s.inAnnot {
		return errAt(NestedAnnotation, line, "%q inside an open annotation", "<<")
	}
	s.inAnnot = true
	s.annotBuf.Reset()
	s.annotLine = line
	return nil
}

// close handles an AnnotClose token: it splits the span content at the
// first "=" into phrase and meaning and records the annotation at its
// position in the rendered line.
func (s *sentenceBuilder) close(line int) *Error {
	if !s.inAnnot {
		return errAt(UnexpectedAnnotationClose, line, "%q with no open annotation", ">>")
	}
	s.inAnnot = false

	raw := s.annotBuf.String()
	eq := strings.IndexByte(raw, '=')
	if eq < 0 {
		return errAt(MalformedAnnotation, line, "annotation %q has no %q", strings.TrimSpace(raw), "=")
	}
	phrase := strings.TrimSpace(raw[:eq])
	meaning := strings.TrimSpace(raw[eq+1:])
	if phrase == "" {
		return errAt(MalformedAnnotation, line, "empty phrase")
	}
	if meaning == "" {
		return errAt(MalformedAnnotation, line, "empty meaning")
	}
	if strings.IndexByte(meaning, '=') >= 0 {
		return errAt(MalformedAnnotation, line, "meaning %q contains %q", meaning, "=")
	}

	s.lineAnnots = append(s.lineAnnots, chapter.Annotation{
		Phrase:  phrase,
		Meaning: meaning,
		Offset:  s.lineBuf.Len(),
		Length:  len(phrase),
	})
	s.lineBuf.WriteString(phrase)
	return nil
}

// endLine handles a Newline token: the finished line is trimmed and joined
// to the sentence, shifting the line's annotation offsets accordingly.
func (s *sentenceBuilder) endLine(line int) *Error {
	if s.inAnnot {
		return errAt(UnterminatedAnnotation, s.annotLine, "annotation not closed before end of line")
	}

	text := strings.TrimRight(s.lineBuf.String(), " \t")
	s.lineBuf.Reset()
	if text == "" {
		// blank line inside the sentence block, insignificant
		return nil
	}

	base := 0
	if s.text.Len() > 0 {
		s.text.WriteString(" ")
	}
	base = s.text.Len()
	s.text.WriteString(text)

	for _, a := range s.lineAnnots {
		a.Offset += base
		a.Index = len(s.annots)
		s.annots = append(s.annots, a)
	}
	s.lineAnnots = s.lineAnnots[:0]
	return nil
}

// finish returns the rendered sentence. The caller guarantees the last line
// was already terminated, so no annotation can still be open.
func (s *sentenceBuilder) finish() chapter.Sentence {
	return chapter.Sentence{Text: s.text.String(), Annotations: s.annots}
}
