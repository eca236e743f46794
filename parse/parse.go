// Package parse turns raw chapter markup into the chapter document model.
//
// The input is consumed in a single pass: the token scanner feeds an entry
// state machine that recognizes label/sentence/separator/translation units
// and delegates annotation spans to the sentence builder. Every structural
// fault aborts the whole parse with a *Error naming the offending line; no
// partial chapter is ever returned.
package parse

import (
	"io"
	"strings"

	"github.com/revelaction/glosa/chapter"
	"github.com/revelaction/glosa/token"
)

// state of the entry builder.
type state int

const (
	expectLabelOrSentence state = iota
	inSentence
	expectTranslation
	inTranslation
)

// Chapter parses raw chapter markup.
func Chapter(src string) (*chapter.Chapter, error) {
	b := &builder{
		sc:         token.NewScanner(src),
		labelLines: make(map[string]int),
	}
	return b.run()
}

// Reader parses chapter markup from r.
func Reader(r io.Reader) (*chapter.Chapter, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Chapter(string(data))
}

type builder struct {
	sc    *token.Scanner
	state state

	entries []chapter.Entry

	// labelLines maps every label seen so far to its source line, carried
	// through the whole build so a duplicate is rejected the moment its
	// label line is read.
	labelLines map[string]int

	pendingLabel string
	entryLine    int

	sentence sentenceBuilder
	original chapter.Sentence

	translation []string
	lineBuf     strings.Builder
}

func (b *builder) run() (*chapter.Chapter, error) {
	for {
		tok := b.sc.Next()

		var err *Error
		switch b.state {
		case expectLabelOrSentence:
			err = b.stepExpect(tok)
		case inSentence:
			err = b.stepSentence(tok)
		case expectTranslation:
			err = b.stepExpectTranslation(tok)
		case inTranslation:
			err = b.stepTranslation(tok)
		}
		if err != nil {
			return nil, err
		}

		if tok.Type == token.EOF {
			return chapter.New(b.entries)
		}
	}
}

// stepExpect handles the initial state of each entry: an optional label
// line followed by the first sentence content.
func (b *builder) stepExpect(tok token.Token) *Error {
	switch tok.Type {
	case token.Newline:
		return nil

	case token.Label:
		if b.pendingLabel != "" {
			return errAt(UnexpectedLabel, tok.Line, "second label %q before any sentence text", tok.Value)
		}
		if first, ok := b.labelLines[tok.Value]; ok {
			return errAt(DuplicateLabel, tok.Line, "label %q already used on line %d", tok.Value, first)
		}
		b.labelLines[tok.Value] = tok.Line
		b.pendingLabel = tok.Value
		b.entryLine = tok.Line
		return nil

	case token.Text:
		if strings.TrimSpace(tok.Value) == "" {
			return nil
		}
		b.beginSentence(tok.Line)
		b.sentence.writeText(tok.Value)
		return nil

	case token.AnnotOpen:
		b.beginSentence(tok.Line)
		return b.sentence.open(tok.Line)

	case token.AnnotClose:
		return errAt(UnexpectedAnnotationClose, tok.Line, "%q with no open annotation", ">>")

	case token.Separator:
		return errAt(UnexpectedSeparator, tok.Line, "separator with no sentence")

	case token.EOF:
		if b.pendingLabel != "" {
			return errAt(IncompleteEntry, b.entryLine, "label %q with no sentence", b.pendingLabel)
		}
		return nil
	}
	return nil
}

func (b *builder) beginSentence(line int) {
	if b.pendingLabel == "" {
		b.entryLine = line
	}
	b.sentence = sentenceBuilder{}
	b.state = inSentence
}

// stepSentence accumulates the sentence block up to the separator.
func (b *builder) stepSentence(tok token.Token) *Error {
	switch tok.Type {
	case token.Text:
		b.sentence.writeText(tok.Value)
		return nil

	case token.AnnotOpen:
		return b.sentence.open(tok.Line)

	case token.AnnotClose:
		return b.sentence.close(tok.Line)

	case token.Newline:
		return b.sentence.endLine(tok.Line)

	case token.Separator:
		b.original = b.sentence.finish()
		b.state = expectTranslation
		return nil

	case token.Label:
		return errAt(MissingSeparator, tok.Line, "label %q before the sentence was separated from its translation", tok.Value)

	case token.EOF:
		return errAt(MissingSeparator, tok.Line, "input ended inside a sentence block")
	}
	return nil
}

// stepExpectTranslation waits for the first translation line after the
// separator. Blank lines here are insignificant.
func (b *builder) stepExpectTranslation(tok token.Token) *Error {
	switch tok.Type {
	case token.Newline:
		return nil

	case token.Text:
		if strings.TrimSpace(tok.Value) == "" {
			return nil
		}
		b.lineBuf.WriteString(tok.Value)
		b.state = inTranslation
		return nil

	case token.AnnotOpen, token.AnnotClose:
		return errAt(UnexpectedAnnotation, tok.Line, "annotation marker in translation block")

	case token.Separator:
		return errAt(UnexpectedSeparator, tok.Line, "second separator in entry")

	case token.Label:
		return errAt(IncompleteEntry, tok.Line, "translation block is empty")

	case token.EOF:
		return errAt(IncompleteEntry, tok.Line, "input ended before the translation block")
	}
	return nil
}

// stepTranslation accumulates translation lines. A blank line, a new label
// or the end of input terminates the block and commits the entry.
func (b *builder) stepTranslation(tok token.Token) *Error {
	switch tok.Type {
	case token.Text:
		b.lineBuf.WriteString(tok.Value)
		return nil

	case token.Newline:
		line := strings.TrimSpace(b.lineBuf.String())
		b.lineBuf.Reset()
		if line == "" {
			// blank line run terminates the block
			b.commitEntry()
			return nil
		}
		b.translation = append(b.translation, line)
		return nil

	case token.AnnotOpen, token.AnnotClose:
		return errAt(UnexpectedAnnotation, tok.Line, "annotation marker in translation block")

	case token.Separator:
		return errAt(UnexpectedSeparator, tok.Line, "second separator in entry")

	case token.Label:
		// the label both terminates this entry and opens the next
		b.flushTranslationLine()
		b.commitEntry()
		return b.stepExpect(tok)

	case token.EOF:
		b.flushTranslationLine()
		b.commitEntry()
		return nil
	}
	return nil
}

func (b *builder) flushTranslationLine() {
	line := strings.TrimSpace(b.lineBuf.String())
	b.lineBuf.Reset()
	if line != "" {
		b.translation = append(b.translation, line)
	}
}

// commitEntry emits the completed entry and resets for the next one.
func (b *builder) commitEntry() {
	b.entries = append(b.entries, chapter.Entry{
		Label:       b.pendingLabel,
		Line:        b.entryLine,
		Original:    b.original,
		Translation: b.translation,
	})
	b.pendingLabel = ""
	b.original = chapter.Sentence{}
	b.translation = nil
	b.state = expectLabelOrSentence
}
