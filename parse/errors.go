package parse

import "fmt"

// Kind classifies a structural parse failure.
type Kind int

const (
	// UnterminatedAnnotation is a "<<" with no matching ">>" before the
	// end of its line.
	UnterminatedAnnotation Kind = iota + 1

	// UnexpectedAnnotationClose is a ">>" with no open "<<".
	UnexpectedAnnotationClose

	// NestedAnnotation is a "<<" inside an already open annotation.
	NestedAnnotation

	// MalformedAnnotation is a span missing its "=", carrying a second
	// "=", or with an empty phrase or meaning.
	MalformedAnnotation

	// MissingSeparator is a sentence block running into a new label or
	// the end of input without an intervening separator line.
	MissingSeparator

	// IncompleteEntry is an entry cut off before both its sentence and
	// translation were committed.
	IncompleteEntry

	// DuplicateLabel is a label already used by an earlier entry.
	DuplicateLabel

	// UnexpectedSeparator is a separator line with no open sentence
	// block, or a second separator inside one entry.
	UnexpectedSeparator

	// UnexpectedLabel is a second consecutive label line before any
	// sentence text.
	UnexpectedLabel

	// UnexpectedAnnotation is an annotation marker inside a translation
	// block.
	UnexpectedAnnotation
)

func (k Kind) String() string {
	switch k {
	case UnterminatedAnnotation:
		return "unterminated annotation"
	case UnexpectedAnnotationClose:
		return "unexpected annotation close"
	case NestedAnnotation:
		return "nested annotation"
	case MalformedAnnotation:
		return "malformed annotation"
	case MissingSeparator:
		return "missing separator"
	case IncompleteEntry:
		return "incomplete entry"
	case DuplicateLabel:
		return "duplicate label"
	case UnexpectedSeparator:
		return "unexpected separator"
	case UnexpectedLabel:
		return "unexpected label"
	case UnexpectedAnnotation:
		return "annotation in translation"
	}
	return "parse error"
}

// Error is a structural parse failure. Any Error aborts the parse of the
// whole chapter: no partial chapter is ever produced.
type Error struct {
	Kind Kind

	// Line is the 1-based source line the failure was detected on.
	Line int

	// Msg carries failure context, may be empty.
	Msg string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Kind)
	}
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Msg)
}

func errAt(kind Kind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}
