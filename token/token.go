package token

import "strings"

// Type classifies a scanned token.
type Type int

const (
	// EOF is returned forever once the input is exhausted.
	EOF Type = iota

	// Text is a maximal run of line content belonging to no other class.
	Text

	// Newline terminates a source line. A blank line emits only its
	// Newline, so consecutive Newline tokens mark a blank line.
	Newline

	// Label is a line of the form "@ <label>". Value holds the trimmed label.
	Label

	// AnnotOpen is the "<<" marker opening an annotation span.
	AnnotOpen

	// AnnotClose is the ">>" marker closing an annotation span.
	AnnotClose

	// Separator is a line consisting solely of three or more dashes. It
	// divides an original sentence block from its translation block.
	Separator
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Text:
		return "Text"
	case Newline:
		return "Newline"
	case Label:
		return "Label"
	case AnnotOpen:
		return "AnnotOpen"
	case AnnotClose:
		return "AnnotClose"
	case Separator:
		return "Separator"
	}
	return "Unknown"
}

// Token is one lexical unit of a chapter file.
type Token struct {
	Type Type

	// Value is the literal text for Text tokens and the trimmed label for
	// Label tokens. Marker tokens leave it empty.
	Value string

	// Line is the 1-based source line the token was scanned from.
	Line int
}

// Scanner splits raw chapter markup into tokens in a single forward pass.
// A Scanner is not restartable.
type Scanner struct {
	src   string
	pos   int
	line  int
	queue []Token
}

func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next token. Once the input is exhausted it returns EOF
// tokens forever.
func (s *Scanner) Next() Token {
	for len(s.queue) == 0 {
		if s.pos >= len(s.src) {
			return Token{Type: EOF, Line: s.line}
		}
		s.scanLine()
	}
	t := s.queue[0]
	s.queue = s.queue[1:]
	return t
}

// ReadAll drains the scanner, including the terminal EOF token.
func ReadAll(s *Scanner) []Token {
	var out []Token
	for {
		t := s.Next()
		out = append(out, t)
		if t.Type == EOF {
			return out
		}
	}
}

// scanLine consumes one source line and queues its tokens.
func (s *Scanner) scanLine() {
	s.line++

	end := strings.IndexByte(s.src[s.pos:], '\n')
	var raw string
	if end < 0 {
		raw = s.src[s.pos:]
		s.pos = len(s.src)
	} else {
		raw = s.src[s.pos : s.pos+end]
		s.pos += end + 1
	}
	raw = strings.TrimSuffix(raw, "\r")

	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		s.queue = append(s.queue, Token{Type: Newline, Line: s.line})
		return

	case strings.HasPrefix(trimmed, "#"):
		// full-line comment, the line does not exist for the parser
		return

	case isLabel(trimmed):
		label := strings.TrimSpace(trimmed[1:])
		s.queue = append(s.queue,
			Token{Type: Label, Value: label, Line: s.line},
			Token{Type: Newline, Line: s.line})
		return

	case isSeparator(trimmed):
		s.queue = append(s.queue,
			Token{Type: Separator, Line: s.line},
			Token{Type: Newline, Line: s.line})
		return
	}

	s.scanContent(raw)
	s.queue = append(s.queue, Token{Type: Newline, Line: s.line})
}

// scanContent splits an ordinary content line into Text runs and
// annotation markers.
func (s *Scanner) scanContent(line string) {
	for line != "" {
		open := strings.Index(line, "<<")
		clos := strings.Index(line, ">>")

		next, marker := -1, EOF
		switch {
		case open >= 0 && (clos < 0 || open <= clos):
			next, marker = open, AnnotOpen
		case clos >= 0:
			next, marker = clos, AnnotClose
		}

		if next < 0 {
			s.queue = append(s.queue, Token{Type: Text, Value: line, Line: s.line})
			return
		}
		if next > 0 {
			s.queue = append(s.queue, Token{Type: Text, Value: line[:next], Line: s.line})
		}
		s.queue = append(s.queue, Token{Type: marker, Line: s.line})
		line = line[next+2:]
	}
}

// isLabel reports whether a trimmed line is a label marker: "@" followed
// by whitespace and a non-empty label.
func isLabel(trimmed string) bool {
	if len(trimmed) < 2 || trimmed[0] != '@' {
		return false
	}
	if trimmed[1] != ' ' && trimmed[1] != '\t' {
		return false
	}
	return strings.TrimSpace(trimmed[1:]) != ""
}

// isSeparator reports whether a trimmed line consists solely of three or
// more dashes.
func isSeparator(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != '-' {
			return false
		}
	}
	return true
}
