package token

import (
	"testing"
)

// types drains the scanner and returns the token types, without EOF.
func types(src string) []Type {
	var out []Type
	sc := NewScanner(src)
	for {
		t := sc.Next()
		if t.Type == EOF {
			return out
		}
		out = append(out, t.Type)
	}
}

func TestScannerTypes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Type
	}{
		{"empty", "", nil},
		{"blank line", "   \n", []Type{Newline}},
		{"plain text", "my name is", []Type{Text, Newline}},
		{"unicode text", "何か?", []Type{Text, Newline}},
		{"label", "@ l1\n", []Type{Label, Newline}},
		{"label no space is text", "@what", []Type{Text, Newline}},
		{"label empty is text", "@   \n", []Type{Text, Newline}},
		{"separator", "---\n", []Type{Separator, Newline}},
		{"separator long", "--------", []Type{Separator, Newline}},
		{"separator padded", "  ----  \n", []Type{Separator, Newline}},
		{"two dashes are text", "--\n", []Type{Text, Newline}},
		{"dashes inline are text", "a --- b", []Type{Text, Newline}},
		{"annotation", "a << b = c >> d", []Type{Text, AnnotOpen, Text, AnnotClose, Text, Newline}},
		{"annotation at start", "<< b = c >> d", []Type{AnnotOpen, Text, AnnotClose, Text, Newline}},
		{"close without open", ">> d", []Type{AnnotClose, Text, Newline}},
		{"comment line skipped", "# note\n", nil},
		{"comment indented", "   # note\n", nil},
		{"inline hash is text", "a # b", []Type{Text, Newline}},
		{"crlf", "a\r\nb\r\n", []Type{Text, Newline, Text, Newline}},
		{"blank between lines", "a\n\nb", []Type{Text, Newline, Newline, Text, Newline}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := types(tc.src)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("token %d: got %v, want %v", i, got, tc.want)
				}
			}
		})
	}
}

func TestScannerValues(t *testing.T) {
	sc := NewScanner("@   intro  \nDas << Haus = house >>.\n")

	tok := sc.Next()
	if tok.Type != Label || tok.Value != "intro" {
		t.Fatalf("expected label 'intro', got %v %q", tok.Type, tok.Value)
	}
	if tok.Line != 1 {
		t.Errorf("expected line 1, got %d", tok.Line)
	}

	sc.Next() // newline

	tok = sc.Next()
	if tok.Type != Text || tok.Value != "Das " {
		t.Fatalf("expected text 'Das ', got %v %q", tok.Type, tok.Value)
	}
	if tok.Line != 2 {
		t.Errorf("expected line 2, got %d", tok.Line)
	}

	if tok = sc.Next(); tok.Type != AnnotOpen {
		t.Fatalf("expected AnnotOpen, got %v", tok.Type)
	}
	if tok = sc.Next(); tok.Type != Text || tok.Value != " Haus = house " {
		t.Fatalf("expected span text, got %v %q", tok.Type, tok.Value)
	}
	if tok = sc.Next(); tok.Type != AnnotClose {
		t.Fatalf("expected AnnotClose, got %v", tok.Type)
	}
	if tok = sc.Next(); tok.Type != Text || tok.Value != "." {
		t.Fatalf("expected text '.', got %v %q", tok.Type, tok.Value)
	}
}

func TestScannerEOFForever(t *testing.T) {
	sc := NewScanner("a")
	ReadAll(sc)

	for i := 0; i < 3; i++ {
		if tok := sc.Next(); tok.Type != EOF {
			t.Fatalf("expected EOF, got %v", tok.Type)
		}
	}
}
