package glossary

import (
	"strings"
	"testing"

	"github.com/revelaction/glosa/parse"
)

func TestAggregate(t *testing.T) {
	src := `@ a
Das << Haus = house; home >> ist alt.
---
The house is old.

@ b
Ein << Haus = house; building >> und ein << Baum = tree >>.
---
A house and a tree.
`
	ch, err := parse.Chapter(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	hdl := NewHandler()
	hdl.Aggregate(ch)
	gl := hdl.Get()

	if len(gl) != 2 {
		t.Fatalf("expected 2 glossary entries, got %d", len(gl))
	}

	haus := gl[0]
	if haus.Phrase != "Haus" {
		t.Fatalf("expected first phrase 'Haus', got %q", haus.Phrase)
	}
	if haus.Count != 2 {
		t.Errorf("expected count 2, got %d", haus.Count)
	}
	if got := strings.Join(haus.Meanings, ","); got != "house,home,building" {
		t.Errorf("meanings merged wrong: %q", got)
	}
	if got := strings.Join(haus.Labels, ","); got != "a,b" {
		t.Errorf("labels: %q", got)
	}

	if gl[1].Phrase != "Baum" {
		t.Errorf("expected second phrase 'Baum', got %q", gl[1].Phrase)
	}
}

func TestAggregateMultipleChapters(t *testing.T) {
	first, err := parse.Chapter("x << w = m1 >>\n---\nt\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	second, err := parse.Chapter("y << w = m2 >>\n---\nt\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	hdl := NewHandler()
	hdl.Aggregate(first)
	hdl.Aggregate(second)

	gl := hdl.Get()
	if len(gl) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(gl))
	}
	if got := strings.Join(gl[0].Meanings, ","); got != "m1,m2" {
		t.Errorf("meanings: %q", got)
	}
	if gl[0].Count != 2 {
		t.Errorf("count: %d", gl[0].Count)
	}
}
