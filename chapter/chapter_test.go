package chapter

import (
	"encoding/json"
	"errors"
	"testing"
)

func twoEntries(labelA, labelB string) []Entry {
	return []Entry{
		{
			Label:       labelA,
			Original:    Sentence{Text: "first"},
			Translation: []string{"erste"},
		},
		{
			Label:       labelB,
			Original:    Sentence{Text: "second"},
			Translation: []string{"zweite"},
		},
	}
}

func TestNewDuplicateLabel(t *testing.T) {
	ch, err := New(twoEntries("intro", "intro"))
	if err == nil {
		t.Fatal("expected duplicate label error")
	}
	if ch != nil {
		t.Fatal("no chapter may be produced on error")
	}

	var dup *DuplicateLabelError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateLabelError, got %T: %v", err, err)
	}
	if dup.Label != "intro" {
		t.Errorf("expected label 'intro', got %q", dup.Label)
	}
}

func TestNewAllowsUnlabeled(t *testing.T) {
	ch, err := New(twoEntries("", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", ch.Len())
	}
	if ch.Entries()[1].Seq != 1 {
		t.Errorf("expected seq 1, got %d", ch.Entries()[1].Seq)
	}
}

func TestFindByLabel(t *testing.T) {
	ch, err := New(twoEntries("intro", "body"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e, err := ch.FindByLabel("intro")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if e.Original.Text != "first" {
		t.Errorf("wrong entry: %q", e.Original.Text)
	}

	_, err = ch.FindByLabel("missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
	if nf.Label != "missing" {
		t.Errorf("expected label 'missing', got %q", nf.Label)
	}
}

func TestEntriesIsACopy(t *testing.T) {
	ch, err := New(twoEntries("intro", "body"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := ch.Entries()
	entries[0].Label = "mutated"

	if got := ch.Entries()[0].Label; got != "intro" {
		t.Errorf("chapter was mutated through Entries: %q", got)
	}
}

func TestAnnotationsOrder(t *testing.T) {
	entries := []Entry{
		{
			Original: Sentence{
				Text: "a b",
				Annotations: []Annotation{
					{Phrase: "a", Meaning: "1", Offset: 0, Length: 1, Index: 0},
					{Phrase: "b", Meaning: "2", Offset: 2, Length: 1, Index: 1},
				},
			},
			Translation: []string{"t"},
		},
		{
			Original: Sentence{
				Text:        "c",
				Annotations: []Annotation{{Phrase: "c", Meaning: "3", Offset: 0, Length: 1, Index: 0}},
			},
			Translation: []string{"t"},
		},
	}
	ch, err := New(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var phrases []string
	for _, a := range ch.Annotations() {
		phrases = append(phrases, a.Phrase)
	}
	if len(phrases) != 3 || phrases[0] != "a" || phrases[1] != "b" || phrases[2] != "c" {
		t.Errorf("annotation order: %v", phrases)
	}
}

func TestMeanings(t *testing.T) {
	a := Annotation{Meaning: "house; home ;  building"}
	got := a.Meanings()
	want := []string{"house", "home", "building"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	single := Annotation{Meaning: "word meaning"}
	if got := single.Meanings(); len(got) != 1 || got[0] != "word meaning" {
		t.Errorf("got %v", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	ch, err := New(twoEntries("intro", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(ch)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	back := &Chapter{}
	if err := json.Unmarshal(data, back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if back.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", back.Len())
	}
	if _, err := back.FindByLabel("intro"); err != nil {
		t.Errorf("lookup after round trip failed: %v", err)
	}
}

func TestJSONRejectsDuplicates(t *testing.T) {
	data := []byte(`[
		{"label": "x", "original": {"text": "a"}, "translation": ["t"]},
		{"label": "x", "original": {"text": "b"}, "translation": ["t"]}
	]`)

	back := &Chapter{}
	err := json.Unmarshal(data, back)
	if err == nil {
		t.Fatal("expected duplicate label error")
	}
	var dup *DuplicateLabelError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateLabelError, got %T: %v", err, err)
	}
}
