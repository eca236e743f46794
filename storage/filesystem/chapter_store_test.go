package filesystem

import (
	"testing"

	"github.com/revelaction/glosa/chapter"
	"github.com/revelaction/glosa/parse"
)

func mustParse(t *testing.T, src string) *chapter.Chapter {
	t.Helper()
	ch, err := parse.Chapter(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return ch
}

func TestWriteAndRead(t *testing.T) {
	dir := t.TempDir()
	store, err := NewChapterStore(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	src := "@ intro\nDas << Haus = house >> ist alt.\n---\nThe house is old.\n"
	ch := mustParse(t, src)

	if err := store.Write("lesson-01", ch); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	metas, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(metas) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(metas))
	}
	if metas[0].Name != "lesson-01" || metas[0].NumEntries != 1 {
		t.Errorf("meta: %+v", metas[0])
	}

	back, err := store.Read(metas[0].Id)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	e, err := back.FindByLabel("intro")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if e.Original.Text != "Das Haus ist alt." {
		t.Errorf("sentence: %q", e.Original.Text)
	}
	if len(e.Original.Annotations) != 1 {
		t.Fatalf("expected 1 annotation, got %d", len(e.Original.Annotations))
	}
}

func TestReadByName(t *testing.T) {
	store, err := NewChapterStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	ch := mustParse(t, "s\n---\nt\n")
	if err := store.Write("alpha", ch); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := store.ReadByName("alpha"); err != nil {
		t.Errorf("read by name failed: %v", err)
	}
	if _, err := store.ReadByName("missing"); err == nil {
		t.Error("expected error for missing chapter")
	}
}

func TestListSortedByName(t *testing.T) {
	store, err := NewChapterStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	ch := mustParse(t, "s\n---\nt\n")

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := store.Write(name, ch); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	metas, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, m := range metas {
		if m.Name != want[i] {
			t.Errorf("position %d: got %q, want %q", i, m.Name, want[i])
		}
		if m.Id != i {
			t.Errorf("position %d: id %d", i, m.Id)
		}
	}
}

func TestLabels(t *testing.T) {
	store, err := NewChapterStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	first := mustParse(t, "@ intro\na\n---\nt\n\n@ body\nb\n---\nt\n")
	second := mustParse(t, "@ intro2\nc\n---\nt\n")
	if err := store.Write("one", first); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := store.Write("two", second); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	all, err := store.Labels("")
	if err != nil {
		t.Fatalf("labels failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 labels, got %v", all)
	}

	filtered, err := store.Labels("intro")
	if err != nil {
		t.Fatalf("labels failed: %v", err)
	}
	if len(filtered) != 2 || filtered[0] != "intro" || filtered[1] != "intro2" {
		t.Errorf("filtered labels: %v", filtered)
	}
}

func TestWriteReplaces(t *testing.T) {
	store, err := NewChapterStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := store.Write("ch", mustParse(t, "a\n---\nt\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := store.Write("ch", mustParse(t, "a\n---\nt\n\nb\n---\nu\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	metas, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(metas) != 1 || metas[0].NumEntries != 2 {
		t.Errorf("metas after rewrite: %+v", metas)
	}
}
