package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/revelaction/glosa/chapter"
	"github.com/revelaction/glosa/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// ChapterStore persists chapters in SQLite: one row per chapter, per entry
// and per annotation, so labels and annotations stay queryable without
// loading whole documents.
type ChapterStore struct {
	pool *sqlitex.Pool
}

var _ storage.ChapterRepository = (*ChapterStore)(nil)

func NewChapterStore(pool *sqlitex.Pool) *ChapterStore {
	return &ChapterStore{pool: pool}
}

func (h *ChapterStore) List() ([]storage.Meta, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var metas []storage.Meta
	err = sqlitex.Execute(conn,
		`SELECT c.id, c.name, COUNT(e.id) FROM chapters c
		 LEFT JOIN entries e ON e.chapter_id = c.id
		 GROUP BY c.id, c.name ORDER BY c.name`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				metas = append(metas, storage.Meta{
					Id:         stmt.ColumnInt(0),
					Name:       stmt.ColumnText(1),
					NumEntries: stmt.ColumnInt(2),
				})
				return nil
			},
		})
	if err != nil {
		return nil, err
	}
	return metas, nil
}

func (h *ChapterStore) Read(id int) (*chapter.Chapter, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	found := false
	err = sqlitex.Execute(conn, "SELECT id FROM chapters WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("chapter not found: %d", id)
	}

	type row struct {
		rowID int64
		entry chapter.Entry
	}
	var rows []row

	err = sqlitex.Execute(conn,
		"SELECT id, label, line, sentence, translation FROM entries WHERE chapter_id = ? ORDER BY seq",
		&sqlitex.ExecOptions{
			Args: []interface{}{id},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				r := row{rowID: stmt.ColumnInt64(0)}
				r.entry.Label = stmt.ColumnText(1)
				r.entry.Line = stmt.ColumnInt(2)
				r.entry.Original.Text = stmt.ColumnText(3)
				if err := json.Unmarshal([]byte(stmt.ColumnText(4)), &r.entry.Translation); err != nil {
					return err
				}
				rows = append(rows, r)
				return nil
			},
		})
	if err != nil {
		return nil, err
	}

	entries := make([]chapter.Entry, 0, len(rows))
	for _, r := range rows {
		idx := 0
		err = sqlitex.Execute(conn,
			"SELECT phrase, meaning, pos, len FROM annotations WHERE entry_id = ? ORDER BY idx",
			&sqlitex.ExecOptions{
				Args: []interface{}{r.rowID},
				ResultFunc: func(stmt *sqlite.Stmt) error {
					r.entry.Original.Annotations = append(r.entry.Original.Annotations, chapter.Annotation{
						Phrase:  stmt.ColumnText(0),
						Meaning: stmt.ColumnText(1),
						Offset:  stmt.ColumnInt(2),
						Length:  stmt.ColumnInt(3),
						Index:   idx,
					})
					idx++
					return nil
				},
			})
		if err != nil {
			return nil, err
		}
		entries = append(entries, r.entry)
	}

	ch, err := chapter.New(entries)
	if err != nil {
		return nil, fmt.Errorf("stored chapter %d: %w", id, err)
	}
	return ch, nil
}

func (h *ChapterStore) ReadByName(name string) (*chapter.Chapter, error) {
	id, err := h.id(name)
	if err != nil {
		return nil, err
	}
	return h.Read(id)
}

// id resolves a chapter name to its row ID.
func (h *ChapterStore) id(name string) (int, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	id, found := 0, false
	err = sqlitex.Execute(conn, "SELECT id FROM chapters WHERE name = ?", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			id = stmt.ColumnInt(0)
			found = true
			return nil
		},
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("chapter not found: %s", name)
	}
	return id, nil
}

func (h *ChapterStore) Labels(pattern string) ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var queryBuilder strings.Builder
	var args []interface{}
	queryBuilder.WriteString("SELECT DISTINCT label FROM entries WHERE label <> ''")
	if pattern != "" {
		queryBuilder.WriteString(" AND instr(label, ?) > 0")
		args = append(args, pattern)
	}
	queryBuilder.WriteString(" ORDER BY label")

	var labels []string
	err = sqlitex.Execute(conn, queryBuilder.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			labels = append(labels, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return labels, nil
}

func (h *ChapterStore) Write(name string, ch *chapter.Chapter) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	if err := h.deleteByName(conn, name); err != nil {
		return err
	}

	err = sqlitex.Execute(conn, "INSERT INTO chapters (name) VALUES (?)", &sqlitex.ExecOptions{
		Args: []interface{}{name},
	})
	if err != nil {
		return fmt.Errorf("failed to insert chapter: %w", err)
	}
	chapterID := conn.LastInsertRowID()

	for _, e := range ch.Entries() {
		translation, marshalErr := json.Marshal(e.Translation)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn,
			"INSERT INTO entries (chapter_id, seq, label, line, sentence, translation) VALUES (?, ?, ?, ?, ?, ?)",
			&sqlitex.ExecOptions{
				Args: []interface{}{chapterID, e.Seq, e.Label, e.Line, e.Original.Text, string(translation)},
			})
		if err != nil {
			return fmt.Errorf("failed to insert entry: %w", err)
		}
		entryID := conn.LastInsertRowID()

		for _, a := range e.Original.Annotations {
			err = sqlitex.Execute(conn,
				"INSERT INTO annotations (entry_id, idx, phrase, meaning, pos, len) VALUES (?, ?, ?, ?, ?, ?)",
				&sqlitex.ExecOptions{
					Args: []interface{}{entryID, a.Index, a.Phrase, a.Meaning, a.Offset, a.Length},
				})
			if err != nil {
				return fmt.Errorf("failed to insert annotation: %w", err)
			}
		}
	}

	return nil
}

// deleteByName removes a previously stored chapter with the same name, so
// Write replaces.
func (h *ChapterStore) deleteByName(conn *sqlite.Conn, name string) error {
	var old int64
	found := false
	err := sqlitex.Execute(conn, "SELECT id FROM chapters WHERE name = ?", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			old = stmt.ColumnInt64(0)
			found = true
			return nil
		},
	})
	if err != nil || !found {
		return err
	}

	for _, q := range []string{
		"DELETE FROM annotations WHERE entry_id IN (SELECT id FROM entries WHERE chapter_id = ?)",
		"DELETE FROM entries WHERE chapter_id = ?",
		"DELETE FROM chapters WHERE id = ?",
	} {
		if err := sqlitex.Execute(conn, q, &sqlitex.ExecOptions{Args: []interface{}{old}}); err != nil {
			return err
		}
	}
	return nil
}
