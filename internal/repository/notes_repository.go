package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/pkg/entity"
)

const noteColumns = `id, user_id, title, content, tags, pinned, created_at, updated_at`

type NotesRepository struct {
	conn PgConnection
}

func NewNotesRepoWithConn(conn PgConnection) *NotesRepository {
	mustPing(conn, "notesRepo")
	return &NotesRepository{
		conn: conn,
	}
}

func (nr *NotesRepository) Create(ctx context.Context, note *entity.Note) (uuid.UUID, error) {
	var id uuid.UUID
	row := nr.conn.QueryRow(ctx, `INSERT INTO notes (user_id, title, content, tags, pinned)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		note.UserID,
		note.Title,
		note.Content,
		tagsOrEmpty(note.Tags),
		note.Pinned,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return uuid.Nil, errorvalues.ErrOwnerNotFound
		}
		return uuid.Nil, fmt.Errorf("creating note db error: %w", err)
	}
	return id, nil
}

func (nr *NotesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	row := nr.conn.QueryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1;`, id)
	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNoteNotFound
		}
		return nil, fmt.Errorf("getting note by id error: %w", err)
	}
	return note, nil
}

func (nr *NotesRepository) List(ctx context.Context, uid uuid.UUID, tag string) ([]entity.Note, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if tag == "" {
		rows, err = nr.conn.Query(ctx, `SELECT `+noteColumns+` FROM notes
			WHERE user_id = $1 ORDER BY pinned DESC, updated_at DESC;`, uid)
	} else {
		rows, err = nr.conn.Query(ctx, `SELECT `+noteColumns+` FROM notes
			WHERE user_id = $1 AND $2 = ANY(tags) ORDER BY pinned DESC, updated_at DESC;`, uid, tag)
	}
	if err != nil {
		return nil, fmt.Errorf("listing notes error: %w", err)
	}
	return collectNotes(rows)
}

func (nr *NotesRepository) Update(ctx context.Context, note *entity.Note) error {
	ct, err := nr.conn.Exec(ctx, `UPDATE notes SET title = $1, content = $2, tags = $3, pinned = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6;`,
		note.Title,
		note.Content,
		tagsOrEmpty(note.Tags),
		note.Pinned,
		note.ID,
		note.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating note error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNoteNotFound
	}
	return nil
}

func (nr *NotesRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := nr.conn.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return fmt.Errorf("deleting note error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNoteNotFound
	}
	return nil
}

func (nr *NotesRepository) Search(ctx context.Context, uid uuid.UUID, q string, limit int) ([]entity.Note, error) {
	rows, err := nr.conn.Query(ctx, `SELECT `+noteColumns+` FROM notes
		WHERE user_id = $1 AND (title ILIKE $2 OR content ILIKE $2) ORDER BY updated_at DESC LIMIT $3;`,
		uid, containsPattern(q), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching notes error: %w", err)
	}
	return collectNotes(rows)
}

func collectNotes(rows pgx.Rows) ([]entity.Note, error) {
	defer rows.Close()
	notes := make([]entity.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("note row parsing error: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected note rows error: %w", err)
	}
	return notes, nil
}

func scanNote(row pgx.Row) (*entity.Note, error) {
	var n entity.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Tags, &n.Pinned, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// tagsOrEmpty keeps NULL out of the NOT NULL tags column.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
