package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noteColumns = []string{"id", "user_id", "title", "content", "tags", "pinned", "created_at", "updated_at"}

func noteRow(rows *pgxmock.Rows, n entity.Note) *pgxmock.Rows {
	return rows.AddRow(n.ID, n.UserID, n.Title, n.Content, n.Tags, n.Pinned, n.CreatedAt, n.UpdatedAt)
}

func TestCreateNote(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNotesRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO notes (user_id, title, content, tags, pinned)`)
	ctx := context.Background()
	t.Run("nil tags stored as empty", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(query).
			WithArgs(userID, (*string)(nil), "body", []string{}, false).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		result, err := repo.Create(ctx, &entity.Note{UserID: userID, Content: "body"})
		assert.NoError(t, err)
		assert.Equal(t, id, result)
	})
	t.Run("unknown owner", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, (*string)(nil), "body", []string{"x"}, true).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &entity.Note{UserID: userID, Content: "body", Tags: []string{"x"}, Pinned: true})
		assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
	})
}

func TestGetNoteByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNotesRepoWithConn(mock)
	query := regexp.QuoteMeta(`FROM notes WHERE id = $1;`)
	title := "groceries"
	note := entity.Note{ID: uuid.New(), UserID: userID, Title: &title, Content: "milk", Tags: []string{"home"},
		CreatedAt: time.Now(), UpdatedAt: time.Now()}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(note.ID).WillReturnRows(noteRow(pgxmock.NewRows(noteColumns), note))
		result, err := repo.GetByID(ctx, note.ID)
		require.NoError(t, err)
		assert.Equal(t, &note, result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(note.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, note.ID)
		assert.ErrorIs(t, err, errorvalues.ErrNoteNotFound)
	})
}

func TestListNotes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNotesRepoWithConn(mock)
	note := entity.Note{ID: uuid.New(), UserID: userID, Content: "a", Tags: []string{"work"}, Pinned: true}
	ctx := context.Background()
	t.Run("all", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 ORDER BY pinned DESC, updated_at DESC;`)).
			WithArgs(userID).
			WillReturnRows(noteRow(pgxmock.NewRows(noteColumns), note))
		notes, err := repo.List(ctx, userID, "")
		require.NoError(t, err)
		assert.Equal(t, []entity.Note{note}, notes)
	})
	t.Run("by tag", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND $2 = ANY(tags) ORDER BY pinned DESC, updated_at DESC;`)).
			WithArgs(userID, "work").
			WillReturnRows(noteRow(pgxmock.NewRows(noteColumns), note))
		notes, err := repo.List(ctx, userID, "work")
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM notes`)).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx, userID, "")
		assert.EqualError(t, err, "listing notes error: db error")
	})
}

func TestUpdateNote(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNotesRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE notes SET title = $1, content = $2, tags = $3, pinned = $4, updated_at = NOW()`)
	note := entity.Note{ID: uuid.New(), UserID: userID, Content: "new body"}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs((*string)(nil), "new body", []string{}, false, note.ID, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &note))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs((*string)(nil), "new body", []string{}, false, note.ID, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &note), errorvalues.ErrNoteNotFound)
	})
}

func TestSearchNotes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNotesRepoWithConn(mock)
	note := entity.Note{ID: uuid.New(), UserID: userID, Content: "Buy MILK", Tags: []string{}}
	mock.ExpectQuery(regexp.QuoteMeta(`(title ILIKE $2 OR content ILIKE $2) ORDER BY updated_at DESC LIMIT $3;`)).
		WithArgs(userID, "%milk%", 5).
		WillReturnRows(noteRow(pgxmock.NewRows(noteColumns), note))
	notes, err := repo.Search(context.Background(), userID, "milk", 5)
	require.NoError(t, err)
	assert.Equal(t, []entity.Note{note}, notes)
}
