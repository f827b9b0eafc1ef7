package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertHabitLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitLogsRepoWithConn(mock)
	lockQuery := regexp.QuoteMeta(`SELECT archived FROM habits WHERE id = $1 FOR SHARE;`)
	upsertQuery := regexp.QuoteMeta(`INSERT INTO habit_logs (habit_id, date, completed) VALUES ($1, $2, $3)`)
	habitID := uuid.New()
	// time of day is dropped before hitting the db
	logged := time.Date(2024, 5, 15, 18, 45, 0, 0, time.UTC)
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(habitID).WillReturnRows(pgxmock.NewRows([]string{"archived"}).AddRow(false))
				mock.ExpectExec(upsertQuery).WithArgs(habitID, day, true).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
		},
		{
			Desc:  "habit not found",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(habitID).WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "habit archived",
			Error: errorvalues.ErrHabitArchived,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(habitID).WillReturnRows(pgxmock.NewRows([]string{"archived"}).AddRow(true))
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "db error on upsert",
			Error: errors.New("upserting habit log error: db error"),
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(habitID).WillReturnRows(pgxmock.NewRows([]string{"archived"}).AddRow(false))
				mock.ExpectExec(upsertQuery).WithArgs(habitID, day, true).WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "begin error",
			Error: errors.New("beginning tx error: db error"),
			MockPrepFunc: func() {
				mock.ExpectBegin().WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Upsert(ctx, habitID, logged, true)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListHabitLogs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitLogsRepoWithConn(mock)
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	habitID := uuid.New()
	logs := []entity.HabitLog{
		{ID: uuid.New(), HabitID: habitID, Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Completed: true, CreatedAt: time.Now()},
		{ID: uuid.New(), HabitID: habitID, Date: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), Completed: false, CreatedAt: time.Now()},
	}
	columns := []string{"id", "habit_id", "date", "completed", "created_at"}
	rowsOf := func() *pgxmock.Rows {
		rows := pgxmock.NewRows(columns)
		for _, l := range logs {
			rows.AddRow(l.ID, l.HabitID, l.Date, l.Completed, l.CreatedAt)
		}
		return rows
	}
	ctx := context.Background()

	t.Run("by user", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM habit_logs l JOIN habits h ON h.id = l.habit_id`)).
			WithArgs(userID, from, to).
			WillReturnRows(rowsOf())
		result, err := repo.ListByUserAndRange(ctx, userID, from.Add(3*time.Hour), to)
		assert.NoError(t, err)
		assert.Equal(t, logs, result)
	})
	t.Run("by habit", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, habit_id, date, completed, created_at FROM habit_logs`)).
			WithArgs(habitID, from, to).
			WillReturnRows(rowsOf())
		result, err := repo.ListByHabitAndRange(ctx, habitID, from, to)
		assert.NoError(t, err)
		assert.Equal(t, logs, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM habit_logs l JOIN habits h ON h.id = l.habit_id`)).
			WithArgs(userID, from, to).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListByUserAndRange(ctx, userID, from, to)
		assert.EqualError(t, err, "getting habit logs for period error: db error")
	})
}

func TestListCompletedDates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT date FROM habit_logs WHERE habit_id = $1 AND completed = TRUE ORDER BY date DESC;`)
	habitID := uuid.New()
	dates := []time.Time{
		time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(habitID).
			WillReturnRows(pgxmock.NewRows([]string{"date"}).AddRow(dates[0]).AddRow(dates[1]))
		result, err := repo.ListCompletedDates(ctx, habitID)
		assert.NoError(t, err)
		assert.Equal(t, dates, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(habitID).WillReturnError(errors.New("db error"))
		_, err := repo.ListCompletedDates(ctx, habitID)
		assert.Error(t, err)
	})
}
