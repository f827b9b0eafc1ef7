package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/pkg/calendar"
	"github.com/limbo/lifeboard/pkg/entity"
)

type MoodsRepository struct {
	conn PgConnection
}

func NewMoodsRepoWithConn(conn PgConnection) *MoodsRepository {
	mustPing(conn, "moodsRepo")
	return &MoodsRepository{
		conn: conn,
	}
}

func (mr *MoodsRepository) Upsert(ctx context.Context, entry *entity.MoodEntry) (uuid.UUID, error) {
	var id uuid.UUID
	row := mr.conn.QueryRow(ctx, `INSERT INTO mood_entries (user_id, mood, energy, note, date) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE SET mood = EXCLUDED.mood, energy = EXCLUDED.energy, note = EXCLUDED.note
		RETURNING id;`,
		entry.UserID,
		entry.Mood,
		entry.Energy,
		entry.Note,
		calendar.Day(entry.Date),
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return uuid.Nil, errorvalues.ErrOwnerNotFound
		}
		return uuid.Nil, fmt.Errorf("upserting mood entry error: %w", err)
	}
	return id, nil
}

func (mr *MoodsRepository) ListBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.MoodEntry, error) {
	rows, err := mr.conn.Query(ctx, `SELECT id, user_id, mood, energy, note, date, created_at FROM mood_entries
		WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date;`,
		uid, calendar.Day(from), calendar.Day(to),
	)
	if err != nil {
		return nil, fmt.Errorf("listing mood entries error: %w", err)
	}
	defer rows.Close()
	entries := make([]entity.MoodEntry, 0)
	for rows.Next() {
		var m entity.MoodEntry
		if err := rows.Scan(&m.ID, &m.UserID, &m.Mood, &m.Energy, &m.Note, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("mood entry row parsing error: %w", err)
		}
		m.Date = calendar.Day(m.Date)
		entries = append(entries, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected mood entry rows error: %w", err)
	}
	return entries, nil
}

func (mr *MoodsRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM mood_entries WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return fmt.Errorf("deleting mood entry error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMoodNotFound
	}
	return nil
}
