package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

type Habit struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"uid"`
	Name            string    `json:"name"`
	Icon            string    `json:"icon,omitempty"`
	Frequency       Frequency `json:"frequency"`
	TargetDays      []int     `json:"targetDays,omitempty"`
	ReminderEnabled bool      `json:"reminderEnabled"`
	ReminderTime    *string   `json:"reminderTime,omitempty"`
	Archived        bool      `json:"archived"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// HabitLog is one day of a habit. Date is always a calendar.Day value.
type HabitLog struct {
	ID        uuid.UUID `json:"id"`
	HabitID   uuid.UUID `json:"habitId"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

type HabitStats struct {
	ID              uuid.UUID  `json:"habitId"`
	TotalChecks     int        `json:"totalChecks"`
	CurrentStreak   int        `json:"currentStreak"`
	MaxStreak       int        `json:"maxStreak"`
	ConsistencyRate int        `json:"consistencyRate"`
	LastCheck       *time.Time `json:"lastCheck,omitempty"`
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Group       *string    `json:"group,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type MoodEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Mood      int       `json:"mood"`
	Energy    *int      `json:"energy,omitempty"`
	Note      string    `json:"note,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type Note struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Title     *string   `json:"title,omitempty"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SearchResultType string

const (
	SearchTask    SearchResultType = "task"
	SearchNote    SearchResultType = "note"
	SearchHabit   SearchResultType = "habit"
	SearchExpense SearchResultType = "expense"
)

type SearchResult struct {
	ID       uuid.UUID        `json:"id"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Type     SearchResultType `json:"type"`
}
