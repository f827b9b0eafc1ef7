package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrOwnerNotFound    = errors.New("owner of the record doesn't exist")
	ErrWrongOwner       = errors.New("record belongs to another user")
	ErrValidation       = errors.New("validation error")
)

var (
	ErrHabitExists         = errors.New("habit with such name already exists")
	ErrHabitNotFound       = errors.New("habit doesn't exist")
	ErrHabitArchived       = errors.New("habit is archived")
	ErrCheckDateNotAllowed = errors.New("can't log a habit for a future date")
)

var (
	ErrTaskNotFound    = errors.New("task doesn't exist")
	ErrExpenseNotFound = errors.New("expense doesn't exist")
	ErrMoodNotFound    = errors.New("mood entry doesn't exist")
	ErrBudgetNotFound  = errors.New("budget goal doesn't exist")
	ErrNoteNotFound    = errors.New("note doesn't exist")
)

// ErrReportDataUnavailable is returned when any of the reads backing a report fails.
// No partial report is ever produced alongside it.
var ErrReportDataUnavailable = errors.New("report data unavailable")
