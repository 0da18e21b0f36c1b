package errorvalues

import "errors"

var (
	ErrTaskNotFound         = errors.New("task doesn't exist")
	ErrDailyEntryNotFound   = errors.New("daily entry doesn't exist")
	ErrReflectionNotFound   = errors.New("reflection doesn't exist")
	ErrWeeklyReviewNotFound = errors.New("weekly review doesn't exist")

	ErrInvalidInput = errors.New("invalid input")
)

// IsNotFound reports whether err is any of the record-level not found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrDailyEntryNotFound) ||
		errors.Is(err, ErrReflectionNotFound) ||
		errors.Is(err, ErrWeeklyReviewNotFound)
}
