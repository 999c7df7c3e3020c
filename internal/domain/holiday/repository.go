package holiday

import (
	"context"
	"time"
)

// HolidayRepository is the calendar collaborator behind the classifier's
// holiday flag.
type HolidayRepository interface {
	// Create adds a holiday to the calendar
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// Delete removes a holiday from the calendar
	Delete(ctx context.Context, id string) error

	// ListByYear retrieves all holidays of a year ordered by date
	ListByYear(ctx context.Context, year int) ([]Holiday, error)

	// IsHoliday reports whether the given date is in the calendar
	IsHoliday(ctx context.Context, date time.Time) (bool, error)

	// DatesForPeriod returns the holiday dates of one month keyed by
	// YYYY-MM-DD, for bulk classification when a period is opened.
	DatesForPeriod(ctx context.Context, month, year int) (map[string]bool, error)
}
