package holiday

import (
	"context"
)

// HolidayService defines business logic for calendar maintenance
type HolidayService interface {
	// CreateHoliday adds a holiday to the calendar
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// DeleteHoliday removes a holiday
	DeleteHoliday(ctx context.Context, id string) error

	// ListHolidays retrieves the calendar for one year
	ListHolidays(ctx context.Context, year int) (ListHolidaysResponse, error)
}
