package holiday

import "time"

// Holiday is one entry in the company-wide holiday calendar.
type Holiday struct {
	ID        string
	Date      time.Time // date-only
	Name      string
	CreatedAt time.Time
}
