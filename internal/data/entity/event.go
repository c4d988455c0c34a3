package entity

import "time"

type Event struct {
	Base
	Title           string        `db:"title"`
	Description     string        `db:"description"`
	EventDate       time.Time     `db:"event_date"`
	TotalSpots      int           `db:"total_spots"`
	RequiresPayment bool          `db:"requires_payment"`
	BookingTTL      time.Duration `db:"booking_ttl"`
}

// Deadline is the instant a pending booking created at the given time
// must be confirmed by.
func (e *Event) Deadline(bookedAt time.Time) time.Time {
	return bookedAt.Add(e.BookingTTL)
}
