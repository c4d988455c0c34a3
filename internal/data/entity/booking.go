package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses are the statuses that hold a spot on an event.
var ActiveStatuses = []string{
	string(BookingStatusPending),
	string(BookingStatusConfirmed),
}

type Booking struct {
	Base
	EventID uuid.UUID     `db:"event_id"`
	UserID  uuid.UUID     `db:"user_id"`
	Status  BookingStatus `db:"status"`
	// ResolvedAt is set once, when the booking reaches a terminal status.
	ResolvedAt *time.Time `db:"resolved_at"`
}

// Active reports whether the booking still counts against event capacity.
func (b *Booking) Active() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
