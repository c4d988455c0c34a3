package response

import (
	"time"

	"event-booking/internal/data/entity"
)

type BookingResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	UserID     string `json:"user_id"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	ResolvedAt string `json:"resolved_at,omitempty"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        booking.ID.String(),
		EventID:   booking.EventID.String(),
		UserID:    booking.UserID.String(),
		Status:    string(booking.Status),
		CreatedAt: booking.CreatedAt.Format(time.RFC3339),
	}
	if booking.ResolvedAt != nil {
		resp.ResolvedAt = booking.ResolvedAt.Format(time.RFC3339)
	}
	return resp
}
