package response

import (
	"time"

	"event-booking/internal/data/entity"
)

type EventResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	EventDate       string `json:"event_date"`
	TotalSpots      int    `json:"total_spots"`
	RequiresPayment bool   `json:"requires_payment"`
	BookingTTL      string `json:"booking_ttl"`
	CreatedAt       string `json:"created_at"`
}

type EventDetailResponse struct {
	Event          EventResponse     `json:"event"`
	AvailableSpots int               `json:"available_spots"`
	Bookings       []BookingResponse `json:"bookings"`
}

func EventToResponse(event *entity.Event) EventResponse {
	return EventResponse{
		ID:              event.ID.String(),
		Title:           event.Title,
		Description:     event.Description,
		EventDate:       event.EventDate.Format(time.RFC3339),
		TotalSpots:      event.TotalSpots,
		RequiresPayment: event.RequiresPayment,
		BookingTTL:      event.BookingTTL.String(),
		CreatedAt:       event.CreatedAt.Format(time.RFC3339),
	}
}

func EventToDetailResponse(event *entity.Event, availableSpots int, bookings []*entity.Booking) EventDetailResponse {
	bookingResponses := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, BookingToResponse(booking))
	}

	return EventDetailResponse{
		Event:          EventToResponse(event),
		AvailableSpots: availableSpots,
		Bookings:       bookingResponses,
	}
}
