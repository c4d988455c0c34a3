package wire

import (
	"event-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireEvent(r chi.Router, eventHandler *adaptor.EventHandler, bookingHandler *adaptor.BookingHandler) {
	// POST /api/events - Create a new event
	r.Post("/api/events", eventHandler.Create)

	// GET /api/events - List events
	r.Get("/api/events", eventHandler.List)

	// GET /api/events/{id} - Event details with availability
	r.Get("/api/events/{id}", eventHandler.GetByID)

	// POST /api/events/{id}/book - Reserve a spot
	r.Post("/api/events/{id}/book", bookingHandler.Book)

	// POST /api/events/{id}/confirm - Confirm a pending booking
	r.Post("/api/events/{id}/confirm", bookingHandler.Confirm)
}
