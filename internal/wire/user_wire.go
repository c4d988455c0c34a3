package wire

import (
	"event-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, bookingHandler *adaptor.BookingHandler) {
	// POST /api/users - Register a new user
	r.Post("/api/users", userHandler.Register)

	// GET /api/users - List users
	r.Get("/api/users", userHandler.List)

	// GET /api/users/{id}/bookings - Booking history for one user
	r.Get("/api/users/{id}/bookings", bookingHandler.ListUserBookings)
}
