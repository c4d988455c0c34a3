package usecase

import (
	"event-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	User    UserService
	Event   EventService
	Booking BookingService
}

func NewService(repo *repository.Repository, notifier Notifier, log *zap.Logger) *Service {
	booking := NewBookingService(repo, notifier, log)

	return &Service{
		User:    NewUserService(repo.User, log),
		Event:   NewEventService(repo, booking, log),
		Booking: booking,
	}
}
