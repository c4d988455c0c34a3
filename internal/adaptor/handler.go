package adaptor

import (
	"errors"
	"net/http"

	"event-booking/internal/data/entity"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	User    *UserHandler
	Event   *EventHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:    NewUserHandler(service.User, log),
		Event:   NewEventHandler(service.Event, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// respondServiceError maps domain errors onto HTTP statuses. Anything not in
// the taxonomy is a storage or programming fault and reads as a 500, so
// callers can tell "your request was invalid" from "the system is down".
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrEventNotFound),
		errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrBookingNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrNoSpotsAvailable),
		errors.Is(err, entity.ErrAlreadyBooked),
		errors.Is(err, entity.ErrBookingNotPending),
		errors.Is(err, entity.ErrBookingExpired),
		errors.Is(err, entity.ErrConfirmNotRequired):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, entity.ErrUsernameTaken),
		errors.Is(err, entity.ErrInvalidEvent):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
