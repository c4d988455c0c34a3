package usecase

import (
	"context"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Book(ctx context.Context, eventID, userID string) (*response.BookingResponse, error)
	Confirm(ctx context.Context, eventID, userID string) (*response.BookingResponse, error)
	ListByUser(ctx context.Context, userID string) ([]response.BookingResponse, error)

	// CancelExpired runs one expiry sweep pass and returns how many
	// bookings it cancelled. Idempotent.
	CancelExpired(ctx context.Context) (int, error)
}

type bookingService struct {
	repo     *repository.Repository
	notifier Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, notifier Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Book(ctx context.Context, eventID, userID string) (*response.BookingResponse, error) {
	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event id %s", entity.ErrEventNotFound, eventID)
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id %s", entity.ErrUserNotFound, userID)
	}

	// Sweep first so a spot freed by a just-passed deadline is bookable
	// now instead of after the next ticker pass.
	if _, err := s.CancelExpired(ctx); err != nil {
		s.log.Warn("Expiry sweep before booking failed", zap.Error(err))
	}

	event, err := s.repo.Event.FindByID(ctx, eventUUID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := time.Now().UTC()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		EventID: eventUUID,
		UserID:  userUUID,
		Status:  entity.BookingStatusPending,
	}
	// Free events skip the pending state entirely.
	if !event.RequiresPayment {
		booking.Status = entity.BookingStatusConfirmed
		booking.ResolvedAt = &now
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("event_id", eventID),
		zap.String("user_id", userID),
		zap.String("status", string(booking.Status)),
	)

	if booking.Status == entity.BookingStatusPending {
		go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, event)
	} else {
		go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), user, event)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) Confirm(ctx context.Context, eventID, userID string) (*response.BookingResponse, error) {
	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event id %s", entity.ErrEventNotFound, eventID)
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id %s", entity.ErrUserNotFound, userID)
	}

	event, err := s.repo.Event.FindByID(ctx, eventUUID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if !event.RequiresPayment {
		return nil, entity.ErrConfirmNotRequired
	}

	booking, err := s.repo.Booking.ConfirmPending(ctx, eventUUID, userUUID)
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("event_id", eventID),
		zap.String("user_id", userID),
	)

	if user, err := s.repo.User.FindByID(ctx, userUUID); err == nil {
		go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), user, event)
	} else {
		s.log.Error("Failed to load user for confirmation notification",
			zap.Error(err),
			zap.String("user_id", userID),
		)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id %s", entity.ErrUserNotFound, userID)
	}

	// Sweep first so returned statuses reflect passed deadlines.
	if _, err := s.CancelExpired(ctx); err != nil {
		s.log.Warn("Expiry sweep before listing failed", zap.Error(err))
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	responses := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, response.BookingToResponse(booking))
	}

	return responses, nil
}

func (s *bookingService) CancelExpired(ctx context.Context) (int, error) {
	cancelled, err := s.repo.Booking.CancelExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("cancel expired bookings: %w", err)
	}

	if len(cancelled) > 0 {
		s.log.Info("Expired bookings cancelled", zap.Int("count", len(cancelled)))
		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return len(cancelled), nil
}

func (s *bookingService) notifyCancelled(ctx context.Context, bookings []*entity.Booking) {
	for _, booking := range bookings {
		user, err := s.repo.User.FindByID(ctx, booking.UserID)
		if err != nil {
			s.log.Error("Failed to load user for cancellation notification",
				zap.Error(err),
				zap.String("user_id", booking.UserID.String()),
			)
			continue
		}

		event, err := s.repo.Event.FindByID(ctx, booking.EventID)
		if err != nil {
			s.log.Error("Failed to load event for cancellation notification",
				zap.Error(err),
				zap.String("event_id", booking.EventID.String()),
			)
			continue
		}

		s.notifier.NotifyBookingCancelled(ctx, user, event)
	}
}
