package usecase

import (
	"context"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	Create(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error)
	List(ctx context.Context) ([]response.EventResponse, error)
	GetDetail(ctx context.Context, eventID string) (*response.EventDetailResponse, error)
}

// expirySweeper applies the expiry sweep before reads that expose booking
// statuses or spot counts.
type expirySweeper interface {
	CancelExpired(ctx context.Context) (int, error)
}

type eventService struct {
	repo    *repository.Repository
	sweeper expirySweeper
	log     *zap.Logger
}

func NewEventService(repo *repository.Repository, sweeper expirySweeper, log *zap.Logger) EventService {
	return &eventService{
		repo:    repo,
		sweeper: sweeper,
		log:     log.With(zap.String("service", "event")),
	}
}

func (s *eventService) Create(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error) {
	if req.TotalSpots <= 0 {
		return nil, fmt.Errorf("%w: total_spots must be positive", entity.ErrInvalidEvent)
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("%w: event_date must be RFC3339", entity.ErrInvalidEvent)
	}
	if eventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event_date must be in the future", entity.ErrInvalidEvent)
	}

	// Payment is required unless the request opts out.
	requiresPayment := true
	if req.RequiresPayment != nil {
		requiresPayment = *req.RequiresPayment
	}
	if requiresPayment && req.BookingTTL <= 0 {
		return nil, fmt.Errorf("%w: booking_ttl_minutes must be positive when payment is required", entity.ErrInvalidEvent)
	}

	now := time.Now().UTC()
	event := &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:           req.Title,
		Description:     req.Description,
		EventDate:       eventDate,
		TotalSpots:      req.TotalSpots,
		RequiresPayment: requiresPayment,
		BookingTTL:      time.Duration(req.BookingTTL) * time.Minute,
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("title", event.Title),
		zap.Int("total_spots", event.TotalSpots),
		zap.Bool("requires_payment", event.RequiresPayment),
	)

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) List(ctx context.Context) ([]response.EventResponse, error) {
	events, err := s.repo.Event.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	responses := make([]response.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, response.EventToResponse(event))
	}

	return responses, nil
}

func (s *eventService) GetDetail(ctx context.Context, eventID string) (*response.EventDetailResponse, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event id %s", entity.ErrEventNotFound, eventID)
	}

	// Expired pending bookings must read as cancelled from the moment
	// their deadline passes, not from the next ticker run.
	if _, err := s.sweeper.CancelExpired(ctx); err != nil {
		s.log.Warn("Expiry sweep before event detail failed", zap.Error(err))
	}

	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", eventID, err)
	}

	activeCount, err := s.repo.Booking.CountActiveByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count active bookings: %w", err)
	}

	availableSpots := event.TotalSpots - activeCount
	if availableSpots < 0 {
		availableSpots = 0
	}

	bookings, err := s.repo.Booking.FindActiveByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list event bookings: %w", err)
	}

	resp := response.EventToDetailResponse(event, availableSpots, bookings)
	return &resp, nil
}
