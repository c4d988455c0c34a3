package usecase

import (
	"context"
	"testing"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEventFixture() (*MockEventRepository, *MockBookingRepository, *MockSweeper, EventService) {
	eventRepo := new(MockEventRepository)
	bookingRepo := new(MockBookingRepository)
	sweeper := new(MockSweeper)

	repo := &repository.Repository{
		Event:   eventRepo,
		Booking: bookingRepo,
	}

	svc := NewEventService(repo, sweeper, zap.NewNop())
	return eventRepo, bookingRepo, sweeper, svc
}

func validCreateRequest() *request.CreateEventRequest {
	return &request.CreateEventRequest{
		Title:      "Conference",
		EventDate:  time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		TotalSpots: 100,
		BookingTTL: 20,
	}
}

func TestEventService_Create(t *testing.T) {
	eventRepo, _, _, svc := newEventFixture()

	eventRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.Event) bool {
		return e.RequiresPayment && e.BookingTTL == 20*time.Minute && e.TotalSpots == 100
	})).Return(nil)

	event, err := svc.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "Conference", event.Title)
	assert.True(t, event.RequiresPayment)
	assert.Equal(t, "20m0s", event.BookingTTL)
	eventRepo.AssertExpectations(t)
}

func TestEventService_Create_FreeEventWithoutTTL(t *testing.T) {
	eventRepo, _, _, svc := newEventFixture()

	noPayment := false
	req := validCreateRequest()
	req.RequiresPayment = &noPayment
	req.BookingTTL = 0

	eventRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.Event) bool {
		return !e.RequiresPayment
	})).Return(nil)

	event, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, event.RequiresPayment)
}

func TestEventService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*request.CreateEventRequest)
	}{
		{"zero spots", func(r *request.CreateEventRequest) { r.TotalSpots = 0 }},
		{"negative spots", func(r *request.CreateEventRequest) { r.TotalSpots = -3 }},
		{"bad date format", func(r *request.CreateEventRequest) { r.EventDate = "tomorrow" }},
		{"past date", func(r *request.CreateEventRequest) {
			r.EventDate = time.Now().Add(-time.Hour).Format(time.RFC3339)
		}},
		{"payment without ttl", func(r *request.CreateEventRequest) { r.BookingTTL = 0 }},
		{"payment with negative ttl", func(r *request.CreateEventRequest) { r.BookingTTL = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, svc := newEventFixture()

			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrInvalidEvent)
		})
	}
}

func TestEventService_List(t *testing.T) {
	eventRepo, _, _, svc := newEventFixture()

	events := []*entity.Event{
		{Base: entity.Base{ID: uuid.New()}, Title: "First", BookingTTL: 10 * time.Minute},
		{Base: entity.Base{ID: uuid.New()}, Title: "Second", BookingTTL: 30 * time.Minute},
	}
	eventRepo.On("FindAll", mock.Anything).Return(events, nil)

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "First", resp[0].Title)
	assert.Equal(t, "Second", resp[1].Title)
}

func TestEventService_GetDetail(t *testing.T) {
	eventRepo, bookingRepo, sweeper, svc := newEventFixture()

	eventID := uuid.New()
	event := &entity.Event{
		Base:       entity.Base{ID: eventID},
		Title:      "Concert",
		TotalSpots: 10,
		BookingTTL: 20 * time.Minute,
	}
	active := []*entity.Booking{
		{Base: entity.Base{ID: uuid.New()}, EventID: eventID, UserID: uuid.New(), Status: entity.BookingStatusPending},
		{Base: entity.Base{ID: uuid.New()}, EventID: eventID, UserID: uuid.New(), Status: entity.BookingStatusConfirmed},
	}

	sweeper.On("CancelExpired", mock.Anything).Return(0, nil)
	eventRepo.On("FindByID", mock.Anything, eventID).Return(event, nil)
	bookingRepo.On("CountActiveByEventID", mock.Anything, eventID).Return(2, nil)
	bookingRepo.On("FindActiveByEventID", mock.Anything, eventID).Return(active, nil)

	detail, err := svc.GetDetail(context.Background(), eventID.String())

	require.NoError(t, err)
	assert.Equal(t, 8, detail.AvailableSpots)
	assert.Len(t, detail.Bookings, 2)
	sweeper.AssertCalled(t, "CancelExpired", mock.Anything)
}

func TestEventService_GetDetail_AvailableSpotsNeverNegative(t *testing.T) {
	eventRepo, bookingRepo, sweeper, svc := newEventFixture()

	eventID := uuid.New()
	event := &entity.Event{
		Base:       entity.Base{ID: eventID},
		TotalSpots: 1,
		BookingTTL: 20 * time.Minute,
	}

	sweeper.On("CancelExpired", mock.Anything).Return(0, nil)
	eventRepo.On("FindByID", mock.Anything, eventID).Return(event, nil)
	bookingRepo.On("CountActiveByEventID", mock.Anything, eventID).Return(2, nil)
	bookingRepo.On("FindActiveByEventID", mock.Anything, eventID).Return([]*entity.Booking{}, nil)

	detail, err := svc.GetDetail(context.Background(), eventID.String())

	require.NoError(t, err)
	assert.Equal(t, 0, detail.AvailableSpots)
}

func TestEventService_GetDetail_NotFound(t *testing.T) {
	eventRepo, _, sweeper, svc := newEventFixture()

	eventID := uuid.New()
	sweeper.On("CancelExpired", mock.Anything).Return(0, nil)
	eventRepo.On("FindByID", mock.Anything, eventID).Return(nil, entity.ErrEventNotFound)

	_, err := svc.GetDetail(context.Background(), eventID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrEventNotFound)
}

func TestEventService_GetDetail_MalformedID(t *testing.T) {
	_, _, _, svc := newEventFixture()

	// Malformed ids read as not-found, same as booking paths.
	_, err := svc.GetDetail(context.Background(), "not-a-uuid")

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrEventNotFound)
}
