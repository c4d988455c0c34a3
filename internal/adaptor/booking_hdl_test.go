package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"event-booking/internal/data/entity"
	"event-booking/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newBookingRouter(service *MockBookingService) *chi.Mux {
	handler := NewBookingHandler(service, zap.NewNop())

	router := chi.NewRouter()
	router.Post("/api/events/{id}/book", handler.Book)
	router.Post("/api/events/{id}/confirm", handler.Confirm)
	router.Get("/api/users/{id}/bookings", handler.ListUserBookings)
	return router
}

func TestBookingHandler_Book(t *testing.T) {
	service := new(MockBookingService)
	router := newBookingRouter(service)

	userID := uuid.NewString()
	service.On("Book", mock.Anything, "e-1", userID).
		Return(&response.BookingResponse{ID: "b-1", Status: "pending"}, nil)

	payload := fmt.Sprintf(`{"user_id":%q}`, userID)
	req := httptest.NewRequest(http.MethodPost, "/api/events/e-1/book", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeResponse(t, rec)
	assert.True(t, body.Status)
	service.AssertExpectations(t)
}

func TestBookingHandler_Book_MissingUserID(t *testing.T) {
	service := new(MockBookingService)
	router := newBookingRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/events/e-1/book", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "Book")
}

func TestBookingHandler_Book_Conflicts(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"no spots", entity.ErrNoSpotsAvailable},
		{"already booked", entity.ErrAlreadyBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockBookingService)
			router := newBookingRouter(service)

			userID := uuid.NewString()
			service.On("Book", mock.Anything, "e-1", userID).Return(nil, tt.err)

			payload := fmt.Sprintf(`{"user_id":%q}`, userID)
			req := httptest.NewRequest(http.MethodPost, "/api/events/e-1/book", strings.NewReader(payload))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusConflict, rec.Code)
			body := decodeResponse(t, rec)
			assert.False(t, body.Status)
		})
	}
}

func TestBookingHandler_Book_EventNotFound(t *testing.T) {
	service := new(MockBookingService)
	router := newBookingRouter(service)

	userID := uuid.NewString()
	service.On("Book", mock.Anything, "e-404", userID).Return(nil, entity.ErrEventNotFound)

	payload := fmt.Sprintf(`{"user_id":%q}`, userID)
	req := httptest.NewRequest(http.MethodPost, "/api/events/e-404/book", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingHandler_Confirm(t *testing.T) {
	service := new(MockBookingService)
	router := newBookingRouter(service)

	userID := uuid.NewString()
	service.On("Confirm", mock.Anything, "e-1", userID).
		Return(&response.BookingResponse{ID: "b-1", Status: "confirmed"}, nil)

	payload := fmt.Sprintf(`{"user_id":%q}`, userID)
	req := httptest.NewRequest(http.MethodPost, "/api/events/e-1/confirm", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestBookingHandler_Confirm_Conflicts(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not pending", entity.ErrBookingNotPending},
		{"expired", entity.ErrBookingExpired},
		{"confirmation not required", entity.ErrConfirmNotRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockBookingService)
			router := newBookingRouter(service)

			userID := uuid.NewString()
			service.On("Confirm", mock.Anything, "e-1", userID).Return(nil, tt.err)

			payload := fmt.Sprintf(`{"user_id":%q}`, userID)
			req := httptest.NewRequest(http.MethodPost, "/api/events/e-1/confirm", strings.NewReader(payload))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusConflict, rec.Code)
		})
	}
}

func TestBookingHandler_ListUserBookings(t *testing.T) {
	service := new(MockBookingService)
	router := newBookingRouter(service)

	userID := uuid.NewString()
	service.On("ListByUser", mock.Anything, userID).Return([]response.BookingResponse{
		{ID: "b-1", Status: "pending"},
		{ID: "b-2", Status: "cancelled"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.True(t, body.Status)
	service.AssertExpectations(t)
}
