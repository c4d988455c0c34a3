package request

type BookEventRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

type ConfirmBookingRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}
