package request

type CreateEventRequest struct {
	Title           string `json:"title" validate:"required,min=1,max=200"`
	Description     string `json:"description"`
	EventDate       string `json:"event_date" validate:"required"`
	TotalSpots      int    `json:"total_spots" validate:"required,gt=0"`
	BookingTTL      int    `json:"booking_ttl_minutes"`
	RequiresPayment *bool  `json:"requires_payment,omitempty"`
}
