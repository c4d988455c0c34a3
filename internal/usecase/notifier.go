package usecase

import (
	"context"

	"event-booking/internal/data/entity"
)

// Notifier delivers booking updates to users out of band. Implementations
// are fire-and-forget: a delivery failure never affects ledger state.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, user *entity.User, event *entity.Event)
	NotifyBookingConfirmed(ctx context.Context, user *entity.User, event *entity.Event)
	NotifyBookingCancelled(ctx context.Context, user *entity.User, event *entity.Event)
}
