package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type bookingExpirer interface {
	CancelExpired(ctx context.Context) (int, error)
}

// Sweeper periodically cancels pending bookings whose confirmation
// deadline has passed.
type Sweeper struct {
	bookings bookingExpirer
	interval time.Duration
	log      *zap.Logger
}

func NewSweeper(bookings bookingExpirer, interval time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{
		bookings: bookings,
		interval: interval,
		log:      log.With(zap.String("scheduler", "expiry_sweep")),
	}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("Expiry sweeper started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Expiry sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	cancelled, err := s.bookings.CancelExpired(ctx)
	if err != nil {
		s.log.Error("Failed to cancel expired bookings", zap.Error(err))
		return
	}

	if cancelled > 0 {
		s.log.Info("Sweep pass done", zap.Int("cancelled", cancelled))
	}
}
