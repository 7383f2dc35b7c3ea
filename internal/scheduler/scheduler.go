package scheduler

import (
	"context"
	"time"

	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingCanceller interface {
	CancelStale(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically cancels pending bookings whose check-in date has passed.
type Scheduler struct {
	bookingService bookingCanceller
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("stale booking sweep started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stale booking sweep stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.bookingService.CancelStale(ctx)
	if err != nil {
		s.logger.Error("failed to cancel stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("stale booking cancelled",
			logger.Int64("booking_id", b.ID),
			logger.Int64("property_id", b.PropertyID),
			logger.String("check_in", b.CheckIn.Format(domain.DateLayout)),
		)
	}
}
