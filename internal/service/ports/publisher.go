package ports

import (
	"context"

	"github.com/rishiboppana/stayhub/internal/domain"
)

type BookingPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent)
}
