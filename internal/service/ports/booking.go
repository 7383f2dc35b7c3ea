package ports

import (
	"context"
	"time"

	"github.com/rishiboppana/stayhub/internal/domain"
)

type BookingRepo interface {
	// Create locks the property, re-checks the stay against blocking bookings and inserts b
	// in one transaction. It fills b.ID, b.CreatedAt and b.UpdatedAt.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByProperty(ctx context.Context, propertyID int64, statuses []domain.BookingStatus) ([]*domain.Booking, error)
	ListByTraveler(ctx context.Context, travelerID int64) ([]*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Booking, error)
	// UpdateStatus moves the booking from -> to under the property lock. Accepting re-checks
	// the stay against other accepted bookings.
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error)
	CancelStale(ctx context.Context, before time.Time) ([]*domain.Booking, error)
}
