package ports

import (
	"context"

	"github.com/rishiboppana/stayhub/internal/domain"
)

type PropertyRepo interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	Search(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error)
}

type AvailabilityChecker interface {
	FilterAvailable(ctx context.Context, properties []*domain.Property, stay domain.DateRange) ([]*domain.Property, error)
}
