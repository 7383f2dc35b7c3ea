package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/rishiboppana/stayhub/internal/service/ports"
)

type PropertyService struct {
	repo         ports.PropertyRepo
	bookingRepo  ports.BookingRepo
	availability ports.AvailabilityChecker
	validate     *validator.Validate
}

func NewPropertyService(
	repo ports.PropertyRepo,
	bookingRepo ports.BookingRepo,
	availability ports.AvailabilityChecker,
) *PropertyService {
	return &PropertyService{
		repo:         repo,
		bookingRepo:  bookingRepo,
		availability: availability,
		validate:     validator.New(),
	}
}

func (s *PropertyService) Create(ctx context.Context, actor domain.Actor, input domain.CreatePropertyInput) (*domain.Property, error) {
	if actor.Role != domain.RoleOwner {
		return nil, fmt.Errorf("%w: only owners can list properties", domain.ErrForbidden)
	}
	input.OwnerID = actor.ID
	input.Title = strings.TrimSpace(input.Title)
	input.Location = strings.TrimSpace(input.Location)

	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	property := &domain.Property{
		OwnerID:       input.OwnerID,
		Title:         input.Title,
		Type:          input.Type,
		Location:      input.Location,
		Description:   input.Description,
		PricePerNight: input.PricePerNight,
		Bedrooms:      input.Bedrooms,
		Bathrooms:     input.Bathrooms,
		MaxGuests:     input.MaxGuests,
		Amenities:     input.Amenities,
		Images:        input.Images,
	}

	if err := s.repo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	return property, nil
}

// GetDetails returns the property with the bookings that currently block its calendar.
func (s *PropertyService) GetDetails(ctx context.Context, id int64) (*domain.PropertyDetails, error) {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByProperty(ctx, id, domain.BlockingStatuses)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	details := &domain.PropertyDetails{
		Property: *property,
		Bookings: make([]domain.Booking, len(bookings)),
	}
	for i, b := range bookings {
		details.Bookings[i] = *b
	}

	return details, nil
}

func (s *PropertyService) Search(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	if filter.MinPrice > 0 && filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice {
		return nil, fmt.Errorf("%w: min_price exceeds max_price", domain.ErrValidation)
	}
	filter.Normalize()

	properties, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search properties: %w", err)
	}

	if filter.Stay == nil || len(properties) == 0 {
		return properties, nil
	}

	return s.availability.FilterAvailable(ctx, properties, *filter.Stay)
}
