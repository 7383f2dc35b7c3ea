package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/rishiboppana/stayhub/internal/metrics"
	"github.com/rishiboppana/stayhub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentChecks bounds FilterAvailable fan-out.
const maxConcurrentChecks = 8

type BookingService struct {
	bookingRepo  ports.BookingRepo
	propertyRepo ports.PropertyRepo
	publisher    ports.BookingPublisher
	validate     *validator.Validate
	logger       logger.Logger
	now          func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	propertyRepo ports.PropertyRepo,
	publisher ports.BookingPublisher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		publisher:    publisher,
		validate:     validator.New(),
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CheckConflict reports whether any booking of the property with a status in statuses overlaps stay.
// An empty statuses list means the blocking statuses.
func (s *BookingService) CheckConflict(
	ctx context.Context,
	propertyID int64,
	stay domain.DateRange,
	statuses []domain.BookingStatus,
) (bool, error) {
	if !stay.Start.Before(stay.End) {
		return false, domain.ErrInvalidInterval
	}
	if len(statuses) == 0 {
		statuses = domain.BlockingStatuses
	}

	existing, err := s.bookingRepo.ListByProperty(ctx, propertyID, statuses)
	if err != nil {
		return false, fmt.Errorf("list bookings: %w", err)
	}

	return domain.FindConflict(existing, stay, statuses) != nil, nil
}

func (s *BookingService) CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := s.validate.Struct(input); err != nil {
		metrics.RecordBookingAttempt("invalid")
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	stay, err := domain.NewDateRange(input.CheckIn, input.CheckOut)
	if err != nil {
		metrics.RecordBookingAttempt("invalid")
		return nil, err
	}

	property, err := s.propertyRepo.GetByID(ctx, input.PropertyID)
	if err != nil {
		metrics.RecordBookingAttempt("error")
		return nil, fmt.Errorf("get property: %w", err)
	}
	if !property.Fits(input.Guests) {
		metrics.RecordBookingAttempt("invalid")
		return nil, fmt.Errorf("%w: property takes at most %d guests", domain.ErrValidation, property.MaxGuests)
	}

	// быстрый отказ до транзакции; окончательная проверка в репозитории под блокировкой
	conflict, err := s.CheckConflict(ctx, input.PropertyID, stay, domain.BlockingStatuses)
	if err != nil {
		metrics.RecordBookingAttempt("error")
		return nil, err
	}
	if conflict {
		metrics.RecordBookingAttempt("conflict")
		return nil, domain.ErrDatesUnavailable
	}

	booking := &domain.Booking{
		PropertyID: input.PropertyID,
		TravelerID: input.TravelerID,
		CheckIn:    stay.Start,
		CheckOut:   stay.End,
		Guests:     input.Guests,
		TotalPrice: property.Quote(stay),
		Status:     domain.BookingStatusPending,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrDatesUnavailable) {
			metrics.RecordBookingAttempt("conflict")
			return nil, err
		}
		metrics.RecordBookingAttempt("error")
		return nil, fmt.Errorf("create booking: %w", err)
	}
	booking.OwnerID = property.OwnerID
	metrics.RecordBookingAttempt("created")

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("property_id", booking.PropertyID),
		logger.Int64("traveler_id", booking.TravelerID),
		logger.String("stay", stay.String()),
	)

	s.publisher.Publish(ctx, domain.NewBookingEvent(domain.BookingEventCreated, booking, ""))

	return booking, nil
}

// SetStatus applies a status change requested by input.Actor. Accepting an already accepted booking
// returns it unchanged.
func (s *BookingService) SetStatus(ctx context.Context, input domain.SetStatusInput) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = domain.AuthorizeTransition(input.Actor, booking, input.Status); err != nil {
		metrics.RecordTransition(string(input.Status), "forbidden")
		return nil, err
	}

	noop, err := domain.Transition(booking.Status, input.Status)
	if err != nil {
		metrics.RecordTransition(string(input.Status), "invalid")
		return nil, err
	}
	if noop {
		return booking, nil
	}

	previous := booking.Status
	updated, err := s.bookingRepo.UpdateStatus(ctx, booking.ID, previous, input.Status)
	if err != nil {
		metrics.RecordTransition(string(input.Status), "rejected")
		if errors.Is(err, domain.ErrDatesUnavailable) || errors.Is(err, domain.ErrInvalidTransition) {
			return nil, err
		}
		return nil, fmt.Errorf("update status: %w", err)
	}
	metrics.RecordTransition(string(input.Status), "applied")

	s.logger.Info("booking status changed",
		logger.Int64("booking_id", updated.ID),
		logger.String("from", string(previous)),
		logger.String("to", string(updated.Status)),
		logger.Int64("actor_id", input.Actor.ID),
	)

	s.publisher.Publish(ctx, domain.NewBookingEvent(domain.BookingEventStatusChanged, updated, previous))

	return updated, nil
}

// ListForActor returns a traveler's own bookings or the bookings on an owner's properties.
func (s *BookingService) ListForActor(ctx context.Context, actor domain.Actor) ([]*domain.Booking, error) {
	switch actor.Role {
	case domain.RoleTraveler:
		return s.bookingRepo.ListByTraveler(ctx, actor.ID)
	case domain.RoleOwner:
		return s.bookingRepo.ListByOwner(ctx, actor.ID)
	default:
		return nil, domain.ErrForbidden
	}
}

// CancelStale cancels pending bookings whose check-in date has already passed.
func (s *BookingService) CancelStale(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelStale(ctx, domain.DateOf(s.now()))
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	if len(cancelled) > 0 {
		metrics.RecordStaleCancelled(len(cancelled))
		s.logger.Info("stale pending bookings cancelled",
			logger.Int("count", len(cancelled)),
		)
		for _, b := range cancelled {
			s.publisher.Publish(ctx, domain.NewBookingEvent(domain.BookingEventStatusChanged, b, domain.BookingStatusPending))
		}
	}

	return cancelled, nil
}

// FilterAvailable keeps the properties with no blocking booking overlapping stay, preserving order.
func (s *BookingService) FilterAvailable(
	ctx context.Context,
	properties []*domain.Property,
	stay domain.DateRange,
) ([]*domain.Property, error) {
	free := make([]bool, len(properties))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)
	for i, p := range properties {
		g.Go(func() error {
			conflict, err := s.CheckConflict(gctx, p.ID, stay, domain.BlockingStatuses)
			if err != nil {
				return fmt.Errorf("property %d: %w", p.ID, err)
			}
			free[i] = !conflict
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := make([]*domain.Property, 0, len(properties))
	for i, p := range properties {
		if free[i] {
			res = append(res, p)
		}
	}

	return res, nil
}
