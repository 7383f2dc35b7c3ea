package service

import (
	"context"
	"testing"

	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/rishiboppana/stayhub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type propertyDeps struct {
	repo         *mocks.MockPropertyRepo
	bookings     *mocks.MockBookingRepo
	availability *mocks.MockAvailabilityChecker
	svc          *PropertyService
}

func newPropertyDeps(t *testing.T) propertyDeps {
	d := propertyDeps{
		repo:         mocks.NewMockPropertyRepo(t),
		bookings:     mocks.NewMockBookingRepo(t),
		availability: mocks.NewMockAvailabilityChecker(t),
	}
	d.svc = NewPropertyService(d.repo, d.bookings, d.availability)
	return d
}

func validPropertyInput() domain.CreatePropertyInput {
	return domain.CreatePropertyInput{
		Title:         "  Loft  ",
		Type:          "apartment",
		Location:      "Lisbon",
		PricePerNight: 120,
		MaxGuests:     2,
		Amenities:     []string{"wifi"},
	}
}

func TestPropertyService_Create_Success(t *testing.T) {
	d := newPropertyDeps(t)

	d.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Property) bool {
		return p.OwnerID == 20 && p.Title == "Loft"
	})).RunAndReturn(func(_ context.Context, p *domain.Property) error {
		p.ID = 3
		return nil
	})

	p, err := d.svc.Create(context.Background(), owner, validPropertyInput())

	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, []string{"wifi"}, p.Amenities)
}

func TestPropertyService_Create_TravelerForbidden(t *testing.T) {
	d := newPropertyDeps(t)

	_, err := d.svc.Create(context.Background(), traveler, validPropertyInput())

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPropertyService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreatePropertyInput)
	}{
		{"blank title", func(in *domain.CreatePropertyInput) { in.Title = "   " }},
		{"no location", func(in *domain.CreatePropertyInput) { in.Location = "" }},
		{"free stay", func(in *domain.CreatePropertyInput) { in.PricePerNight = 0 }},
		{"negative guests", func(in *domain.CreatePropertyInput) { in.MaxGuests = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newPropertyDeps(t)
			in := validPropertyInput()
			tt.mutate(&in)

			_, err := d.svc.Create(context.Background(), owner, in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPropertyService_GetDetails(t *testing.T) {
	d := newPropertyDeps(t)

	d.repo.EXPECT().GetByID(mock.Anything, int64(5)).Return(loft, nil)
	d.bookings.EXPECT().ListByProperty(mock.Anything, int64(5), domain.BlockingStatuses).
		Return([]*domain.Booking{existing(1, "2024-06-01", "2024-06-05", domain.BookingStatusAccepted)}, nil)

	details, err := d.svc.GetDetails(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Loft", details.Property.Title)
	require.Len(t, details.Bookings, 1)
	assert.Equal(t, int64(1), details.Bookings[0].ID)
}

func TestPropertyService_GetDetails_NotFound(t *testing.T) {
	d := newPropertyDeps(t)
	d.repo.EXPECT().GetByID(mock.Anything, int64(5)).Return(nil, domain.ErrPropertyNotFound)

	_, err := d.svc.GetDetails(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPropertyService_Search_WithoutDates(t *testing.T) {
	d := newPropertyDeps(t)
	props := []*domain.Property{loft}

	d.repo.EXPECT().Search(mock.Anything, mock.MatchedBy(func(f domain.PropertyFilter) bool {
		return f.Page == 1 && f.Limit == domain.DefaultPageLimit && f.Location == "Lis"
	})).Return(props, nil)

	got, err := d.svc.Search(context.Background(), domain.PropertyFilter{Location: "Lis"})

	require.NoError(t, err)
	assert.Equal(t, props, got)
}

func TestPropertyService_Search_WithDates(t *testing.T) {
	d := newPropertyDeps(t)
	want := stay("2024-06-10", "2024-06-12")
	props := []*domain.Property{{ID: 1}, {ID: 2}}

	d.repo.EXPECT().Search(mock.Anything, mock.Anything).Return(props, nil)
	d.availability.EXPECT().FilterAvailable(mock.Anything, props, want).Return(props[1:], nil)

	got, err := d.svc.Search(context.Background(), domain.PropertyFilter{Stay: &want})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestPropertyService_Search_PriceBounds(t *testing.T) {
	d := newPropertyDeps(t)

	_, err := d.svc.Search(context.Background(), domain.PropertyFilter{MinPrice: 200, MaxPrice: 100})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
