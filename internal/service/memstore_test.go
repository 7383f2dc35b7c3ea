package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/rishiboppana/stayhub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memStore mirrors the repository contract in memory: Create and UpdateStatus hold the
// property lock across the re-check and the write.
type memStore struct {
	mu         sync.Mutex
	locks      map[int64]*sync.Mutex
	properties map[int64]*domain.Property
	bookings   map[int64]*domain.Booking
	seq        int64
}

func newMemStore(props ...*domain.Property) *memStore {
	s := &memStore{
		locks:      map[int64]*sync.Mutex{},
		properties: map[int64]*domain.Property{},
		bookings:   map[int64]*domain.Booking{},
	}
	for _, p := range props {
		s.properties[p.ID] = p
		s.locks[p.ID] = &sync.Mutex{}
	}
	return s
}

func (s *memStore) lock(propertyID int64) (func(), bool) {
	s.mu.Lock()
	l, ok := s.locks[propertyID]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	l.Lock()
	return l.Unlock, true
}

func (s *memStore) snapshot(propertyID int64, statuses []domain.BookingStatus) []*domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.PropertyID != propertyID {
			continue
		}
		for _, st := range statuses {
			if b.Status == st {
				cp := *b
				res = append(res, &cp)
				break
			}
		}
	}
	return res
}

func (s *memStore) Create(_ context.Context, b *domain.Booking) error {
	unlock, ok := s.lock(b.PropertyID)
	if !ok {
		return domain.ErrPropertyNotFound
	}
	defer unlock()

	// widen the race window between the read and the write
	time.Sleep(time.Millisecond)
	if domain.FindConflict(s.snapshot(b.PropertyID, domain.BlockingStatuses), b.Stay(), nil) != nil {
		return domain.ErrDatesUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	b.ID = s.seq
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	s.bookings[b.ID] = &cp
	return nil
}

func (s *memStore) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *b
	cp.OwnerID = s.properties[b.PropertyID].OwnerID
	return &cp, nil
}

func (s *memStore) ListByProperty(_ context.Context, propertyID int64, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	return s.snapshot(propertyID, statuses), nil
}

func (s *memStore) ListByTraveler(context.Context, int64) ([]*domain.Booking, error) { return nil, nil }
func (s *memStore) ListByOwner(context.Context, int64) ([]*domain.Booking, error)    { return nil, nil }
func (s *memStore) CancelStale(context.Context, time.Time) ([]*domain.Booking, error) {
	return nil, nil
}

func (s *memStore) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	unlock, _ := s.lock(current.PropertyID)
	defer unlock()

	s.mu.Lock()
	b := s.bookings[id]
	if b.Status != from {
		s.mu.Unlock()
		return nil, &domain.TransitionError{From: b.Status, To: to}
	}
	s.mu.Unlock()

	if to == domain.BookingStatusAccepted {
		for _, o := range s.snapshot(current.PropertyID, []domain.BookingStatus{domain.BookingStatusAccepted}) {
			if o.ID != id && o.Stay().Overlaps(current.Stay()) {
				return nil, domain.ErrDatesUnavailable
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b.Status = to
	cp := *b
	cp.OwnerID = current.OwnerID
	return &cp, nil
}

type memProperties struct{ store *memStore }

func (p memProperties) Create(context.Context, *domain.Property) error { return nil }
func (p memProperties) GetByID(_ context.Context, id int64) (*domain.Property, error) {
	prop, ok := p.store.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return prop, nil
}
func (p memProperties) Search(context.Context, domain.PropertyFilter) ([]*domain.Property, error) {
	return nil, nil
}

func newMemService(t *testing.T, store *memStore) *BookingService {
	publisher := mocks.NewMockBookingPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return().Maybe()
	return NewBookingService(store, memProperties{store}, publisher, newTestLogger(t))
}

func TestBookingService_ConcurrentOverlappingCreates(t *testing.T) {
	store := newMemStore(&domain.Property{ID: 5, OwnerID: 20, PricePerNight: 100})
	svc := newMemService(t, store)

	const attempts = 16
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
		start     = make(chan struct{})
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			in := domain.CreateBookingInput{
				PropertyID: 5,
				TravelerID: int64(100 + i),
				CheckIn:    day("2024-08-01").AddDate(0, 0, i%3),
				CheckOut:   day("2024-08-05"),
				Guests:     1,
			}
			_, err := svc.CreateBooking(context.Background(), in)
			switch {
			case err == nil:
				succeeded.Add(1)
			default:
				assert.ErrorIs(t, err, domain.ErrDatesUnavailable)
				rejected.Add(1)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(attempts-1), rejected.Load())
	assert.Len(t, store.snapshot(5, domain.BlockingStatuses), 1)
}

func TestBookingService_ConcurrentAdjacentCreates(t *testing.T) {
	store := newMemStore(&domain.Property{ID: 5, OwnerID: 20, PricePerNight: 100})
	svc := newMemService(t, store)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(context.Background(), domain.CreateBookingInput{
				PropertyID: 5,
				TravelerID: int64(i + 1),
				CheckIn:    day("2024-08-01").AddDate(0, 0, 2*i),
				CheckOut:   day("2024-08-03").AddDate(0, 0, 2*i),
				Guests:     1,
			})
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, store.snapshot(5, domain.BlockingStatuses), 4)
}

func TestBookingService_AcceptKeepsAcceptedDisjoint(t *testing.T) {
	store := newMemStore(&domain.Property{ID: 5, OwnerID: 20, PricePerNight: 100})
	svc := newMemService(t, store)
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
		PropertyID: 5, TravelerID: 1, CheckIn: day("2024-08-01"), CheckOut: day("2024-08-05"), Guests: 1,
	})
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, domain.SetStatusInput{BookingID: first.ID, Actor: owner, Status: domain.BookingStatusCancelled})
	require.NoError(t, err)

	second, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
		PropertyID: 5, TravelerID: 2, CheckIn: day("2024-08-02"), CheckOut: day("2024-08-04"), Guests: 1,
	})
	require.NoError(t, err, "cancelled bookings free their dates")

	accepted, err := svc.SetStatus(ctx, domain.SetStatusInput{BookingID: second.ID, Actor: owner, Status: domain.BookingStatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, accepted.Status)

	_, err = svc.SetStatus(ctx, domain.SetStatusInput{BookingID: first.ID, Actor: owner, Status: domain.BookingStatusAccepted})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	again, err := svc.SetStatus(ctx, domain.SetStatusInput{BookingID: second.ID, Actor: owner, Status: domain.BookingStatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, again.Status)
}

func TestBookingService_AcceptedStayBlocksOverlapButNotAdjacent(t *testing.T) {
	store := newMemStore(&domain.Property{ID: 5, OwnerID: 20, PricePerNight: 100})
	svc := newMemService(t, store)
	ctx := context.Background()
	t1 := domain.Actor{ID: 1, Role: domain.RoleTraveler}
	t2 := domain.Actor{ID: 2, Role: domain.RoleTraveler}

	first, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
		PropertyID: 5, TravelerID: t1.ID, CheckIn: day("2024-06-01"), CheckOut: day("2024-06-05"), Guests: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 400.0, first.TotalPrice)

	accepted, err := svc.SetStatus(ctx, domain.SetStatusInput{BookingID: first.ID, Actor: owner, Status: domain.BookingStatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, accepted.Status)

	_, err = svc.CreateBooking(ctx, domain.CreateBookingInput{
		PropertyID: 5, TravelerID: t2.ID, CheckIn: day("2024-06-03"), CheckOut: day("2024-06-07"), Guests: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDatesUnavailable)

	conflict, err := svc.CheckConflict(ctx, 5, stay("2024-06-05", "2024-06-08"), nil)
	require.NoError(t, err)
	assert.False(t, conflict)

	adjacent, err := svc.CreateBooking(ctx, domain.CreateBookingInput{
		PropertyID: 5, TravelerID: t2.ID, CheckIn: day("2024-06-05"), CheckOut: day("2024-06-08"), Guests: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, adjacent.Status)
	assert.Len(t, store.snapshot(5, domain.BlockingStatuses), 2)
}
