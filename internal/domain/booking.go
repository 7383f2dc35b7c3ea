package domain

import (
	"fmt"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusAccepted  BookingStatus = "Accepted"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// BlockingStatuses occupy their date range for conflict detection.
var BlockingStatuses = []BookingStatus{BookingStatusPending, BookingStatusAccepted}

var allStatuses = []BookingStatus{BookingStatusPending, BookingStatusAccepted, BookingStatusCancelled}

// ParseBookingStatus maps any casing of a known status ("PENDING", "pending") to its canonical value.
func ParseBookingStatus(s string) (BookingStatus, error) {
	s = strings.TrimSpace(s)
	for _, st := range allStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
}

func (s BookingStatus) Blocking() bool {
	return s == BookingStatusPending || s == BookingStatusAccepted
}

func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCancelled
}

type Booking struct {
	ID         int64         `json:"id"`
	PropertyID int64         `json:"property_id"`
	TravelerID int64         `json:"traveler_id"`
	CheckIn    time.Time     `json:"check_in"`
	CheckOut   time.Time     `json:"check_out"`
	Guests     int           `json:"guests"`
	TotalPrice float64       `json:"total_price"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	// Filled from the joined property row; not stored on bookings.
	OwnerID          int64  `json:"owner_id,omitempty"`
	PropertyTitle    string `json:"property_title,omitempty"`
	PropertyLocation string `json:"property_location,omitempty"`
}

func (b *Booking) Stay() DateRange {
	return DateRange{Start: b.CheckIn, End: b.CheckOut}
}

// FindConflict returns the first booking whose status is in statuses and whose stay overlaps r.
// An empty statuses list means BlockingStatuses.
func FindConflict(bookings []*Booking, r DateRange, statuses []BookingStatus) *Booking {
	if len(statuses) == 0 {
		statuses = BlockingStatuses
	}
	for _, b := range bookings {
		if !hasStatus(statuses, b.Status) {
			continue
		}
		if b.Stay().Overlaps(r) {
			return b
		}
	}
	return nil
}

func hasStatus(statuses []BookingStatus, s BookingStatus) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

type CreateBookingInput struct {
	PropertyID int64     `validate:"required,gt=0"`
	TravelerID int64     `validate:"required,gt=0"`
	CheckIn    time.Time `validate:"required"`
	CheckOut   time.Time `validate:"required"`
	Guests     int       `validate:"min=1"`
}

type SetStatusInput struct {
	BookingID int64 `validate:"required,gt=0"`
	Actor     Actor
	Status    BookingStatus `validate:"required"`
}
