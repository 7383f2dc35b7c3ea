package domain

import (
	"math"
	"time"
)

type Property struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"owner_id"`
	Title         string    `json:"title"`
	Type          string    `json:"type"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	PricePerNight float64   `json:"price_per_night"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	MaxGuests     int       `json:"max_guests"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	CreatedAt     time.Time `json:"created_at"`
}

// Quote prices a stay as nights times the nightly rate, rounded to cents.
func (p *Property) Quote(r DateRange) float64 {
	return math.Round(float64(r.Nights())*p.PricePerNight*100) / 100
}

// Fits reports whether the property takes the given number of guests. Zero capacity means unlimited.
func (p *Property) Fits(guests int) bool {
	return p.MaxGuests == 0 || guests <= p.MaxGuests
}

type PropertyDetails struct {
	Property Property  `json:"property"`
	Bookings []Booking `json:"bookings"`
}

type PropertyFilter struct {
	Location string
	MinPrice float64
	MaxPrice float64
	Guests   int
	Stay     *DateRange
	Page     int
	Limit    int
}

const (
	DefaultPageLimit = 12
	MaxPageLimit     = 50
)

// Normalize clamps paging to sane bounds.
func (f *PropertyFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
}

func (f *PropertyFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type CreatePropertyInput struct {
	OwnerID       int64   `validate:"required,gt=0"`
	Title         string  `validate:"required,max=200"`
	Type          string  `validate:"max=50"`
	Location      string  `validate:"required"`
	Description   string
	PricePerNight float64 `validate:"gt=0"`
	Bedrooms      int     `validate:"min=0"`
	Bathrooms     int     `validate:"min=0"`
	MaxGuests     int     `validate:"min=0"`
	Amenities     []string
	Images        []string
}
