package dto

import (
	"time"

	"github.com/rishiboppana/stayhub/internal/domain"
)

type PropertyResponse struct {
	ID            int64    `json:"id"`
	OwnerID       int64    `json:"owner_id"`
	Title         string   `json:"title"`
	Type          string   `json:"type"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"price_per_night"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	MaxGuests     int      `json:"max_guests"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	CreatedAt     string   `json:"created_at"`
}

type PropertyDetailsResponse struct {
	Property PropertyResponse  `json:"property"`
	Bookings []BookingResponse `json:"bookings"`
}

type PropertyListResponse struct {
	Items []PropertyResponse `json:"items"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

type BookingResponse struct {
	ID               int64   `json:"id"`
	PropertyID       int64   `json:"property_id"`
	TravelerID       int64   `json:"traveler_id"`
	CheckIn          string  `json:"check_in"`
	CheckOut         string  `json:"check_out"`
	Nights           int     `json:"nights"`
	Guests           int     `json:"guests"`
	TotalPrice       float64 `json:"total_price"`
	Status           string  `json:"status"`
	PropertyTitle    string  `json:"property_title,omitempty"`
	PropertyLocation string  `json:"property_location,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type AvailabilityResponse struct {
	PropertyID int64  `json:"property_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Available  bool   `json:"available"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
}

func ToPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:            p.ID,
		OwnerID:       p.OwnerID,
		Title:         p.Title,
		Type:          p.Type,
		Location:      p.Location,
		Description:   p.Description,
		PricePerNight: p.PricePerNight,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		MaxGuests:     p.MaxGuests,
		Amenities:     orEmpty(p.Amenities),
		Images:        orEmpty(p.Images),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func ToPropertyDetailsResponse(d *domain.PropertyDetails) PropertyDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return PropertyDetailsResponse{
		Property: ToPropertyResponse(&d.Property),
		Bookings: bookings,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		PropertyID:       b.PropertyID,
		TravelerID:       b.TravelerID,
		CheckIn:          b.CheckIn.Format(domain.DateLayout),
		CheckOut:         b.CheckOut.Format(domain.DateLayout),
		Nights:           b.Stay().Nights(),
		Guests:           b.Guests,
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		PropertyTitle:    b.PropertyTitle,
		PropertyLocation: b.PropertyLocation,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        b.UpdatedAt.Format(time.RFC3339),
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
