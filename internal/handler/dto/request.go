package dto

type CreatePropertyRequest struct {
	Title         string   `json:"title"           binding:"required"`
	Type          string   `json:"type"`
	Location      string   `json:"location"        binding:"required"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"price_per_night" binding:"required,gt=0"`
	Bedrooms      int      `json:"bedrooms"        binding:"min=0"`
	Bathrooms     int      `json:"bathrooms"       binding:"min=0"`
	MaxGuests     int      `json:"max_guests"      binding:"min=0"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

type SearchPropertiesQuery struct {
	Location string  `form:"location"`
	MinPrice float64 `form:"min_price" binding:"min=0"`
	MaxPrice float64 `form:"max_price" binding:"min=0"`
	Guests   int     `form:"guests"    binding:"min=0"`
	CheckIn  string  `form:"check_in"`
	CheckOut string  `form:"check_out"`
	Page     int     `form:"page"      binding:"min=0"`
	Limit    int     `form:"limit"     binding:"min=0"`
}

type AvailabilityQuery struct {
	CheckIn  string `form:"check_in"  binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}

type CreateBookingRequest struct {
	PropertyID int64  `json:"property_id" binding:"required,gt=0"`
	CheckIn    string `json:"check_in"    binding:"required"`
	CheckOut   string `json:"check_out"   binding:"required"`
	Guests     int    `json:"guests"      binding:"min=1"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateUserRequest struct {
	Name  string `json:"name"  binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"  binding:"required"`
}
