package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/rishiboppana/stayhub/internal/handler/dto"
	"github.com/rishiboppana/stayhub/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type PropertySvc interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreatePropertyInput) (*domain.Property, error)
	GetDetails(ctx context.Context, id int64) (*domain.PropertyDetails, error)
	Search(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error)
}

type BookingSvc interface {
	CheckConflict(ctx context.Context, propertyID int64, stay domain.DateRange, statuses []domain.BookingStatus) (bool, error)
	CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	SetStatus(ctx context.Context, input domain.SetStatusInput) (*domain.Booking, error)
	ListForActor(ctx context.Context, actor domain.Actor) ([]*domain.Booking, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Handler struct {
	propertyService PropertySvc
	bookingService  BookingSvc
	userService     UserSvc
}

func NewHandler(propertyService PropertySvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		propertyService: propertyService,
		bookingService:  bookingService,
		userService:     userService,
	}
}

// Properties

func (h *Handler) CreateProperty(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreatePropertyInput{
		Title:         req.Title,
		Type:          req.Type,
		Location:      req.Location,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		MaxGuests:     req.MaxGuests,
		Amenities:     req.Amenities,
		Images:        req.Images,
	}

	property, err := h.propertyService.Create(c.Request.Context(), actor, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPropertyResponse(property))
}

func (h *Handler) SearchProperties(c *ginext.Context) {
	var q dto.SearchPropertiesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	filter := domain.PropertyFilter{
		Location: q.Location,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Guests:   q.Guests,
		Page:     q.Page,
		Limit:    q.Limit,
	}

	switch {
	case q.CheckIn != "" && q.CheckOut != "":
		stay, err := domain.ParseDateRange(q.CheckIn, q.CheckOut)
		if err != nil {
			h.handleError(c, err)
			return
		}
		filter.Stay = &stay
	case q.CheckIn != "" || q.CheckOut != "":
		h.handleError(c, fmt.Errorf("%w: check_in and check_out go together", domain.ErrValidation))
		return
	}

	properties, err := h.propertyService.Search(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	filter.Normalize()
	resp := dto.PropertyListResponse{
		Items: make([]dto.PropertyResponse, 0, len(properties)),
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for _, p := range properties {
		resp.Items = append(resp.Items, dto.ToPropertyResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetProperty(c *ginext.Context) {
	id, ok := h.idParam(c, "property")
	if !ok {
		return
	}

	details, err := h.propertyService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyDetailsResponse(details))
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	id, ok := h.idParam(c, "property")
	if !ok {
		return
	}

	var q dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	stay, err := domain.ParseDateRange(q.CheckIn, q.CheckOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	conflict, err := h.bookingService.CheckConflict(c.Request.Context(), id, stay, domain.BlockingStatuses)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		PropertyID: id,
		CheckIn:    stay.Start.Format(domain.DateLayout),
		CheckOut:   stay.End.Format(domain.DateLayout),
		Available:  !conflict,
	})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	if actor.Role != domain.RoleTraveler {
		h.handleError(c, fmt.Errorf("%w: only travelers can book", domain.ErrForbidden))
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	stay, err := domain.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), domain.CreateBookingInput{
		PropertyID: req.PropertyID,
		TravelerID: actor.ID,
		CheckIn:    stay.Start,
		CheckOut:   stay.End,
		Guests:     req.Guests,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListForActor(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetBookingStatus(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.idParam(c, "booking")
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.SetStatus(c.Request.Context(), domain.SetStatusInput{
		BookingID: id,
		Actor:     actor,
		Status:    status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.Role(req.Role),
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := h.idParam(c, "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) actor(c *ginext.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
		return domain.Actor{}, false
	}
	return actor, true
}

func (h *Handler) idParam(c *ginext.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var te *domain.TransitionError
	switch {
	case errors.As(err, &te):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			From:  string(te.From),
			To:    string(te.To),
		})

	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDatesUnavailable),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "storage temporarily unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
