package router

import (
	"net/http"

	"github.com/rishiboppana/stayhub/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateProperty(c *ginext.Context)
	SearchProperties(c *ginext.Context)
	GetProperty(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	SetBookingStatus(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
}

// Guards are the per-route middlewares: Auth resolves the caller, Idempotent guards booking creation.
type Guards struct {
	Auth       ginext.HandlerFunc
	Idempotent ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Properties
		api.GET("/properties", h.SearchProperties)
		api.GET("/properties/:id", h.GetProperty)
		api.GET("/properties/:id/availability", h.CheckAvailability)

		// Users
		api.POST("/users", h.CreateUser)
	}

	auth := api.Group("", g.Auth)
	{
		auth.POST("/properties", h.CreateProperty)

		// Bookings
		auth.POST("/bookings", g.Idempotent, h.CreateBooking)
		auth.GET("/bookings", h.ListBookings)
		auth.PATCH("/bookings/:id/status", h.SetBookingStatus)

		auth.GET("/users/:id", h.GetUser)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := metrics.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
