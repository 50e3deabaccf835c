package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateListing(c *ginext.Context)
	GetListing(c *ginext.Context)
	ListListings(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	QuotePrice(c *ginext.Context)
	ProposeReservation(c *ginext.Context)
	RespondToRequest(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	GetGuestReservations(c *ginext.Context)
	GetListingReservations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Listings
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)

		// Availability and pricing
		api.POST("/listings/:id/availability", h.CheckAvailability)
		api.POST("/listings/:id/quote", h.QuotePrice)

		// Reservations
		api.POST("/listings/:id/reservations", h.ProposeReservation)
		api.GET("/listings/:id/reservations", h.GetListingReservations)
		api.POST("/reservations/:id/respond", h.RespondToRequest)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.GET("/guests/:id/reservations", h.GetGuestReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
