package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/stpnv0/StayBooker/internal/pricing"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type ListingSvc interface {
	Create(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
}

type ReservationSvc interface {
	CheckAvailability(ctx context.Context, listingID string, stay domain.Stay, guests int) (*domain.Availability, error)
	Quote(ctx context.Context, listingID string, stay domain.Stay, guests int) (*pricing.Quote, error)
	Propose(ctx context.Context, input domain.ProposeInput) (*domain.Reservation, error)
	Respond(ctx context.Context, reservationID, actorID string, accept bool) (*domain.Reservation, error)
	Cancel(ctx context.Context, reservationID, actorID, reason string) (*domain.CancellationResult, error)
	GetByID(ctx context.Context, id, actorID string) (*domain.Reservation, error)
	ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error)
	ListByListing(ctx context.Context, listingID, actorID string) ([]*domain.Reservation, error)
}

type Handler struct {
	listingService     ListingSvc
	reservationService ReservationSvc
}

func NewHandler(listingService ListingSvc, reservationService ReservationSvc) *Handler {
	return &Handler{
		listingService:     listingService,
		reservationService: reservationService,
	}
}

// Listings

func (h *Handler) CreateListing(c *ginext.Context) {
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateListingInput{
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Description: req.Description,
		Rates: domain.RateConfig{
			NightlyRate:      req.NightlyRate,
			WeekendSurcharge: req.WeekendSurcharge,
			ExtraGuestFee:    req.ExtraGuestFee,
			BaseGuests:       req.BaseGuests,
			MaxGuests:        req.MaxGuests,
			MinStay:          req.MinStay,
			MaxStay:          req.MaxStay,
			Policy:           domain.CancellationPolicy(req.CancellationPolicy),
		},
	}

	listing, err := h.listingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *Handler) GetListing(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	listing, err := h.listingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) ListListings(c *ginext.Context) {
	listings, err := h.listingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) CheckAvailability(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	stay, ok := h.parseStay(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	availability, err := h.reservationService.CheckAvailability(c.Request.Context(), listingID, stay, req.Guests)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

func (h *Handler) QuotePrice(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	stay, ok := h.parseStay(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	quote, err := h.reservationService.Quote(c.Request.Context(), listingID, stay, req.Guests)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

func (h *Handler) ProposeReservation(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	var req dto.ProposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	stay, ok := h.parseStay(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	res, err := h.reservationService.Propose(c.Request.Context(), domain.ProposeInput{
		ListingID: listingID,
		GuestID:   req.GuestID,
		Stay:      stay,
		Guests:    req.Guests,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) RespondToRequest(c *ginext.Context) {
	reservationID := c.Param("id")
	if _, err := uuid.Parse(reservationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.reservationService.Respond(c.Request.Context(), reservationID, req.ActorID, *req.Accept)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	reservationID := c.Param("id")
	if _, err := uuid.Parse(reservationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.reservationService.Cancel(c.Request.Context(), reservationID, req.ActorID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCancellationResponse(result))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	reservationID := c.Param("id")
	if _, err := uuid.Parse(reservationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	actorID := c.Query("actor_id")
	if _, err := uuid.Parse(actorID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid actor id"})
		return
	}

	res, err := h.reservationService.GetByID(c.Request.Context(), reservationID, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) GetGuestReservations(c *ginext.Context) {
	guestID := c.Param("id")
	if _, err := uuid.Parse(guestID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guest id"})
		return
	}

	reservations, err := h.reservationService.ListByGuest(c.Request.Context(), guestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

func (h *Handler) GetListingReservations(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	actorID := c.Query("actor_id")
	if _, err := uuid.Parse(actorID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid actor id"})
		return
	}

	reservations, err := h.reservationService.ListByListing(c.Request.Context(), listingID, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

func toReservationResponses(list []*domain.Reservation) []dto.ReservationResponse {
	resp := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, dto.ToReservationResponse(r))
	}
	return resp
}

func (h *Handler) parseStay(c *ginext.Context, checkIn, checkOut string) (domain.Stay, bool) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_in format, expected YYYY-MM-DD"})
		return domain.Stay{}, false
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_out format, expected YYYY-MM-DD"})
		return domain.Stay{}, false
	}
	return domain.NewStay(in, out), true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnavailable),
		errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidStayLength),
		errors.Is(err, domain.ErrGuestCountExceeded):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrNotParticipant):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrLockTimeout):
		// Единственная ошибка, которую клиенту стоит ретраить.
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
