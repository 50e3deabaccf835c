package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/StayBooker/internal/handler/mocks"
	"github.com/stpnv0/StayBooker/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockListingSvc, *hmocks.MockReservationSvc, http.Handler) {
	t.Helper()
	listingSvc := hmocks.NewMockListingSvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)

	h := NewHandler(listingSvc, reservationSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)
		api.POST("/listings/:id/availability", h.CheckAvailability)
		api.POST("/listings/:id/quote", h.QuotePrice)
		api.POST("/listings/:id/reservations", h.ProposeReservation)
		api.GET("/listings/:id/reservations", h.GetListingReservations)
		api.POST("/reservations/:id/respond", h.RespondToRequest)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.GET("/guests/:id/reservations", h.GetGuestReservations)
	}

	return listingSvc, reservationSvc, r
}

func testListing() *domain.Listing {
	return &domain.Listing{
		ID:      uuid.New().String(),
		OwnerID: uuid.New().String(),
		Title:   "Cabin by the lake",
		Rates: domain.RateConfig{
			NightlyRate:      1_000_000,
			WeekendSurcharge: 200_000,
			ExtraGuestFee:    50_000,
			BaseGuests:       2,
			MaxGuests:        4,
			Policy:           domain.PolicyModerate,
		},
		CreatedAt: time.Now().UTC(),
	}
}

func testHandlerReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        uuid.New().String(),
		ListingID: uuid.New().String(),
		GuestID:   uuid.New().String(),
		Stay: domain.NewStay(
			time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC),
		),
		Guests:     2,
		TotalPrice: 3_685_000,
		Status:     domain.StatusRequested,
		CreatedAt:  time.Now().UTC(),
	}
}

// --- Listings ---

func TestHandler_CreateListing_Success(t *testing.T) {
	listingSvc, _, r := setupRouter(t)

	listing := testListing()
	listingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(listing, nil)

	body, _ := json.Marshal(dto.CreateListingRequest{
		OwnerID:     listing.OwnerID,
		Title:       "Cabin by the lake",
		NightlyRate: 1_000_000,
		BaseGuests:  2,
		MaxGuests:   4,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Cabin by the lake", resp.Title)
	assert.Equal(t, "moderate", resp.CancellationPolicy)
}

func TestHandler_CreateListing_BadBody(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings", bytes.NewReader([]byte(`{"title":""}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetListing_NotFound(t *testing.T) {
	listingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	listingSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrListingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/listings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetListing_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/listings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Availability and pricing ---

func TestHandler_CheckAvailability(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().CheckAvailability(mock.Anything, id, mock.Anything, 2).
		Return(&domain.Availability{Available: true, Conflicts: nil}, nil)

	body, _ := json.Marshal(dto.AvailabilityRequest{
		CheckIn:  "2025-04-10",
		CheckOut: "2025-04-15",
		Guests:   2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings/"+id+"/availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
}

func TestHandler_CheckAvailability_BadDate(t *testing.T) {
	_, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.AvailabilityRequest{
		CheckIn:  "10.04.2025",
		CheckOut: "2025-04-15",
		Guests:   2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings/"+uuid.New().String()+"/availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_QuotePrice(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().Quote(mock.Anything, id, mock.Anything, 3).
		Return(&pricing.Quote{Nights: 3, BasePrice: 3_200_000, ExtraGuestFee: 150_000, ServiceFee: 335_000, Total: 3_685_000}, nil)

	body, _ := json.Marshal(dto.QuoteRequest{
		CheckIn:  "2025-01-02",
		CheckOut: "2025-01-05",
		Guests:   3,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings/"+id+"/quote", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3_685_000), resp.Total)
}

// --- Reservations ---

func TestHandler_ProposeReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	res := testHandlerReservation()
	reservationSvc.EXPECT().Propose(mock.Anything, mock.Anything).Return(res, nil)

	body, _ := json.Marshal(dto.ProposeRequest{
		GuestID:  res.GuestID,
		CheckIn:  "2025-04-10",
		CheckOut: "2025-04-15",
		Guests:   2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings/"+res.ListingID+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "requested", resp.Status)
	assert.Equal(t, "2025-04-10", resp.Stay.CheckIn)
}

func TestHandler_ProposeReservation_Unavailable(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationSvc.EXPECT().Propose(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

	body, _ := json.Marshal(dto.ProposeRequest{
		GuestID:  uuid.New().String(),
		CheckIn:  "2025-04-10",
		CheckOut: "2025-04-15",
		Guests:   2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings/"+uuid.New().String()+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ProposeReservation_LockTimeout(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationSvc.EXPECT().Propose(mock.Anything, mock.Anything).Return(nil, domain.ErrLockTimeout)

	body, _ := json.Marshal(dto.ProposeRequest{
		GuestID:  uuid.New().String(),
		CheckIn:  "2025-04-10",
		CheckOut: "2025-04-15",
		Guests:   2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings/"+uuid.New().String()+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestHandler_RespondToRequest_Accept(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	res := testHandlerReservation()
	res.Status = domain.StatusConfirmed
	actorID := uuid.New().String()

	reservationSvc.EXPECT().Respond(mock.Anything, res.ID, actorID, true).Return(res, nil)

	accept := true
	body, _ := json.Marshal(dto.RespondRequest{ActorID: actorID, Accept: &accept})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+res.ID+"/respond", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_RespondToRequest_MissingAccept(t *testing.T) {
	_, _, r := setupRouter(t)

	body, _ := json.Marshal(map[string]string{"actor_id": uuid.New().String()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+uuid.New().String()+"/respond", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RespondToRequest_NotOwner(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	id := uuid.New().String()
	actorID := uuid.New().String()
	reservationSvc.EXPECT().Respond(mock.Anything, id, actorID, false).Return(nil, domain.ErrNotOwner)

	accept := false
	body, _ := json.Marshal(dto.RespondRequest{ActorID: actorID, Accept: &accept})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/respond", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelReservation(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	res := testHandlerReservation()
	res.Status = domain.StatusCancelled
	res.RefundPercent = 50
	actorID := res.GuestID

	reservationSvc.EXPECT().Cancel(mock.Anything, res.ID, actorID, "plans changed").
		Return(&domain.CancellationResult{Reservation: res, RefundAmount: 1_842_500}, nil)

	body, _ := json.Marshal(dto.CancelRequest{ActorID: actorID, Reason: "plans changed"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+res.ID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancellationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Reservation.Status)
	assert.Equal(t, int64(1_842_500), resp.RefundAmount)
}

func TestHandler_CancelReservation_AlreadyCompleted(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	id := uuid.New().String()
	actorID := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, id, actorID, "").Return(nil, domain.ErrInvalidState)

	body, _ := json.Marshal(dto.CancelRequest{ActorID: actorID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetReservation(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	res := testHandlerReservation()
	actorID := res.GuestID
	reservationSvc.EXPECT().GetByID(mock.Anything, res.ID, actorID).Return(res, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/"+res.ID+"?actor_id="+actorID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, res.ID, resp.ID)
}

func TestHandler_GetReservation_MissingActor(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/"+uuid.New().String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetGuestReservations(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	res := testHandlerReservation()
	reservationSvc.EXPECT().ListByGuest(mock.Anything, res.GuestID).Return([]*domain.Reservation{res}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/guests/"+res.GuestID+"/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, res.ID, resp[0].ID)
}

func TestHandler_GetListingReservations_NotOwner(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	listingID := uuid.New().String()
	actorID := uuid.New().String()
	reservationSvc.EXPECT().ListByListing(mock.Anything, listingID, actorID).Return(nil, domain.ErrNotOwner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/listings/"+listingID+"/reservations?actor_id="+actorID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
