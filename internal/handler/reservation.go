package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Karim-Abdelkareem/techmarket/internal/model"
	"github.com/Karim-Abdelkareem/techmarket/internal/queue"
	"github.com/Karim-Abdelkareem/techmarket/internal/repository"
	queue_publisher "github.com/Karim-Abdelkareem/techmarket/internal/service"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

// ReservationHandler manages product reservations. Users create and view
// their own; staff resolve them through the status endpoint. Confirming
// a reservation publishes an event to the broker; publish failures are
// logged and never fail the request.
type ReservationHandler struct {
	Reservations *repository.ReservationRepo
	Products     *repository.ProductRepo
}

func NewReservationHandler(r *repository.ReservationRepo, p *repository.ProductRepo) *ReservationHandler {
	return &ReservationHandler{Reservations: r, Products: p}
}

type createReservationReq struct {
	ProductID           uint64 `json:"productId"`
	ProductReferralCode string `json:"productReferralCode"`
}

type updateReservationReq struct {
	Status string `json:"status"`
}

// Create places a pending reservation on an existing product.
func (h *ReservationHandler) Create(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	if req.ProductID == 0 {
		return web.Validation("productId is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Products.GetByID(ctx, req.ProductID)
	if err != nil {
		return translateRepoErr(err, "product")
	}
	if p.Quantity < 1 {
		return web.Validation("product is out of stock")
	}

	rv := model.Reservation{
		UserID:    uid,
		ProductID: p.ID,
		Status:    model.ReservationPending,
	}
	if req.ProductReferralCode != "" {
		rv.ProductReferralCode = &req.ProductReferralCode
	}

	id, err := h.Reservations.Create(ctx, &rv)
	if err != nil {
		return web.Internal("create reservation failed")
	}
	rv.ID = id
	rv.ReservedAt = time.Now().UTC()
	return ok(c, http.StatusCreated, rv)
}

// List returns the caller's reservations; staff see everyone's and may
// filter with the composer parameters.
func (h *ReservationHandler) List(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	scope := uid
	if isStaff(callerRole(c)) {
		scope = 0
	}
	q := repository.ParseListQuery(c.QueryParams(), repository.ReservationListFields)

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.Reservations.List(ctx, q, scope)
	if err != nil {
		return web.Internal("list reservations failed")
	}
	return ok(c, http.StatusOK, listResult(items, q, total))
}

// Get returns one reservation; non-staff may only read their own.
func (h *ReservationHandler) Get(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rv, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "reservation")
	}
	if !isStaff(callerRole(c)) && rv.UserID != uid {
		return web.Authorization("reservation belongs to another user")
	}
	return ok(c, http.StatusOK, rv)
}

// UpdateStatus moves a reservation through its state machine. Only the
// members of {pending, confirmed, cancelled} are ever accepted, and a
// resolved reservation is terminal.
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateReservationReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	if !model.ValidReservationStatus(req.Status) {
		return web.Validation("%q is not a valid reservation status", req.Status)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rv, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "reservation")
	}
	if !model.CanTransitionReservation(rv.Status, req.Status) {
		return web.Validation("cannot move reservation from %s to %s", rv.Status, req.Status)
	}

	now := time.Now().UTC()
	if err := h.Reservations.UpdateStatus(ctx, id, req.Status, &now); err != nil {
		return translateRepoErr(err, "reservation")
	}
	rv.Status = req.Status
	rv.CompletedAt = &now

	if req.Status == model.ReservationConfirmed {
		h.publishConfirmed(rv)
	}
	return ok(c, http.StatusOK, rv)
}

// Delete removes a reservation record (admin).
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Reservations.Delete(ctx, id); err != nil {
		return translateRepoErr(err, "reservation")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ReservationHandler) publishConfirmed(rv model.Reservation) {
	// Detached context: the event outlives the HTTP request.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		name := ""
		if p, err := h.Products.GetByID(ctx, rv.ProductID); err == nil {
			name = p.Name
		}
		ev := queue.ReservationConfirmedEvent{
			ReservationID: rv.ID,
			UserID:        rv.UserID,
			ProductID:     rv.ProductID,
			ProductName:   name,
			ReferralCode:  rv.ProductReferralCode,
			ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		if err := queue_publisher.PublishReservationConfirmed(ctx, ev); err != nil {
			log.Printf("publish reservation.confirmed failed: %v", err)
		}
	}()
}
