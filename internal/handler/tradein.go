package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Karim-Abdelkareem/techmarket/internal/catalog"
	"github.com/Karim-Abdelkareem/techmarket/internal/model"
	"github.com/Karim-Abdelkareem/techmarket/internal/queue"
	"github.com/Karim-Abdelkareem/techmarket/internal/repository"
	queue_publisher "github.com/Karim-Abdelkareem/techmarket/internal/service"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

// TradeInHandler manages trade-in requests: a user describes a used item
// and asks to exchange it for a listed replacement product; staff approve
// or reject.
type TradeInHandler struct {
	TradeIns *repository.TradeInRepo
	Dealers  *repository.DealerRepo
	Products *repository.ProductRepo
}

func NewTradeInHandler(t *repository.TradeInRepo, d *repository.DealerRepo, p *repository.ProductRepo) *TradeInHandler {
	return &TradeInHandler{TradeIns: t, Dealers: d, Products: p}
}

type createTradeInReq struct {
	StoreID              uint64            `json:"storeId"`
	Category             string            `json:"category"`
	ProductType          string            `json:"productType"`
	Specs                map[string]string `json:"specs"`
	ReplacementProductID uint64            `json:"replacementProductId"`
}

type reviewTradeInReq struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

// Create submits a pending trade-in. The described item's category and
// productType must form a legal pairing in the catalog registry, and both
// the receiving store and the replacement product must exist.
func (h *TradeInHandler) Create(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	var req createTradeInReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	if req.StoreID == 0 || req.ReplacementProductID == 0 {
		return web.Validation("storeId and replacementProductId are required")
	}
	_, stored, _, err := catalog.CheckCategory(req.Category, req.ProductType)
	if err != nil {
		return web.Validation("%s", err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Dealers.GetByID(ctx, req.StoreID); err != nil {
		return translateRepoErr(err, "store")
	}
	if _, err := h.Products.GetByID(ctx, req.ReplacementProductID); err != nil {
		return translateRepoErr(err, "replacement product")
	}

	if req.Specs == nil {
		req.Specs = map[string]string{}
	}
	t := model.TradeIn{
		UserID:               uid,
		StoreID:              req.StoreID,
		Category:             req.Category,
		ProductType:          stored,
		Specs:                req.Specs,
		ReplacementProductID: req.ReplacementProductID,
		Status:               model.TradeInPending,
	}
	id, err := h.TradeIns.Create(ctx, &t)
	if err != nil {
		return web.Internal("create trade-in failed")
	}
	t.ID = id
	t.CreatedAt = time.Now().UTC()
	return ok(c, http.StatusCreated, t)
}

// List returns the caller's trade-ins; staff see all and may filter.
func (h *TradeInHandler) List(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	scope := uid
	if isStaff(callerRole(c)) {
		scope = 0
	}
	q := repository.ParseListQuery(c.QueryParams(), repository.TradeInListFields)

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.TradeIns.List(ctx, q, scope)
	if err != nil {
		return web.Internal("list trade-ins failed")
	}
	return ok(c, http.StatusOK, listResult(items, q, total))
}

// Get returns one trade-in; non-staff may only read their own.
func (h *TradeInHandler) Get(c echo.Context) error {
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

	t, err := h.TradeIns.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "trade-in")
	}
	if !isStaff(callerRole(c)) && t.UserID != uid {
		return web.Authorization("trade-in belongs to another user")
	}
	return ok(c, http.StatusOK, t)
}

// Review resolves a pending trade-in to approved or rejected, recording
// reviewer and time, then publishes the review event.
func (h *TradeInHandler) Review(c echo.Context) error {
	reviewer, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req reviewTradeInReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	if !model.ValidTradeInStatus(req.Status) || req.Status == model.TradeInPending {
		return web.Validation("status must be approved or rejected")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.TradeIns.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "trade-in")
	}
	if t.Status != model.TradeInPending {
		return web.Validation("trade-in is already %s", t.Status)
	}

	now := time.Now().UTC()
	if err := h.TradeIns.Review(ctx, id, req.Status, req.AdminNotes, reviewer, now); err != nil {
		return translateRepoErr(err, "trade-in")
	}
	t.Status = req.Status
	t.AdminNotes = req.AdminNotes
	t.ReviewedBy = &reviewer
	t.ReviewedAt = &now

	h.publishReviewed(t)
	return ok(c, http.StatusOK, t)
}

// Delete removes a trade-in record (admin).
func (h *TradeInHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.TradeIns.Delete(ctx, id); err != nil {
		return translateRepoErr(err, "trade-in")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TradeInHandler) publishReviewed(t model.TradeIn) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		ev := queue.TradeInReviewedEvent{
			TradeInID:  t.ID,
			UserID:     t.UserID,
			StoreID:    t.StoreID,
			Status:     t.Status,
			ReviewedBy: *t.ReviewedBy,
			ReviewedAt: t.ReviewedAt.Format(time.RFC3339),
		}
		if err := queue_publisher.PublishTradeInReviewed(ctx, ev); err != nil {
			log.Printf("publish tradein.reviewed failed: %v", err)
		}
	}()
}
