package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Karim-Abdelkareem/techmarket/internal/repository"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

// AnalyticsHandler serves the admin dashboard aggregates.
type AnalyticsHandler struct {
	Analytics *repository.AnalyticsRepo
}

func NewAnalyticsHandler(a *repository.AnalyticsRepo) *AnalyticsHandler {
	return &AnalyticsHandler{Analytics: a}
}

func (h *AnalyticsHandler) Overview(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	ov, err := h.Analytics.Overview(ctx)
	if err != nil {
		return web.Internal("load overview failed")
	}
	return ok(c, http.StatusOK, ov)
}

func (h *AnalyticsHandler) ProductsPerCategory(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	rows, err := h.Analytics.ProductsPerCategory(ctx)
	if err != nil {
		return web.Internal("load category counts failed")
	}
	return ok(c, http.StatusOK, rows)
}

func (h *AnalyticsHandler) TopProducts(c echo.Context) error {
	n := 0
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return web.Validation("limit must be a positive integer")
		}
		n = v
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rows, err := h.Analytics.TopViewedProducts(ctx, n)
	if err != nil {
		return web.Internal("load top products failed")
	}
	return ok(c, http.StatusOK, rows)
}

func (h *AnalyticsHandler) ReservationsByStatus(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	rows, err := h.Analytics.ReservationsByStatus(ctx)
	if err != nil {
		return web.Internal("load reservation counts failed")
	}
	return ok(c, http.StatusOK, rows)
}

func (h *AnalyticsHandler) TradeInsByStatus(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	rows, err := h.Analytics.TradeInsByStatus(ctx)
	if err != nil {
		return web.Internal("load trade-in counts failed")
	}
	return ok(c, http.StatusOK, rows)
}
