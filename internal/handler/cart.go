package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Karim-Abdelkareem/techmarket/internal/repository"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

// CartHandler manages the caller's own cart. Every mutation loads the
// cart, applies the change in memory (which restores the total
// invariants) and saves it back.
type CartHandler struct {
	Carts    *repository.CartRepo
	Products *repository.ProductRepo
}

func NewCartHandler(carts *repository.CartRepo, products *repository.ProductRepo) *CartHandler {
	return &CartHandler{Carts: carts, Products: products}
}

type addItemReq struct {
	ProductID uint64 `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type setQuantityReq struct {
	Quantity int `json:"quantity"`
}

type cartDiscountReq struct {
	Discount float64 `json:"discount"`
}

// Get returns the caller's cart, creating an empty one on first use.
func (h *CartHandler) Get(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	cart, err := h.Carts.GetOrCreateByUser(ctx, uid)
	if err != nil {
		return web.Internal("load cart failed")
	}
	return ok(c, http.StatusOK, cart)
}

// AddItem puts a product into the cart at its current discounted price.
// Adding a product already present increments the line quantity.
func (h *CartHandler) AddItem(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	var req addItemReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	if req.ProductID == 0 {
		return web.Validation("productId is required")
	}
	if req.Quantity < 1 {
		req.Quantity = 1
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

	cart, err := h.Carts.GetOrCreateByUser(ctx, uid)
	if err != nil {
		return web.Internal("load cart failed")
	}
	cart.AddItem(p.ID, p.PriceAfterDiscount, req.Quantity)
	if err := h.Carts.Save(ctx, &cart); err != nil {
		return web.Internal("save cart failed")
	}
	return ok(c, http.StatusOK, cart)
}

// SetQuantity replaces a line's quantity; zero removes the line.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c)
	if err != nil {
		return err
	}
	var req setQuantityReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	if req.Quantity < 0 {
		return web.Validation("quantity must be >= 0")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cart, err := h.Carts.GetOrCreateByUser(ctx, uid)
	if err != nil {
		return web.Internal("load cart failed")
	}
	if !cart.SetQuantity(productID, req.Quantity) {
		return web.NotFound("product not in cart")
	}
	if err := h.Carts.Save(ctx, &cart); err != nil {
		return web.Internal("save cart failed")
	}
	return ok(c, http.StatusOK, cart)
}

// RemoveItem drops one line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c)
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cart, err := h.Carts.GetOrCreateByUser(ctx, uid)
	if err != nil {
		return web.Internal("load cart failed")
	}
	if !cart.RemoveItem(productID) {
		return web.NotFound("product not in cart")
	}
	if err := h.Carts.Save(ctx, &cart); err != nil {
		return web.Internal("save cart failed")
	}
	return ok(c, http.StatusOK, cart)
}

// Clear empties the caller's cart.
func (h *CartHandler) Clear(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	cart, err := h.Carts.GetOrCreateByUser(ctx, uid)
	if err != nil {
		return web.Internal("load cart failed")
	}
	cart.Clear()
	if err := h.Carts.Save(ctx, &cart); err != nil {
		return web.Internal("save cart failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// ApplyDiscount sets a cart-level percentage discount.
func (h *CartHandler) ApplyDiscount(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	var req cartDiscountReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	if req.Discount < 0 || req.Discount > 100 {
		return web.Validation("discount must be between 0 and 100")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cart, err := h.Carts.GetOrCreateByUser(ctx, uid)
	if err != nil {
		return web.Internal("load cart failed")
	}
	cart.ApplyDiscount(req.Discount)
	if err := h.Carts.Save(ctx, &cart); err != nil {
		return web.Internal("save cart failed")
	}
	return ok(c, http.StatusOK, cart)
}
