package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Karim-Abdelkareem/techmarket/internal/catalog"
	"github.com/Karim-Abdelkareem/techmarket/internal/model"
	"github.com/Karim-Abdelkareem/techmarket/internal/repository"
	"github.com/Karim-Abdelkareem/techmarket/internal/utils"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

// ProductHandler exposes the catalog CRUD. Create/update/delete require a
// staff role; a moderator may only touch products owned by their own
// dealer account, and the ownership check runs before any type
// resolution so a mismatch is an authorization error, never validation.
type ProductHandler struct {
	Products *repository.ProductRepo
}

func NewProductHandler(p *repository.ProductRepo) *ProductHandler {
	return &ProductHandler{Products: p}
}

type createProductReq struct {
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	ProductType  string         `json:"productType"`
	Brand        string         `json:"brand"`
	CompanyID    *uint64        `json:"companyId"`
	Price        float64        `json:"price"`
	Description  string         `json:"description"`
	Quantity     int            `json:"quantity"`
	Image        string         `json:"image"`
	Images       []string       `json:"images"`
	ProductCode  string         `json:"productCode"`
	ReferralCode string         `json:"referralCode"`
	Discount     float64        `json:"discount"`
	IsExclusive  bool           `json:"isExclusive"`
	Attrs        map[string]any `json:"attrs"`
}

type updateProductReq struct {
	Name         *string        `json:"name"`
	Category     *string        `json:"category"`
	ProductType  *string        `json:"productType"`
	Brand        *string        `json:"brand"`
	CompanyID    *uint64        `json:"companyId"`
	Price        *float64       `json:"price"`
	Description  *string        `json:"description"`
	Quantity     *int           `json:"quantity"`
	Image        *string        `json:"image"`
	Images       *[]string      `json:"images"`
	ProductCode  *string        `json:"productCode"`
	ReferralCode *string        `json:"referralCode"`
	Discount     *float64       `json:"discount"`
	IsExclusive  *bool          `json:"isExclusive"`
	Attrs        map[string]any `json:"attrs"`
}

// Create validates the category/productType pairing, the base fields and
// the subtype attrs, then persists the product owned by the calling
// dealer. The stored discriminator is the resolved productType so later
// reads recover the correct shape.
func (h *ProductHandler) Create(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	var req createProductReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}

	_, stored, resolved, err := catalog.CheckCategory(req.Category, req.ProductType)
	if err != nil {
		return web.Validation("%s", err.Error())
	}
	if err := validateProductBase(req.Name, req.Price, req.Quantity, req.Discount); err != nil {
		return err
	}
	if req.Attrs == nil {
		req.Attrs = map[string]any{}
	}
	if err := catalog.ValidateAttrs(resolved, req.Attrs); err != nil {
		return web.Validation("%s", err.Error())
	}

	p := model.Product{
		Name:        strings.TrimSpace(req.Name),
		Slug:        utils.Slugify(req.Name),
		Category:    req.Category,
		ProductType: stored,
		DealerID:    uid,
		Brand:       req.Brand,
		CompanyID:   req.CompanyID,
		Price:       req.Price,
		Description: req.Description,
		Quantity:    req.Quantity,
		Image:       req.Image,
		Images:      req.Images,
		ProductCode: strings.TrimSpace(req.ProductCode),
		Discount:    req.Discount,
		IsExclusive: req.IsExclusive,
		Attrs:       req.Attrs,
	}
	if p.ProductCode == "" {
		p.ProductCode = utils.NewProductCode()
	}
	if code := strings.TrimSpace(req.ReferralCode); code != "" {
		p.ReferralCode = &code
	} else if p.IsExclusive {
		code := utils.NewReferralCode()
		p.ReferralCode = &code
	}
	p.ApplyPricing()

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Products.Create(ctx, &p)
	if err != nil {
		if err == repository.ErrDuplicate {
			return web.Conflict("product code or referral code already exists")
		}
		return web.Internal("create product failed")
	}
	p.ID = id
	return ok(c, http.StatusCreated, p)
}

// List is the public catalog listing. It accepts the full composer
// parameter set (page, limit, sort, fields, keyword, field[op] filters)
// against the product whitelist.
func (h *ProductHandler) List(c echo.Context) error {
	q := repository.ParseListQuery(c.QueryParams(), repository.ProductListFields)

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.Products.List(ctx, q)
	if err != nil {
		return web.Internal("list products failed")
	}
	return ok(c, http.StatusOK, listResult(items, q, total))
}

// Get returns one product and bumps its view counter. The increment is
// best effort; a failed bump never fails the read.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Products.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "product")
	}
	if err := h.Products.IncrementViews(ctx, id); err != nil {
		log.Printf("increment views for product %d failed: %v", id, err)
	} else {
		p.Views++
	}
	return ok(c, http.StatusOK, p)
}

// GetByReferral resolves an exclusive product from its referral code.
// Storefront referral links land here before placing a reservation.
func (h *ProductHandler) GetByReferral(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		return web.Validation("invalid referral code")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Products.GetByReferralCode(ctx, code)
	if err != nil {
		return translateRepoErr(err, "product")
	}
	return ok(c, http.StatusOK, p)
}

// Update applies a partial update. The validation ruleset is resolved
// from the record's stored productType unless the caller explicitly
// retypes the product, preventing type confusion on partial payloads.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateProductReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Products.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "product")
	}
	if err := h.requireOwnership(c, &p); err != nil {
		return err
	}

	// Work out the effective category/type pairing before touching the
	// record; an illegal pairing rejects the whole update.
	category := p.Category
	if req.Category != nil {
		category = *req.Category
	}
	productType := p.ProductType
	if req.ProductType != nil {
		productType = *req.ProductType
	}
	_, stored, _, err := catalog.CheckCategory(category, productType)
	if err != nil {
		return web.Validation("%s", err.Error())
	}

	// Attrs validate against the stored type unless the caller retyped
	// the product, in which case the merged payload must satisfy the new
	// type in full.
	validateAs := p.ProductType
	if req.ProductType != nil {
		validateAs = stored
	}
	_, resolved, err := catalog.Resolve(validateAs)
	if err != nil {
		return web.Validation("%s", err.Error())
	}

	mergedAttrs := make(map[string]any, len(p.Attrs)+len(req.Attrs))
	for k, v := range p.Attrs {
		mergedAttrs[k] = v
	}
	for k, v := range req.Attrs {
		mergedAttrs[k] = v
	}
	if err := catalog.ValidateAttrs(resolved, mergedAttrs); err != nil {
		return web.Validation("%s", err.Error())
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	p.Category = category
	p.ProductType = stored
	if req.Brand != nil {
		p.Brand = *req.Brand
	}
	if req.CompanyID != nil {
		p.CompanyID = req.CompanyID
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Images != nil {
		p.Images = *req.Images
	}
	if req.ProductCode != nil && strings.TrimSpace(*req.ProductCode) != "" {
		p.ProductCode = strings.TrimSpace(*req.ProductCode)
	}
	if req.ReferralCode != nil {
		code := strings.TrimSpace(*req.ReferralCode)
		if code == "" {
			p.ReferralCode = nil
		} else {
			p.ReferralCode = &code
		}
	}
	if req.Discount != nil {
		p.Discount = *req.Discount
	}
	if req.IsExclusive != nil {
		p.IsExclusive = *req.IsExclusive
	}
	p.Attrs = mergedAttrs

	if err := validateProductBase(p.Name, p.Price, p.Quantity, p.Discount); err != nil {
		return err
	}
	// Slug stays stable across renames; only an empty slug is re-derived.
	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Name)
	}
	p.ApplyPricing()

	if err := h.Products.Update(ctx, &p); err != nil {
		if err == repository.ErrDuplicate {
			return web.Conflict("product code or referral code already exists")
		}
		return translateRepoErr(err, "product")
	}
	return ok(c, http.StatusOK, p)
}

// Delete removes a product. Same ownership rule as Update.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Products.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "product")
	}
	if err := h.requireOwnership(c, &p); err != nil {
		return err
	}
	if err := h.Products.Delete(ctx, id); err != nil {
		return translateRepoErr(err, "product")
	}
	return c.NoContent(http.StatusNoContent)
}

// requireOwnership lets admins through and restricts moderators to
// products whose owning dealer is themselves.
func (h *ProductHandler) requireOwnership(c echo.Context, p *model.Product) error {
	role := callerRole(c)
	if role == model.RoleAdmin {
		return nil
	}
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	if p.DealerID != uid {
		return web.Authorization("product belongs to another dealer")
	}
	return nil
}

func validateProductBase(name string, price float64, quantity int, discount float64) error {
	var errs []string
	if strings.TrimSpace(name) == "" {
		errs = append(errs, "name is required")
	}
	if price < 0 {
		errs = append(errs, "price must be >= 0")
	}
	if quantity < 0 {
		errs = append(errs, "quantity must be >= 0")
	}
	if discount < 0 || discount > 100 {
		errs = append(errs, "discount must be between 0 and 100")
	}
	if len(errs) > 0 {
		return web.Validation("%s", strings.Join(errs, "; "))
	}
	return nil
}
