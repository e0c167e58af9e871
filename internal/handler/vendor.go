package handler

// vendor.go holds the dealer and company CRUD. Both are vendor-directory
// records: public reads, admin-only mutations.

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Karim-Abdelkareem/techmarket/internal/model"
	"github.com/Karim-Abdelkareem/techmarket/internal/repository"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

type DealerHandler struct {
	Dealers *repository.DealerRepo
}

func NewDealerHandler(d *repository.DealerRepo) *DealerHandler { return &DealerHandler{Dealers: d} }

type vendorReq struct {
	Name     string         `json:"name"`
	Logo     string         `json:"logo"`
	Brief    string         `json:"brief"`
	Location model.Location `json:"location"`
}

func (h *DealerHandler) Create(c echo.Context) error {
	var req vendorReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return web.Validation("name is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	d := model.Dealer{Name: strings.TrimSpace(req.Name), Logo: req.Logo, Brief: req.Brief, Location: req.Location}
	id, err := h.Dealers.Create(ctx, &d)
	if err != nil {
		return translateRepoErr(err, "dealer")
	}
	d.ID = id
	return ok(c, http.StatusCreated, d)
}

func (h *DealerHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Dealers.ListAll(ctx)
	if err != nil {
		return web.Internal("list dealers failed")
	}
	return ok(c, http.StatusOK, items)
}

func (h *DealerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	d, err := h.Dealers.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "dealer")
	}
	return ok(c, http.StatusOK, d)
}

func (h *DealerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req vendorReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	d, err := h.Dealers.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "dealer")
	}
	if strings.TrimSpace(req.Name) != "" {
		d.Name = strings.TrimSpace(req.Name)
	}
	if req.Logo != "" {
		d.Logo = req.Logo
	}
	if req.Brief != "" {
		d.Brief = req.Brief
	}
	if req.Location.Text != "" || req.Location.Link != "" {
		d.Location = req.Location
	}
	if err := h.Dealers.Update(ctx, &d); err != nil {
		return translateRepoErr(err, "dealer")
	}
	return ok(c, http.StatusOK, d)
}

func (h *DealerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Dealers.Delete(ctx, id); err != nil {
		return translateRepoErr(err, "dealer")
	}
	return c.NoContent(http.StatusNoContent)
}

type CompanyHandler struct {
	Companies *repository.CompanyRepo
}

func NewCompanyHandler(co *repository.CompanyRepo) *CompanyHandler {
	return &CompanyHandler{Companies: co}
}

func (h *CompanyHandler) Create(c echo.Context) error {
	var req vendorReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return web.Validation("name is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	co := model.Company{Name: strings.TrimSpace(req.Name), Logo: req.Logo, Brief: req.Brief, Location: req.Location}
	id, err := h.Companies.Create(ctx, &co)
	if err != nil {
		return translateRepoErr(err, "company")
	}
	co.ID = id
	return ok(c, http.StatusCreated, co)
}

func (h *CompanyHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Companies.ListAll(ctx)
	if err != nil {
		return web.Internal("list companies failed")
	}
	return ok(c, http.StatusOK, items)
}

func (h *CompanyHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	co, err := h.Companies.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "company")
	}
	return ok(c, http.StatusOK, co)
}

func (h *CompanyHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req vendorReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	co, err := h.Companies.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "company")
	}
	if strings.TrimSpace(req.Name) != "" {
		co.Name = strings.TrimSpace(req.Name)
	}
	if req.Logo != "" {
		co.Logo = req.Logo
	}
	if req.Brief != "" {
		co.Brief = req.Brief
	}
	if req.Location.Text != "" || req.Location.Link != "" {
		co.Location = req.Location
	}
	if err := h.Companies.Update(ctx, &co); err != nil {
		return translateRepoErr(err, "company")
	}
	return ok(c, http.StatusOK, co)
}

func (h *CompanyHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Companies.Delete(ctx, id); err != nil {
		return translateRepoErr(err, "company")
	}
	return c.NoContent(http.StatusNoContent)
}
