package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Karim-Abdelkareem/techmarket/internal/catalog"
	"github.com/Karim-Abdelkareem/techmarket/internal/model"
	"github.com/Karim-Abdelkareem/techmarket/internal/repository"
	"github.com/Karim-Abdelkareem/techmarket/internal/utils"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

// CategoryHandler manages storefront category records. Category names
// must be members of the registry's closed set; the table only adds
// presentation data.
type CategoryHandler struct {
	Categories *repository.CategoryRepo
}

func NewCategoryHandler(r *repository.CategoryRepo) *CategoryHandler {
	return &CategoryHandler{Categories: r}
}

type categoryReq struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	if _, err := catalog.ParseCategory(req.Name); err != nil {
		return web.Validation("%s", err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cat := model.Category{Name: req.Name, Slug: utils.Slugify(req.Name), Image: req.Image}
	id, err := h.Categories.Create(ctx, &cat)
	if err != nil {
		return translateRepoErr(err, "category")
	}
	cat.ID = id
	return ok(c, http.StatusCreated, cat)
}

func (h *CategoryHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Categories.ListAll(ctx)
	if err != nil {
		return web.Internal("list categories failed")
	}
	return ok(c, http.StatusOK, items)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "category")
	}
	return ok(c, http.StatusOK, cat)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "category")
	}
	if strings.TrimSpace(req.Name) != "" {
		if _, err := catalog.ParseCategory(req.Name); err != nil {
			return web.Validation("%s", err.Error())
		}
		cat.Name = req.Name
		if cat.Slug == "" {
			cat.Slug = utils.Slugify(req.Name)
		}
	}
	if req.Image != "" {
		cat.Image = req.Image
	}
	if err := h.Categories.Update(ctx, &cat); err != nil {
		return translateRepoErr(err, "category")
	}
	return ok(c, http.StatusOK, cat)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Categories.Delete(ctx, id); err != nil {
		return translateRepoErr(err, "category")
	}
	return c.NoContent(http.StatusNoContent)
}
