package handler

// lead.go covers the three public lead-capture forms: product inquiries,
// contact messages, and sell-your-device submissions. Creation is open to
// anyone; reading and deleting are admin operations.

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Karim-Abdelkareem/techmarket/internal/model"
	"github.com/Karim-Abdelkareem/techmarket/internal/repository"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

type LeadHandler struct {
	Inquiries *repository.InquiryRepo
	Messages  *repository.MessageRepo
	Sells     *repository.SellRepo
	Products  *repository.ProductRepo
}

func NewLeadHandler(i *repository.InquiryRepo, m *repository.MessageRepo, s *repository.SellRepo, p *repository.ProductRepo) *LeadHandler {
	return &LeadHandler{Inquiries: i, Messages: m, Sells: s, Products: p}
}

type inquiryReq struct {
	ProductID *uint64 `json:"productId"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Message   string  `json:"message"`
}

func (h *LeadHandler) CreateInquiry(c echo.Context) error {
	var req inquiryReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	var problems []string
	if strings.TrimSpace(req.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		problems = append(problems, "email is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		problems = append(problems, "message is required")
	}
	if len(problems) > 0 {
		return web.Validation("%s", strings.Join(problems, "; "))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if req.ProductID != nil {
		if _, err := h.Products.GetByID(ctx, *req.ProductID); err != nil {
			return translateRepoErr(err, "product")
		}
	}

	in := model.Inquiry{
		ProductID: req.ProductID,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   req.Message,
	}
	id, err := h.Inquiries.Create(ctx, &in)
	if err != nil {
		return web.Internal("create inquiry failed")
	}
	in.ID = id
	return ok(c, http.StatusCreated, in)
}

func (h *LeadHandler) ListInquiries(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Inquiries.ListAll(ctx)
	if err != nil {
		return web.Internal("list inquiries failed")
	}
	return ok(c, http.StatusOK, items)
}

func (h *LeadHandler) GetInquiry(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	in, err := h.Inquiries.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "inquiry")
	}
	return ok(c, http.StatusOK, in)
}

func (h *LeadHandler) DeleteInquiry(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Inquiries.Delete(ctx, id); err != nil {
		return translateRepoErr(err, "inquiry")
	}
	return c.NoContent(http.StatusNoContent)
}

type messageReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (h *LeadHandler) CreateMessage(c echo.Context) error {
	var req messageReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	var problems []string
	if strings.TrimSpace(req.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		problems = append(problems, "email is required")
	}
	if strings.TrimSpace(req.Body) == "" {
		problems = append(problems, "body is required")
	}
	if len(problems) > 0 {
		return web.Validation("%s", strings.Join(problems, "; "))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	m := model.Message{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: req.Subject,
		Body:    req.Body,
	}
	id, err := h.Messages.Create(ctx, &m)
	if err != nil {
		return web.Internal("create message failed")
	}
	m.ID = id
	return ok(c, http.StatusCreated, m)
}

func (h *LeadHandler) ListMessages(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Messages.ListAll(ctx)
	if err != nil {
		return web.Internal("list messages failed")
	}
	return ok(c, http.StatusOK, items)
}

func (h *LeadHandler) DeleteMessage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Messages.Delete(ctx, id); err != nil {
		return translateRepoErr(err, "message")
	}
	return c.NoContent(http.StatusNoContent)
}

type sellReq struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Description string  `json:"description"`
	AskingPrice float64 `json:"askingPrice"`
}

func (h *LeadHandler) CreateSell(c echo.Context) error {
	var req sellReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	var problems []string
	if strings.TrimSpace(req.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		problems = append(problems, "email is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		problems = append(problems, "description is required")
	}
	if req.AskingPrice < 0 {
		problems = append(problems, "askingPrice must be >= 0")
	}
	if len(problems) > 0 {
		return web.Validation("%s", strings.Join(problems, "; "))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s := model.Sell{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Description: req.Description,
		AskingPrice: req.AskingPrice,
	}
	id, err := h.Sells.Create(ctx, &s)
	if err != nil {
		return web.Internal("create sell request failed")
	}
	s.ID = id
	return ok(c, http.StatusCreated, s)
}

func (h *LeadHandler) ListSells(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Sells.ListAll(ctx)
	if err != nil {
		return web.Internal("list sell requests failed")
	}
	return ok(c, http.StatusOK, items)
}

func (h *LeadHandler) DeleteSell(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Sells.Delete(ctx, id); err != nil {
		return translateRepoErr(err, "sell request")
	}
	return c.NoContent(http.StatusNoContent)
}
