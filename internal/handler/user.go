package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Karim-Abdelkareem/techmarket/internal/config"
	"github.com/Karim-Abdelkareem/techmarket/internal/model"
	"github.com/Karim-Abdelkareem/techmarket/internal/repository"
	"github.com/Karim-Abdelkareem/techmarket/internal/utils"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

// UserHandler exposes account self-service (me endpoints) plus the
// admin-only user administration CRUD.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewUserHandler(cfg config.Config, u *repository.UserRepo) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: u}
}

type updateUserReq struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	ProfilePicture *string `json:"profilePicture"`
	Location       *string `json:"location"`
	Role           *string `json:"role"`
	IsActive       *bool   `json:"isActive"`
}

// Me returns the authenticated user's own record.
func (h *UserHandler) Me(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return translateRepoErr(err, "user")
	}
	return ok(c, http.StatusOK, u)
}

// UpdateMe lets a user edit their own profile. Role and activation are
// not self-serviceable.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	req.Role = nil
	req.IsActive = nil
	return h.applyUpdate(c, uid, req)
}

// List is the admin user listing with composer support.
func (h *UserHandler) List(c echo.Context) error {
	q := repository.ParseListQuery(c.QueryParams(), repository.UserListFields)

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.Users.List(ctx, q)
	if err != nil {
		return web.Internal("list users failed")
	}
	return ok(c, http.StatusOK, listResult(items, q, total))
}

// Get returns one user by id (admin).
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "user")
	}
	return ok(c, http.StatusOK, u)
}

// Update is the admin user update: profile fields plus role/activation.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	return h.applyUpdate(c, id, req)
}

// Delete removes a user permanently (admin).
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		return translateRepoErr(err, "user")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) applyUpdate(c echo.Context, id uint64, req updateUserReq) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return translateRepoErr(err, "user")
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return web.Validation("name cannot be empty")
		}
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			return web.Validation("email cannot be empty")
		}
		u.Email = email
	}
	if req.ProfilePicture != nil {
		u.ProfilePicture = *req.ProfilePicture
	}
	if req.Location != nil {
		u.Location = *req.Location
	}
	if req.Role != nil {
		if !model.ValidRole(*req.Role) {
			return web.Validation("%q is not a valid role", *req.Role)
		}
		u.Role = *req.Role
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	// Password changes are re-hashed; plaintext never reaches storage.
	u.PasswordHash = ""
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return web.Validation("password must be at least 6 characters")
		}
		hash, err := utils.HashPassword(*req.Password, h.Cfg.BcryptCost)
		if err != nil {
			return web.Internal("hash password failed")
		}
		u.PasswordHash = hash
	}

	if err := h.Users.Update(ctx, &u); err != nil {
		if err == repository.ErrDuplicate {
			return web.Conflict("email already exists")
		}
		return web.Internal("update user failed")
	}
	u.PasswordHash = ""
	return ok(c, http.StatusOK, u)
}
