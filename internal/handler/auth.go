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

// AuthHandler bundles dependencies for the register/login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

type registerReq struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profilePicture"`
	Location       string `json:"location"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResp struct {
	User    model.User `json:"user"`
	Token   string     `json:"token"`
	Expires string     `json:"expires"`
}

// Register creates a user account with the user role and returns a signed
// token immediately. Staff roles are only assignable by an admin through
// the user endpoints, never at registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return web.Validation("name, email and password are required")
	}
	if len(req.Password) < 6 {
		return web.Validation("password must be at least 6 characters")
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return web.Internal("hash password failed")
	}

	u := model.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hash,
		ProfilePicture: req.ProfilePicture,
		Location:       req.Location,
		Role:           model.RoleUser,
		IsActive:       true,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	uid, err := h.Users.Create(ctx, &u)
	if err != nil {
		if err == repository.ErrDuplicate {
			return web.Conflict("email already exists")
		}
		return web.Internal("create user failed")
	}
	u.ID = uid

	return h.respondWithToken(c, http.StatusCreated, u)
}

// Login verifies credentials and returns a fresh token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return web.Validation("invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return web.Validation("email and password are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrNotFound {
			return web.Authentication("invalid credentials")
		}
		return web.Internal("query failed")
	}
	if !u.IsActive {
		return web.Authorization("account is deactivated")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return web.Authentication("invalid credentials")
	}

	return h.respondWithToken(c, http.StatusOK, u)
}

func (h *AuthHandler) respondWithToken(c echo.Context, code int, u model.User) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, utils.TokenClaims{
		UserID:         u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		ProfilePicture: u.ProfilePicture,
		Location:       u.Location,
	}, h.Cfg.AccessTTLMin)
	if err != nil {
		return web.Internal("issue token failed")
	}
	return ok(c, code, authResp{User: u, Token: access.Token, Expires: access.Exp.Format("2006-01-02T15:04:05Z07:00")})
}
