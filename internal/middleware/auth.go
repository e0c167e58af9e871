package middleware // middleware provides shared request processing for handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/Karim-Abdelkareem/techmarket/internal/utils"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

// Context keys populated by TokenAuth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
	CtxEmail  = "email"
	CtxName   = "name"
)

// TokenAuth validates the access token and injects the caller's identity
// into the request context. The Authorization header carries the raw
// token directly, with no "Bearer " scheme prefix; existing storefront
// and dashboard clients send it that way. Requests without a
// resolvable user fail closed.
func TokenAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("Authorization")
			if raw == "" {
				return web.Authentication("missing token")
			}
			tc, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return web.Authentication("invalid token")
			}
			c.Set(CtxUserID, tc.UserID)
			c.Set(CtxRole, tc.Role)
			c.Set(CtxEmail, tc.Email)
			c.Set(CtxName, tc.Name)
			return next(c)
		}
	}
}

// RequireRole enforces that the authenticated user has one of the given
// roles. It assumes TokenAuth ran earlier and stored the role in context.
// Failure is a distinct forbidden outcome, not unauthenticated.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(string)
			if !ok || !allowed[role] {
				return web.Authorization("forbidden")
			}
			return next(c)
		}
	}
}
