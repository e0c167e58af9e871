package handler // handler defines http handlers

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Karim-Abdelkareem/techmarket/internal/middleware"
	"github.com/Karim-Abdelkareem/techmarket/internal/model"
	"github.com/Karim-Abdelkareem/techmarket/internal/repository"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

// dbTimeout bounds every persistence call issued from a handler.
const dbTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// ok writes a success envelope.
func ok(c echo.Context, code int, data any) error {
	return c.JSON(code, web.OK(data))
}

// callerID extracts the authenticated user id stored by TokenAuth.
func callerID(c echo.Context) (uint64, error) {
	switch t := c.Get(middleware.CtxUserID).(type) {
	case uint64:
		return t, nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, web.Authentication("missing identity")
}

// callerRole extracts the authenticated role, empty when unauthenticated.
func callerRole(c echo.Context) string {
	role, _ := c.Get(middleware.CtxRole).(string)
	return role
}

func isStaff(role string) bool {
	return role == model.RoleAdmin || role == model.RoleModerator
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, web.Validation("invalid id")
	}
	return id, nil
}

// listPayload is the uniform body of every listing response.
type listPayload struct {
	Items any `json:"items"`
	repository.PageInfo
}

// listResult assembles a listing response, applying the composer's field
// projection to the items when one was requested.
func listResult(items any, q repository.ListQuery, total int64) listPayload {
	return listPayload{Items: projectFields(items, q.Fields), PageInfo: q.PageInfo(total)}
}

// projectFields restricts the attributes of each returned record to the
// requested set (plus id). It round-trips through JSON so the projection
// operates on the wire names. An empty field list returns v unchanged.
func projectFields(v any, fields []string) any {
	if len(fields) == 0 {
		return v
	}
	keep := map[string]bool{"id": true}
	for _, f := range fields {
		keep[f] = true
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}

	var asList []map[string]any
	if err := json.Unmarshal(raw, &asList); err == nil {
		for _, m := range asList {
			stripKeys(m, keep)
		}
		return asList
	}
	var asObj map[string]any
	if err := json.Unmarshal(raw, &asObj); err == nil {
		stripKeys(asObj, keep)
		return asObj
	}
	return v
}

func stripKeys(m map[string]any, keep map[string]bool) {
	for k := range m {
		if !keep[k] {
			delete(m, k)
		}
	}
}

// translateRepoErr maps repository sentinels onto the API taxonomy. what
// names the entity for the client-facing message.
func translateRepoErr(err error, what string) error {
	switch err {
	case nil:
		return nil
	case repository.ErrNotFound:
		return web.NotFound("%s not found", what)
	case repository.ErrDuplicate:
		return web.Conflict("%s already exists", what)
	default:
		return web.Internal("database error")
	}
}
