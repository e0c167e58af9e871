package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructorsMapToStatusCodes(t *testing.T) {
	cases := []struct {
		err  *Error
		code int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Authentication("no token"), http.StatusUnauthorized},
		{Authorization("forbidden"), http.StatusForbidden},
		{NotFound("product not found"), http.StatusNotFound},
		{Conflict("email already registered"), http.StatusConflict},
		{Internal("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code, tc.err.Message)
	}
}

func TestErrorFormatting(t *testing.T) {
	e := Validation("%q is not a valid product type", "Toaster")
	assert.Equal(t, `"Toaster" is not a valid product type`, e.Error())
}

func respondErr(t *testing.T, method, path string, err error) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(err, c)

	var env Envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestErrorHandlerClassifiedError(t *testing.T) {
	rec, env := respondErr(t, http.MethodGet, "/api/products/9", NotFound("product not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "product not found", env.Message)
	assert.Nil(t, env.Data)
}

func TestErrorHandlerUnmatchedRoute(t *testing.T) {
	rec, env := respondErr(t, http.MethodGet, "/api/nope", echo.NewHTTPError(http.StatusNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no route for /api/nope", env.Message)
}

func TestErrorHandlerMethodNotAllowedBecomesNotFound(t *testing.T) {
	rec, env := respondErr(t, http.MethodPut, "/api/products", echo.NewHTTPError(http.StatusMethodNotAllowed))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no route for /api/products", env.Message)
}

func TestErrorHandlerUnknownErrorHidesDetails(t *testing.T) {
	rec, env := respondErr(t, http.MethodGet, "/api/products", assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", env.Message)
	assert.NotContains(t, env.Message, assert.AnError.Error())
}

func TestOKEnvelope(t *testing.T) {
	env := OK(map[string]string{"k": "v"})
	assert.Equal(t, "success", env.Status)
	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Message)
}
