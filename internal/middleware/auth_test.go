package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karim-Abdelkareem/techmarket/internal/utils"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

const testSecret = "test-secret"

func runAuth(t *testing.T, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	h := TokenAuth(testSecret)(func(c echo.Context) error { return nil })
	return c, h(c)
}

func TestTokenAuthAcceptsRawToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, utils.TokenClaims{
		UserID: 9, Name: "Nour", Email: "nour@example.com", Role: "admin",
	}, 15)
	require.NoError(t, err)

	// the header carries the bare token, no Bearer scheme
	c, err := runAuth(t, tok.Token)
	require.NoError(t, err)

	assert.Equal(t, uint64(9), c.Get(CtxUserID))
	assert.Equal(t, "admin", c.Get(CtxRole))
	assert.Equal(t, "nour@example.com", c.Get(CtxEmail))
	assert.Equal(t, "Nour", c.Get(CtxName))
}

func TestTokenAuthRejectsBearerPrefixedToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, utils.TokenClaims{UserID: 9, Role: "user"}, 15)
	require.NoError(t, err)

	_, err = runAuth(t, "Bearer "+tok.Token)
	require.Error(t, err)
	var we *web.Error
	require.ErrorAs(t, err, &we)
	assert.Equal(t, http.StatusUnauthorized, we.Code)
}

func TestTokenAuthMissingHeader(t *testing.T) {
	_, err := runAuth(t, "")
	require.Error(t, err)
	var we *web.Error
	require.ErrorAs(t, err, &we)
	assert.Equal(t, http.StatusUnauthorized, we.Code)
	assert.Equal(t, "missing token", we.Message)
}

func TestTokenAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", utils.TokenClaims{UserID: 9, Role: "user"}, 15)
	require.NoError(t, err)

	_, err = runAuth(t, tok.Token)
	assert.Error(t, err)
}

func TestRequireRole(t *testing.T) {
	next := func(c echo.Context) error { return nil }
	mw := RequireRole("admin", "moderator")

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(CtxRole, "moderator")
	assert.NoError(t, mw(next)(c))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(CtxRole, "user")
	err := mw(next)(c)
	require.Error(t, err)
	var we *web.Error
	require.ErrorAs(t, err, &we)
	assert.Equal(t, http.StatusForbidden, we.Code)

	// no role in context at all
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err = mw(next)(c)
	assert.Error(t, err)
}
