package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karim-Abdelkareem/techmarket/internal/middleware"
	"github.com/Karim-Abdelkareem/techmarket/internal/model"
	"github.com/Karim-Abdelkareem/techmarket/internal/repository"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

func newTestContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestCallerID(t *testing.T) {
	c := newTestContext(t)
	c.Set(middleware.CtxUserID, uint64(42))
	id, err := callerID(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	c = newTestContext(t)
	c.Set(middleware.CtxUserID, float64(7))
	id, err = callerID(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)

	c = newTestContext(t)
	_, err = callerID(c)
	require.Error(t, err)
	var we *web.Error
	require.ErrorAs(t, err, &we)
	assert.Equal(t, http.StatusUnauthorized, we.Code)
}

func TestIsStaff(t *testing.T) {
	assert.True(t, isStaff(model.RoleAdmin))
	assert.True(t, isStaff(model.RoleModerator))
	assert.False(t, isStaff(model.RoleUser))
	assert.False(t, isStaff(""))
}

func TestPathID(t *testing.T) {
	c := newTestContext(t)
	c.SetParamNames("id")
	c.SetParamValues("15")
	id, err := pathID(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), id)

	for _, bad := range []string{"", "0", "-1", "abc"} {
		c := newTestContext(t)
		c.SetParamNames("id")
		c.SetParamValues(bad)
		_, err := pathID(c)
		assert.Error(t, err, bad)
	}
}

func TestProjectFields(t *testing.T) {
	items := []model.Product{
		{ID: 1, Name: "iPhone 15", Price: 999, Brand: "Apple"},
		{ID: 2, Name: "Pixel 9", Price: 799, Brand: "Google"},
	}

	out := projectFields(items, []string{"name", "price"})
	list, ok := out.([]map[string]any)
	require.True(t, ok)
	require.Len(t, list, 2)

	first := list[0]
	assert.Equal(t, "iPhone 15", first["name"])
	assert.Equal(t, float64(999), first["price"])
	assert.Contains(t, first, "id", "id always survives projection")
	assert.NotContains(t, first, "brand")
	assert.NotContains(t, first, "slug")
}

func TestProjectFieldsEmptyListPassesThrough(t *testing.T) {
	items := []model.Product{{ID: 1, Name: "x"}}
	out := projectFields(items, nil)
	assert.Equal(t, items, out)
}

func TestTranslateRepoErr(t *testing.T) {
	assert.NoError(t, translateRepoErr(nil, "product"))

	err := translateRepoErr(repository.ErrNotFound, "product")
	var we *web.Error
	require.ErrorAs(t, err, &we)
	assert.Equal(t, http.StatusNotFound, we.Code)
	assert.Equal(t, "product not found", we.Message)

	err = translateRepoErr(repository.ErrDuplicate, "user")
	require.ErrorAs(t, err, &we)
	assert.Equal(t, http.StatusConflict, we.Code)

	err = translateRepoErr(assert.AnError, "product")
	require.ErrorAs(t, err, &we)
	assert.Equal(t, http.StatusInternalServerError, we.Code)
	assert.Equal(t, "database error", we.Message)
}
