package repository

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFields = map[string]string{
	"name":     "name",
	"price":    "price",
	"brand":    "brand",
	"views":    "views",
	"category": "category",
}

func TestParseListQueryDefaults(t *testing.T) {
	q := ParseListQuery(url.Values{}, testFields)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, 0, q.Skip())
	assert.Empty(t, q.Predicates)
	assert.Empty(t, q.Sort)
	assert.Empty(t, q.Fields)
}

func TestParseListQueryBadNumbersFallBack(t *testing.T) {
	v := url.Values{}
	v.Set("page", "abc")
	v.Set("limit", "-5")

	q := ParseListQuery(v, testFields)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.Limit)
}

func TestParseListQueryPagination(t *testing.T) {
	v := url.Values{}
	v.Set("page", "3")
	v.Set("limit", "10")

	q := ParseListQuery(v, testFields)

	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 20, q.Skip())
}

func TestParseListQueryRangeOperatorsMergeIntoOnePredicate(t *testing.T) {
	v := url.Values{}
	v.Set("price[gte]", "100")
	v.Set("price[lte]", "500")

	q := ParseListQuery(v, testFields)

	require.Len(t, q.Predicates, 1)
	p := q.Predicates[0]
	assert.Equal(t, "price", p.Field)
	assert.False(t, p.HasEq, "bracket form must not degrade to equality")
	require.Len(t, p.Ranges, 2)

	ops := []string{p.Ranges[0].Op, p.Ranges[1].Op}
	assert.ElementsMatch(t, []string{"gte", "lte"}, ops)
}

func TestParseListQueryEqualityFilter(t *testing.T) {
	v := url.Values{}
	v.Set("brand", "Apple")
	v.Set("views", "true")

	q := ParseListQuery(v, testFields)

	require.Len(t, q.Predicates, 2)
	byField := map[string]Predicate{}
	for _, p := range q.Predicates {
		byField[p.Field] = p
	}
	assert.Equal(t, "Apple", byField["brand"].Eq)
	// boolean literals normalize to the stored tinyint form
	assert.Equal(t, "1", byField["views"].Eq)
}

func TestParseListQueryDropsUnknownFields(t *testing.T) {
	v := url.Values{}
	v.Set("password", "x")
	v.Set("secret[gte]", "1")
	v.Set("sort", "password,-price")
	v.Set("fields", "name,secret")

	q := ParseListQuery(v, testFields)

	assert.Empty(t, q.Predicates)
	require.Len(t, q.Sort, 1)
	assert.Equal(t, "price", q.Sort[0].Column)
	assert.True(t, q.Sort[0].Desc)
	assert.Equal(t, []string{"name"}, q.Fields)
}

func TestParseListQuerySortDirections(t *testing.T) {
	v := url.Values{}
	v.Set("sort", "price,-views")

	q := ParseListQuery(v, testFields)

	require.Len(t, q.Sort, 2)
	assert.Equal(t, SortField{Column: "price", Desc: false}, q.Sort[0])
	assert.Equal(t, SortField{Column: "views", Desc: true}, q.Sort[1])
}

func TestWhereClauseCombinesFiltersAndKeyword(t *testing.T) {
	v := url.Values{}
	v.Set("brand", "Apple")
	v.Set("price[gte]", "100")
	v.Set("price[lte]", "500")
	v.Set("keyword", "Pro")

	q := ParseListQuery(v, testFields)
	where, args := q.WhereClause("name", "description")

	assert.Equal(t, "brand = ? AND (price >= ? AND price <= ?) AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", where)
	assert.Equal(t, []any{"Apple", "100", "500", "%pro%", "%pro%"}, args)
}

func TestWhereClauseEmpty(t *testing.T) {
	q := ParseListQuery(url.Values{}, testFields)
	where, args := q.WhereClause("name")

	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestOrderClause(t *testing.T) {
	v := url.Values{}
	v.Set("sort", "-price,name")
	q := ParseListQuery(v, testFields)

	assert.Equal(t, " ORDER BY price DESC, name ASC", q.OrderClause("id DESC"))

	empty := ParseListQuery(url.Values{}, testFields)
	assert.Equal(t, " ORDER BY id DESC", empty.OrderClause("id DESC"))
	assert.Equal(t, "", empty.OrderClause(""))
}

func TestPageInfo(t *testing.T) {
	cases := []struct {
		name    string
		page    int
		limit   int
		total   int64
		hasNext bool
	}{
		{"first of many", 1, 20, 45, true},
		{"middle", 2, 20, 45, true},
		{"last", 3, 20, 45, false},
		{"exact boundary", 2, 20, 40, false},
		{"empty set", 1, 20, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := ListQuery{Page: tc.page, Limit: tc.limit}
			info := q.PageInfo(tc.total)
			assert.Equal(t, tc.total, info.Total)
			assert.Equal(t, tc.page, info.Page)
			assert.Equal(t, tc.limit, info.Limit)
			assert.Equal(t, tc.hasNext, info.HasNextPage)
		})
	}
}

func TestSplitBracket(t *testing.T) {
	f, op := splitBracket("price[gte]")
	assert.Equal(t, "price", f)
	assert.Equal(t, "gte", op)

	f, op = splitBracket("brand")
	assert.Equal(t, "brand", f)
	assert.Equal(t, "", op)
}
