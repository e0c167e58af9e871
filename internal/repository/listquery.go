package repository

// listquery.go is the generic list-query composer shared by every listing
// endpoint. It turns an untrusted query-string map into pagination, filter,
// sort, search and field-projection inputs for a repository read. Reserved
// keys are {page, sort, fields, keyword, limit}; every other key becomes an
// equality filter, or a range comparison when written in the bracket form
// field[gte|gt|lte|lt]. Filters, sort fields and projections are all
// checked against an explicit per-entity allowed-field set; unknown names
// are dropped rather than forwarded into SQL.

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Defaults applied when page/limit are absent or not numeric. Bad values
// never error; they fall back.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

var reservedKeys = map[string]bool{
	"page":    true,
	"sort":    true,
	"fields":  true,
	"keyword": true,
	"limit":   true,
}

// rangeOps maps bracket operators to SQL comparisons, in the fixed order
// they are rendered.
var rangeOps = []struct{ name, sql string }{
	{"gte", ">="},
	{"gt", ">"},
	{"lte", "<="},
	{"lt", "<"},
}

// Range is one bounded comparison inside a predicate.
type Range struct {
	Op    string // gte, gt, lte, lt
	SQL   string // >=, >, <=, <
	Value string
}

// Predicate is the composed condition for a single field. A field queried
// with bracket operators carries one predicate with all its ranges merged,
// not independent equality filters.
type Predicate struct {
	Field  string // API field name
	Column string // SQL column it maps to
	Eq     string
	HasEq  bool
	Ranges []Range
}

// SortField is one ordering term.
type SortField struct {
	Column string
	Desc   bool
}

// ListQuery is the parsed, whitelisted form of a listing request.
type ListQuery struct {
	Page       int
	Limit      int
	Keyword    string
	Fields     []string // projection, API names; empty means all
	Sort       []SortField
	Predicates []Predicate
}

// ParseListQuery composes a ListQuery from raw URL query values. allowed
// maps API field names to SQL columns and doubles as the whitelist for
// filters, sort terms and projections.
func ParseListQuery(values url.Values, allowed map[string]string) ListQuery {
	q := ListQuery{
		Page:    intOrDefault(values.Get("page"), DefaultPage),
		Limit:   intOrDefault(values.Get("limit"), DefaultLimit),
		Keyword: strings.TrimSpace(values.Get("keyword")),
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}

	// Sort: comma-separated, leading '-' means descending.
	for _, part := range strings.Split(values.Get("sort"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		if col, ok := allowed[name]; ok {
			q.Sort = append(q.Sort, SortField{Column: col, Desc: desc})
		}
	}

	// Projection: comma-separated field names; unknown names dropped.
	for _, part := range strings.Split(values.Get("fields"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := allowed[part]; ok {
			q.Fields = append(q.Fields, part)
		}
	}

	// Filters: every non-reserved key. Bracket operators on the same field
	// merge into one predicate. Iteration is keyed off a stable ordering of
	// the raw keys so composed SQL is deterministic.
	byField := map[string]*Predicate{}
	var order []string
	for _, key := range sortedKeys(values) {
		if reservedKeys[key] {
			continue
		}
		field, op := splitBracket(key)
		col, ok := allowed[field]
		if !ok {
			continue
		}
		p := byField[field]
		if p == nil {
			p = &Predicate{Field: field, Column: col}
			byField[field] = p
			order = append(order, field)
		}
		val := values.Get(key)
		if op == "" {
			p.Eq = normalizeValue(val)
			p.HasEq = true
			continue
		}
		for _, r := range rangeOps {
			if r.name == op {
				p.Ranges = append(p.Ranges, Range{Op: r.name, SQL: r.sql, Value: val})
				break
			}
		}
	}
	for _, f := range order {
		p := byField[f]
		if p.HasEq || len(p.Ranges) > 0 {
			q.Predicates = append(q.Predicates, *p)
		}
	}
	return q
}

// Skip returns the pagination offset.
func (q ListQuery) Skip() int { return (q.Page - 1) * q.Limit }

// WhereClause renders the composed filter plus keyword search as a SQL
// fragment (without the WHERE keyword) and its bind arguments. searchCols
// are the text columns the keyword is OR'd across; search ANDs with the
// field filters. An empty string means no conditions.
func (q ListQuery) WhereClause(searchCols ...string) (string, []any) {
	var conds []string
	var args []any

	for _, p := range q.Predicates {
		if p.HasEq {
			conds = append(conds, p.Column+" = ?")
			args = append(args, p.Eq)
		}
		if len(p.Ranges) > 0 {
			var parts []string
			for _, r := range p.Ranges {
				parts = append(parts, p.Column+" "+r.SQL+" ?")
				args = append(args, r.Value)
			}
			conds = append(conds, "("+strings.Join(parts, " AND ")+")")
		}
	}

	if q.Keyword != "" && len(searchCols) > 0 {
		var likes []string
		for _, col := range searchCols {
			likes = append(likes, "LOWER("+col+") LIKE ?")
			args = append(args, "%"+strings.ToLower(q.Keyword)+"%")
		}
		conds = append(conds, "("+strings.Join(likes, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return strings.Join(conds, " AND "), args
}

// OrderClause renders the ORDER BY fragment, or the given default order
// when no sort was requested. Pass "" for natural order.
func (q ListQuery) OrderClause(def string) string {
	if len(q.Sort) == 0 {
		if def == "" {
			return ""
		}
		return " ORDER BY " + def
	}
	var parts []string
	for _, s := range q.Sort {
		dir := " ASC"
		if s.Desc {
			dir = " DESC"
		}
		parts = append(parts, s.Column+dir)
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// PageInfo describes the pagination window of a result set.
type PageInfo struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
}

// PageInfo computes totalCount-derived pagination metadata. total is the
// count matching the filter, ignoring pagination.
func (q ListQuery) PageInfo(total int64) PageInfo {
	pages := int(math.Ceil(float64(total) / float64(q.Limit)))
	return PageInfo{
		Total:       total,
		Page:        q.Page,
		Limit:       q.Limit,
		HasNextPage: q.Page < pages,
	}
}

func intOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// splitBracket decomposes "price[gte]" into ("price", "gte"). A key
// without brackets returns op "".
func splitBracket(key string) (field, op string) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, ""
	}
	return key[:open], key[open+1 : len(key)-1]
}

// normalizeValue maps boolean literals onto the tinyint form MySQL
// stores, leaving everything else untouched.
func normalizeValue(v string) string {
	switch strings.ToLower(v) {
	case "true":
		return "1"
	case "false":
		return "0"
	}
	return v
}

func sortedKeys(values url.Values) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	// insertion sort; key counts are tiny
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}
