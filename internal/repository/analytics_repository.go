package repository

import (
	"context"
	"database/sql"
)

// AnalyticsRepo runs the precomputed aggregate reads behind the
// /api/analytics endpoints. Results are small JSON documents (counts,
// group-bys, top-N lists) with no pagination.
type AnalyticsRepo struct{ DB *sql.DB }

func NewAnalyticsRepo(db *sql.DB) *AnalyticsRepo { return &AnalyticsRepo{DB: db} }

// Overview is the dashboard headline counters.
type Overview struct {
	Products     int64 `json:"products"`
	Users        int64 `json:"users"`
	Dealers      int64 `json:"dealers"`
	Companies    int64 `json:"companies"`
	Reservations int64 `json:"reservations"`
	TradeIns     int64 `json:"tradeIns"`
	Inquiries    int64 `json:"inquiries"`
}

// StatusCount is one bucket of a group-by-status aggregate.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// CategoryCount is one bucket of the products-per-category aggregate.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// TopProduct is one row of the most-viewed listing.
type TopProduct struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Views uint64 `json:"views"`
}

func (r *AnalyticsRepo) Overview(ctx context.Context) (Overview, error) {
	var o Overview
	counts := []struct {
		table string
		dst   *int64
	}{
		{"products", &o.Products},
		{"users", &o.Users},
		{"dealers", &o.Dealers},
		{"companies", &o.Companies},
		{"reservations", &o.Reservations},
		{"trade_ins", &o.TradeIns},
		{"inquiries", &o.Inquiries},
	}
	for _, c := range counts {
		if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dst); err != nil {
			return o, err
		}
	}
	return o, nil
}

func (r *AnalyticsRepo) ProductsPerCategory(ctx context.Context) ([]CategoryCount, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT category, COUNT(*) FROM products GROUP BY category ORDER BY COUNT(*) DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CategoryCount{}
	for rows.Next() {
		var cc CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) TopViewedProducts(ctx context.Context, n int) ([]TopProduct, error) {
	if n < 1 || n > 100 {
		n = 10
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, views FROM products ORDER BY views DESC, id ASC LIMIT ?", n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TopProduct{}
	for rows.Next() {
		var tp TopProduct
		if err := rows.Scan(&tp.ID, &tp.Name, &tp.Views); err != nil {
			return nil, err
		}
		out = append(out, tp)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) ReservationsByStatus(ctx context.Context) ([]StatusCount, error) {
	return r.statusCounts(ctx, "reservations")
}

func (r *AnalyticsRepo) TradeInsByStatus(ctx context.Context) ([]StatusCount, error) {
	return r.statusCounts(ctx, "trade_ins")
}

func (r *AnalyticsRepo) statusCounts(ctx context.Context, table string) ([]StatusCount, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT status, COUNT(*) FROM "+table+" GROUP BY status ORDER BY status ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StatusCount{}
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
