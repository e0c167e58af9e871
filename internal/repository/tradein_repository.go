package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Karim-Abdelkareem/techmarket/internal/model"
)

// TradeInRepo persists trade-in requests. The free-form specs of the
// offered item are stored as a JSON column.
type TradeInRepo struct{ DB *sql.DB }

func NewTradeInRepo(db *sql.DB) *TradeInRepo { return &TradeInRepo{DB: db} }

// TradeInListFields is the allowed filter/sort set for trade-in listings.
var TradeInListFields = map[string]string{
	"id":          "id",
	"userId":      "user_id",
	"storeId":     "store_id",
	"category":    "category",
	"productType": "product_type",
	"status":      "status",
	"createdAt":   "created_at",
}

const tradeInCols = `id, user_id, store_id, category, product_type, specs,
	replacement_product_id, status, admin_notes, reviewed_by, reviewed_at, created_at`

func (r *TradeInRepo) Create(ctx context.Context, t *model.TradeIn) (uint64, error) {
	specs, err := json.Marshal(t.Specs)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO trade_ins
		(user_id, store_id, category, product_type, specs, replacement_product_id, status, admin_notes)
		VALUES (?,?,?,?,?,?,?,?)`,
		t.UserID, t.StoreID, t.Category, t.ProductType, specs, t.ReplacementProductID, t.Status, t.AdminNotes)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

func (r *TradeInRepo) GetByID(ctx context.Context, id uint64) (model.TradeIn, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+tradeInCols+" FROM trade_ins WHERE id=? LIMIT 1", id)
	return scanTradeIn(row)
}

// List returns trade-ins matching the composed query. userID 0 lists all.
func (r *TradeInRepo) List(ctx context.Context, q ListQuery, userID uint64) ([]model.TradeIn, int64, error) {
	where, args := q.WhereClause()
	if userID != 0 {
		if where != "" {
			where += " AND "
		}
		where += "user_id = ?"
		args = append(args, userID)
	}
	cond := ""
	if where != "" {
		cond = " WHERE " + where
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM trade_ins"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + tradeInCols + " FROM trade_ins" + cond +
		q.OrderClause("created_at DESC") + " LIMIT ? OFFSET ?"
	argsData := append(append([]any{}, args...), q.Limit, q.Skip())

	rows, err := r.DB.QueryContext(ctx, query, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.TradeIn, 0, q.Limit)
	for rows.Next() {
		t, err := scanTradeIn(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

// Review resolves a pending trade-in to approved or rejected, recording
// the reviewer and time.
func (r *TradeInRepo) Review(ctx context.Context, id uint64, status, notes string, reviewedBy uint64, reviewedAt time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE trade_ins SET status=?, admin_notes=?, reviewed_by=?, reviewed_at=? WHERE id=?",
		status, notes, reviewedBy, reviewedAt, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TradeInRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM trade_ins WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTradeIn(row rowScanner) (model.TradeIn, error) {
	var t model.TradeIn
	var specs []byte
	err := row.Scan(&t.ID, &t.UserID, &t.StoreID, &t.Category, &t.ProductType, &specs,
		&t.ReplacementProductID, &t.Status, &t.AdminNotes, &t.ReviewedBy, &t.ReviewedAt, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return t, ErrNotFound
	}
	if err != nil {
		return t, err
	}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &t.Specs); err != nil {
			return t, err
		}
	}
	if t.Specs == nil {
		t.Specs = map[string]string{}
	}
	return t, nil
}
