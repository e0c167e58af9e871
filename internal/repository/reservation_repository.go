package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Karim-Abdelkareem/techmarket/internal/model"
)

// ReservationRepo persists product reservations.
type ReservationRepo struct{ DB *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

// ReservationListFields is the allowed filter/sort set for reservation
// listings.
var ReservationListFields = map[string]string{
	"id":         "id",
	"userId":     "user_id",
	"productId":  "product_id",
	"status":     "status",
	"reservedAt": "reserved_at",
}

const reservationCols = "id, user_id, product_id, product_referral_code, status, reserved_at, completed_at"

func (r *ReservationRepo) Create(ctx context.Context, rv *model.Reservation) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO reservations (user_id, product_id, product_referral_code, status) VALUES (?,?,?,?)",
		rv.UserID, rv.ProductID, rv.ProductReferralCode, rv.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (model.Reservation, error) {
	var rv model.Reservation
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+reservationCols+" FROM reservations WHERE id=? LIMIT 1", id).
		Scan(&rv.ID, &rv.UserID, &rv.ProductID, &rv.ProductReferralCode, &rv.Status, &rv.ReservedAt, &rv.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return rv, ErrNotFound
	}
	return rv, err
}

// List returns reservations matching the composed query. Staff callers
// pass userID 0 to see all; other callers are restricted to their own.
func (r *ReservationRepo) List(ctx context.Context, q ListQuery, userID uint64) ([]model.Reservation, int64, error) {
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
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM reservations"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + reservationCols + " FROM reservations" + cond +
		q.OrderClause("reserved_at DESC") + " LIMIT ? OFFSET ?"
	argsData := append(append([]any{}, args...), q.Limit, q.Skip())

	rows, err := r.DB.QueryContext(ctx, query, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Reservation, 0, q.Limit)
	for rows.Next() {
		var rv model.Reservation
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.ProductID, &rv.ProductReferralCode,
			&rv.Status, &rv.ReservedAt, &rv.CompletedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, rv)
	}
	return out, total, rows.Err()
}

// UpdateStatus moves a reservation to a new status, recording the
// completion time for terminal states.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uint64, status string, completedAt *time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE reservations SET status=?, completed_at=? WHERE id=?",
		status, completedAt, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM reservations WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
