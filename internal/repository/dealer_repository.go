package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Karim-Abdelkareem/techmarket/internal/model"
)

// DealerRepo persists dealer (vendor) identity records.
type DealerRepo struct{ DB *sql.DB }

func NewDealerRepo(db *sql.DB) *DealerRepo { return &DealerRepo{DB: db} }

const dealerCols = "id, name, logo, brief, location_text, location_link, created_at"

func (r *DealerRepo) Create(ctx context.Context, d *model.Dealer) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO dealers (name, logo, brief, location_text, location_link) VALUES (?,?,?,?,?)",
		d.Name, d.Logo, d.Brief, d.Location.Text, d.Location.Link)
	if err != nil {
		if isDuplicateErr(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

func (r *DealerRepo) GetByID(ctx context.Context, id uint64) (model.Dealer, error) {
	var d model.Dealer
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+dealerCols+" FROM dealers WHERE id=? LIMIT 1", id).
		Scan(&d.ID, &d.Name, &d.Logo, &d.Brief, &d.Location.Text, &d.Location.Link, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return d, ErrNotFound
	}
	return d, err
}

func (r *DealerRepo) ListAll(ctx context.Context) ([]model.Dealer, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+dealerCols+" FROM dealers ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Dealer
	for rows.Next() {
		var d model.Dealer
		if err := rows.Scan(&d.ID, &d.Name, &d.Logo, &d.Brief, &d.Location.Text, &d.Location.Link, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DealerRepo) Update(ctx context.Context, d *model.Dealer) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE dealers SET name=?, logo=?, brief=?, location_text=?, location_link=? WHERE id=?",
		d.Name, d.Logo, d.Brief, d.Location.Text, d.Location.Link, d.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DealerRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM dealers WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
