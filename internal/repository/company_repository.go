package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Karim-Abdelkareem/techmarket/internal/model"
)

// CompanyRepo persists manufacturer records.
type CompanyRepo struct{ DB *sql.DB }

func NewCompanyRepo(db *sql.DB) *CompanyRepo { return &CompanyRepo{DB: db} }

const companyCols = "id, name, logo, brief, location_text, location_link, created_at"

func (r *CompanyRepo) Create(ctx context.Context, co *model.Company) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO companies (name, logo, brief, location_text, location_link) VALUES (?,?,?,?,?)",
		co.Name, co.Logo, co.Brief, co.Location.Text, co.Location.Link)
	if err != nil {
		if isDuplicateErr(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

func (r *CompanyRepo) GetByID(ctx context.Context, id uint64) (model.Company, error) {
	var co model.Company
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+companyCols+" FROM companies WHERE id=? LIMIT 1", id).
		Scan(&co.ID, &co.Name, &co.Logo, &co.Brief, &co.Location.Text, &co.Location.Link, &co.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return co, ErrNotFound
	}
	return co, err
}

func (r *CompanyRepo) ListAll(ctx context.Context) ([]model.Company, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+companyCols+" FROM companies ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Company
	for rows.Next() {
		var co model.Company
		if err := rows.Scan(&co.ID, &co.Name, &co.Logo, &co.Brief, &co.Location.Text, &co.Location.Link, &co.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, co)
	}
	return out, rows.Err()
}

func (r *CompanyRepo) Update(ctx context.Context, co *model.Company) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE companies SET name=?, logo=?, brief=?, location_text=?, location_link=? WHERE id=?",
		co.Name, co.Logo, co.Brief, co.Location.Text, co.Location.Link, co.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CompanyRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM companies WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
