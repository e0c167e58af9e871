package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Karim-Abdelkareem/techmarket/internal/model"
)

// CategoryRepo persists storefront category records. The set of legal
// category names is fixed by the catalog registry; this table only adds
// presentation data (image, slug).
type CategoryRepo struct{ DB *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{DB: db} }

const categoryCols = "id, name, slug, image, created_at"

func (r *CategoryRepo) Create(ctx context.Context, cat *model.Category) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO categories (name, slug, image) VALUES (?,?,?)",
		cat.Name, cat.Slug, cat.Image)
	if err != nil {
		if isDuplicateErr(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

func (r *CategoryRepo) GetByID(ctx context.Context, id uint64) (model.Category, error) {
	var cat model.Category
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+categoryCols+" FROM categories WHERE id=? LIMIT 1", id).
		Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.Image, &cat.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return cat, ErrNotFound
	}
	return cat, err
}

func (r *CategoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+categoryCols+" FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.Image, &cat.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}

func (r *CategoryRepo) Update(ctx context.Context, cat *model.Category) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE categories SET name=?, slug=?, image=? WHERE id=?",
		cat.Name, cat.Slug, cat.Image, cat.ID)
	if err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicate
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
