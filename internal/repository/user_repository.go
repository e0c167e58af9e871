package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Karim-Abdelkareem/techmarket/internal/model"
)

// UserRepo persists users. Emails are normalized to lower case before any
// read or write so uniqueness is case-insensitive.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// UserListFields is the allowed filter/sort/projection set for user
// listings.
var UserListFields = map[string]string{
	"id":        "id",
	"name":      "name",
	"email":     "email",
	"role":      "role",
	"isActive":  "is_active",
	"createdAt": "created_at",
}

const userCols = "id, name, profile_picture, email, password_hash, role, location, is_active, created_at"

// Create inserts a user and returns its ID. The password must already be
// hashed by the caller.
func (r *UserRepo) Create(ctx context.Context, u *model.User) (uint64, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, profile_picture, email, password_hash, role, location, is_active) VALUES (?,?,?,?,?,?,1)",
		u.Name, u.ProfilePicture, u.Email, u.PasswordHash, u.Role, u.Location)
	if err != nil {
		if isDuplicateErr(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.getOne(ctx, "SELECT "+userCols+" FROM users WHERE email=? LIMIT 1", email)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.getOne(ctx, "SELECT "+userCols+" FROM users WHERE id=? LIMIT 1", id)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.ProfilePicture, &u.Email, &u.PasswordHash,
		&u.Role, &u.Location, &u.IsActive, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrNotFound
	}
	return u, err
}

// List returns users matching the composed query plus the unpaginated
// match count.
func (r *UserRepo) List(ctx context.Context, q ListQuery) ([]model.User, int64, error) {
	where, args := q.WhereClause("name")
	cond := ""
	if where != "" {
		cond = " WHERE " + where
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + userCols + " FROM users" + cond + q.OrderClause("id ASC") + " LIMIT ? OFFSET ?"
	argsData := append(append([]any{}, args...), q.Limit, q.Skip())

	rows, err := r.DB.QueryContext(ctx, query, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.User, 0, q.Limit)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.ProfilePicture, &u.Email, &u.PasswordHash,
			&u.Role, &u.Location, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, u)
	}
	return out, total, rows.Err()
}

// Update rewrites the mutable profile fields. The password hash is only
// replaced when non-empty.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	var err error
	if u.PasswordHash != "" {
		_, err = r.DB.ExecContext(ctx,
			"UPDATE users SET name=?, profile_picture=?, email=?, password_hash=?, role=?, location=?, is_active=? WHERE id=?",
			u.Name, u.ProfilePicture, u.Email, u.PasswordHash, u.Role, u.Location, u.IsActive, u.ID)
	} else {
		_, err = r.DB.ExecContext(ctx,
			"UPDATE users SET name=?, profile_picture=?, email=?, role=?, location=?, is_active=? WHERE id=?",
			u.Name, u.ProfilePicture, u.Email, u.Role, u.Location, u.IsActive, u.ID)
	}
	if isDuplicateErr(err) {
		return ErrDuplicate
	}
	return err
}

// Delete removes a user permanently.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
