package repository

// lead_repository.go groups the three small lead/contact repositories:
// inquiries, messages and sell requests. None carries invariants beyond
// required-field presence, which is enforced in the handlers.

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Karim-Abdelkareem/techmarket/internal/model"
)

type InquiryRepo struct{ DB *sql.DB }

func NewInquiryRepo(db *sql.DB) *InquiryRepo { return &InquiryRepo{DB: db} }

func (r *InquiryRepo) Create(ctx context.Context, in *model.Inquiry) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO inquiries (name, email, phone, product_id, message) VALUES (?,?,?,?,?)",
		in.Name, in.Email, in.Phone, in.ProductID, in.Message)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

func (r *InquiryRepo) GetByID(ctx context.Context, id uint64) (model.Inquiry, error) {
	var in model.Inquiry
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, email, phone, product_id, message, created_at FROM inquiries WHERE id=? LIMIT 1", id).
		Scan(&in.ID, &in.Name, &in.Email, &in.Phone, &in.ProductID, &in.Message, &in.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return in, ErrNotFound
	}
	return in, err
}

func (r *InquiryRepo) ListAll(ctx context.Context) ([]model.Inquiry, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, email, phone, product_id, message, created_at FROM inquiries ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Inquiry
	for rows.Next() {
		var in model.Inquiry
		if err := rows.Scan(&in.ID, &in.Name, &in.Email, &in.Phone, &in.ProductID, &in.Message, &in.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (r *InquiryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM inquiries WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type MessageRepo struct{ DB *sql.DB }

func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{DB: db} }

func (r *MessageRepo) Create(ctx context.Context, m *model.Message) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO messages (name, email, subject, body) VALUES (?,?,?,?)",
		m.Name, m.Email, m.Subject, m.Body)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

func (r *MessageRepo) ListAll(ctx context.Context) ([]model.Message, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, email, subject, body, created_at FROM messages ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MessageRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM messages WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type SellRepo struct{ DB *sql.DB }

func NewSellRepo(db *sql.DB) *SellRepo { return &SellRepo{DB: db} }

func (r *SellRepo) Create(ctx context.Context, s *model.Sell) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO sells (name, email, phone, description, asking_price) VALUES (?,?,?,?,?)",
		s.Name, s.Email, s.Phone, s.Description, s.AskingPrice)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

func (r *SellRepo) ListAll(ctx context.Context) ([]model.Sell, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, email, phone, description, asking_price, created_at FROM sells ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Sell
	for rows.Next() {
		var s model.Sell
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Description, &s.AskingPrice, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SellRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM sells WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
