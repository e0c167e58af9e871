package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Karim-Abdelkareem/techmarket/internal/model"
)

// CartRepo persists one cart per user across the carts and cart_items
// tables. Mutations are performed in memory on the model (which restores
// the total invariants) and written back with Save. The item replacement
// and the totals update are two separate statements with no transaction;
// concurrent mutations of the same cart can lose updates, matching the
// system's documented concurrency model.
type CartRepo struct{ DB *sql.DB }

func NewCartRepo(db *sql.DB) *CartRepo { return &CartRepo{DB: db} }

// GetOrCreateByUser loads the user's cart, creating an empty one on first
// use.
func (r *CartRepo) GetOrCreateByUser(ctx context.Context, userID uint64) (model.Cart, error) {
	var c model.Cart
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, user_id, total, discount, total_after_discount, updated_at FROM carts WHERE user_id=? LIMIT 1",
		userID).Scan(&c.ID, &c.UserID, &c.Total, &c.Discount, &c.TotalAfterDiscount, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		res, err := r.DB.ExecContext(ctx,
			"INSERT INTO carts (user_id, total, discount, total_after_discount) VALUES (?,0,0,0)", userID)
		if err != nil {
			return c, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return c, err
		}
		return model.Cart{ID: uint64(id), UserID: userID, Items: []model.CartItem{}}, nil
	}
	if err != nil {
		return c, err
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, product_id, quantity, price FROM cart_items WHERE cart_id=? ORDER BY id ASC", c.ID)
	if err != nil {
		return c, err
	}
	defer rows.Close()

	c.Items = []model.CartItem{}
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.ID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return c, err
		}
		c.Items = append(c.Items, it)
	}
	return c, rows.Err()
}

// Save writes the cart's items and totals back. Items are replaced
// wholesale; the totals row is updated afterwards.
func (r *CartRepo) Save(ctx context.Context, c *model.Cart) error {
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM cart_items WHERE cart_id=?", c.ID); err != nil {
		return err
	}
	for i := range c.Items {
		it := &c.Items[i]
		res, err := r.DB.ExecContext(ctx,
			"INSERT INTO cart_items (cart_id, product_id, quantity, price) VALUES (?,?,?,?)",
			c.ID, it.ProductID, it.Quantity, it.Price)
		if err != nil {
			return err
		}
		if id, err := res.LastInsertId(); err == nil {
			it.ID = uint64(id)
		}
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE carts SET total=?, discount=?, total_after_discount=? WHERE id=?",
		c.Total, c.Discount, c.TotalAfterDiscount, c.ID)
	return err
}
