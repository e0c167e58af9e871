package model

import "time"

// CartItem is one line in a cart. Price is the unit price captured when
// the product was added.
type CartItem struct {
	ID        uint64  `json:"id"`
	ProductID uint64  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Cart holds one user's pending order. There is exactly one cart per
// user. Total always equals the sum of price*quantity across items and
// is recomputed after every mutation. Discount is a percentage applied
// to the whole cart.
type Cart struct {
	ID                 uint64     `json:"id"`
	UserID             uint64     `json:"userId"`
	Items              []CartItem `json:"items"`
	Total              float64    `json:"total"`
	Discount           float64    `json:"discount,omitempty"`
	TotalAfterDiscount float64    `json:"totalAfterDiscount,omitempty"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// AddItem merges a product into the cart. Adding a product that is
// already present increments its quantity instead of appending a
// duplicate line. Totals are recomputed before returning.
func (c *Cart) AddItem(productID uint64, price float64, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			c.Recalculate()
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: qty, Price: price})
	c.Recalculate()
}

// SetQuantity replaces the quantity of an existing line. A quantity of
// zero removes the line. Returns false when the product is not in the
// cart.
func (c *Cart) SetQuantity(productID uint64, qty int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if qty <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = qty
			}
			c.Recalculate()
			return true
		}
	}
	return false
}

// RemoveItem drops a line from the cart. Returns false when the product
// is not in the cart.
func (c *Cart) RemoveItem(productID uint64) bool {
	return c.SetQuantity(productID, 0)
}

// Clear empties the cart and resets totals and discount.
func (c *Cart) Clear() {
	c.Items = nil
	c.Discount = 0
	c.Recalculate()
}

// ApplyDiscount sets the cart-level discount percentage and recomputes
// the discounted total.
func (c *Cart) ApplyDiscount(pct float64) {
	c.Discount = pct
	c.Recalculate()
}

// Recalculate restores the total invariants after any mutation.
func (c *Cart) Recalculate() {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	c.Total = total
	if c.Discount > 0 {
		c.TotalAfterDiscount = PriceAfterDiscount(total, c.Discount)
	} else {
		c.TotalAfterDiscount = total
	}
}
