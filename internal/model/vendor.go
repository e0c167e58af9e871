package model

import "time"

// Location is a display label plus a maps link, shared by dealers and
// companies.
type Location struct {
	Text string `json:"text,omitempty"`
	Link string `json:"link,omitempty"`
}

// Dealer is a vendor identity record. Products reference the dealer that
// listed them as their exclusive owner.
type Dealer struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Logo      string    `json:"logo,omitempty"`
	Brief     string    `json:"brief,omitempty"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

// Company is a manufacturer record referenced by products.
type Company struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Logo      string    `json:"logo,omitempty"`
	Brief     string    `json:"brief,omitempty"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

// Category is a top-level catalog grouping (Mobile, Laptop, ...). The
// allowed set is enforced by the catalog registry; this record carries
// presentation data for the storefront.
type Category struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
