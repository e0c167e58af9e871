package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a single listing in the catalog. One table holds every
// category; subtype-specific fields (a laptop's processor, a cable's
// length) live in the Attrs map, persisted as a JSON column and validated
// against the catalog registry for the record's ProductType discriminator.
//
// PriceAfterDiscount is derived, never accepted from a client. Slug is
// derived from Name at creation and kept stable across renames.
type Product struct {
	ID                 uint64         `json:"id"`
	Name               string         `json:"name"`
	Slug               string         `json:"slug"`
	Category           string         `json:"category"`
	ProductType        string         `json:"productType"`
	DealerID           uint64         `json:"dealerId"`
	Brand              string         `json:"brand,omitempty"`
	CompanyID          *uint64        `json:"companyId,omitempty"`
	Price              float64        `json:"price"`
	Description        string         `json:"description,omitempty"`
	Quantity           int            `json:"quantity"`
	Image              string         `json:"image,omitempty"`
	Images             []string       `json:"images"`
	ProductCode        string         `json:"productCode"`
	ReferralCode       *string        `json:"referralCode,omitempty"`
	Discount           float64        `json:"discount"`
	PriceAfterDiscount float64        `json:"priceAfterDiscount"`
	IsExclusive        bool           `json:"isExclusive"`
	Views              uint64         `json:"views"`
	Attrs              map[string]any `json:"attrs,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// PriceAfterDiscount computes the derived sale price:
// round(price - price*discount/100) when discount > 0, otherwise the
// price unchanged. decimal avoids float drift on the percentage math.
func PriceAfterDiscount(price, discount float64) float64 {
	if discount <= 0 {
		return price
	}
	p := decimal.NewFromFloat(price)
	d := decimal.NewFromFloat(discount)
	out := p.Sub(p.Mul(d).Div(decimal.NewFromInt(100)))
	return out.Round(0).InexactFloat64()
}

// ApplyPricing recomputes the derived price field. Called on every save.
func (p *Product) ApplyPricing() {
	p.PriceAfterDiscount = PriceAfterDiscount(p.Price, p.Discount)
}
