package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceAfterDiscount(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"no discount", 999, 0, 999},
		{"negative discount ignored", 999, -5, 999},
		{"ten percent rounds", 999, 10, 899},
		{"half", 200, 50, 100},
		{"full discount", 150, 100, 0},
		{"fractional result rounds to nearest", 100, 33, 67},
		{"float drift case", 19.99, 10, 18},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PriceAfterDiscount(tc.price, tc.discount))
		})
	}
}

func TestApplyPricing(t *testing.T) {
	p := Product{Price: 500, Discount: 20}
	p.ApplyPricing()
	assert.Equal(t, float64(400), p.PriceAfterDiscount)

	p.Discount = 0
	p.ApplyPricing()
	assert.Equal(t, float64(500), p.PriceAfterDiscount, "zero discount restores the raw price")
}
