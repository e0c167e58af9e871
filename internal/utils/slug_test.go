package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"iPhone 15 Pro Max", "iphone-15-pro-max"},
		{"  Samsung Galaxy S24  ", "samsung-galaxy-s24"},
		{"USB-C to Lightning (2m)", "usb-c-to-lightning-2m"},
		{"Beats!!!Solo---4", "beats-solo-4"},
		{"ALL CAPS", "all-caps"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), tc.in)
	}
}
