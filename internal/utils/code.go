package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewProductCode generates a unique product code when the payload does not
// supply one. The short uppercase form keeps codes printable on labels.
func NewProductCode() string {
	return "PC-" + strings.ToUpper(uuid.NewString()[:8])
}

// NewReferralCode generates a referral code for exclusive products.
func NewReferralCode() string {
	return "RF-" + strings.ToUpper(uuid.NewString()[:8])
}
