package model

import "time"

// Trade-in review statuses. A request starts pending and is resolved by
// staff to approved or rejected.
const (
	TradeInPending  = "pending"
	TradeInApproved = "approved"
	TradeInRejected = "rejected"
)

// ValidTradeInStatus reports whether s is a member of the status set.
func ValidTradeInStatus(s string) bool {
	return s == TradeInPending || s == TradeInApproved || s == TradeInRejected
}

// TradeIn is a request to exchange a described used item for a listed
// replacement product, subject to staff approval. Specs holds free-form
// key/value details of the offered item (persisted as JSON).
type TradeIn struct {
	ID                   uint64            `json:"id"`
	UserID               uint64            `json:"userId"`
	StoreID              uint64            `json:"storeId"`
	Category             string            `json:"category"`
	ProductType          string            `json:"productType"`
	Specs                map[string]string `json:"specs"`
	ReplacementProductID uint64            `json:"replacementProductId"`
	Status               string            `json:"status"`
	AdminNotes           string            `json:"adminNotes,omitempty"`
	ReviewedBy           *uint64           `json:"reviewedBy,omitempty"`
	ReviewedAt           *time.Time        `json:"reviewedAt,omitempty"`
	CreatedAt            time.Time         `json:"createdAt"`
}
