// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names declared by both the publisher and the consumer.
const (
	ReservationConfirmedQueue = "reservation.confirmed"
	TradeInReviewedQueue      = "tradein.reviewed"
)

// ReservationConfirmedEvent is published when staff confirms a
// reservation. It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type ReservationConfirmedEvent struct {
	ReservationID uint64  `json:"reservation_id"`
	UserID        uint64  `json:"user_id"`
	ProductID     uint64  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	ReferralCode  *string `json:"referral_code,omitempty"`
	ConfirmedAt   string  `json:"confirmed_at"`
}

// TradeInReviewedEvent is published when staff resolves a trade-in
// request to approved or rejected.
type TradeInReviewedEvent struct {
	TradeInID  uint64 `json:"tradein_id"`
	UserID     uint64 `json:"user_id"`
	StoreID    uint64 `json:"store_id"`
	Status     string `json:"status"`
	ReviewedBy uint64 `json:"reviewed_by"`
	ReviewedAt string `json:"reviewed_at"`
}
