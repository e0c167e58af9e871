package model

import "time"

// Reservation statuses form a small state machine: a reservation starts
// pending and moves to confirmed or cancelled exactly once.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// ValidReservationStatus reports whether s is a member of the status set.
// Any other string must be rejected, never coerced.
func ValidReservationStatus(s string) bool {
	return s == ReservationPending || s == ReservationConfirmed || s == ReservationCancelled
}

// CanTransitionReservation reports whether a status update from -> to is
// legal. Only pending reservations may be resolved; resolved ones are
// terminal.
func CanTransitionReservation(from, to string) bool {
	if !ValidReservationStatus(to) {
		return false
	}
	return from == ReservationPending && to != ReservationPending
}

// Reservation is a user's claim on a product pending staff confirmation.
type Reservation struct {
	ID                  uint64     `json:"id"`
	UserID              uint64     `json:"userId"`
	ProductID           uint64     `json:"productId"`
	ProductReferralCode *string    `json:"productReferralCode,omitempty"`
	Status              string     `json:"status"`
	ReservedAt          time.Time  `json:"reservedAt"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
}
