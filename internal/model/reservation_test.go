package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidReservationStatus(t *testing.T) {
	for _, s := range []string{ReservationPending, ReservationConfirmed, ReservationCancelled} {
		assert.True(t, ValidReservationStatus(s), s)
	}
	for _, s := range []string{"", "done", "Pending", "CONFIRMED"} {
		assert.False(t, ValidReservationStatus(s), s)
	}
}

func TestReservationTransitions(t *testing.T) {
	assert.True(t, CanTransitionReservation(ReservationPending, ReservationConfirmed))
	assert.True(t, CanTransitionReservation(ReservationPending, ReservationCancelled))

	// resolved reservations are terminal
	assert.False(t, CanTransitionReservation(ReservationConfirmed, ReservationCancelled))
	assert.False(t, CanTransitionReservation(ReservationCancelled, ReservationConfirmed))
	assert.False(t, CanTransitionReservation(ReservationConfirmed, ReservationPending))

	// a no-op transition back to pending is not a resolution
	assert.False(t, CanTransitionReservation(ReservationPending, ReservationPending))
	assert.False(t, CanTransitionReservation(ReservationPending, "done"))
}
