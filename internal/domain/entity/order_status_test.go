package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_HappyPath(t *testing.T) {
	sequence := []OrderStatus{StatusPending, StatusAccepted, StatusCooking, StatusOnTheWay, StatusDelivered}

	for i := 0; i < len(sequence)-1; i++ {
		assert.True(t, sequence[i].CanTransitionTo(sequence[i+1]),
			"%s -> %s should be allowed", sequence[i], sequence[i+1])
	}
}

func TestOrderStatus_NoSkipping(t *testing.T) {
	// Jumping straight to delivered without traversing the intermediate
	// states must be rejected.
	assert.False(t, StatusPending.CanTransitionTo(StatusDelivered))
	assert.False(t, StatusPending.CanTransitionTo(StatusCooking))
	assert.False(t, StatusAccepted.CanTransitionTo(StatusDelivered))
	assert.False(t, StatusCooking.CanTransitionTo(StatusDelivered))
}

func TestOrderStatus_CancelFromNonTerminal(t *testing.T) {
	for _, status := range []OrderStatus{StatusPending, StatusAccepted, StatusCooking, StatusOnTheWay} {
		assert.True(t, status.CanTransitionTo(StatusCancelled), "cancel from %s should be allowed", status)
	}
}

func TestOrderStatus_TerminalStates(t *testing.T) {
	for _, status := range []OrderStatus{StatusDelivered, StatusCancelled} {
		assert.True(t, status.IsTerminal())
		assert.Empty(t, status.NextStatuses(), "no transitions out of %s", status)
	}

	// No backwards moves, no cancelling a delivered order.
	assert.False(t, StatusDelivered.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusPending))
	assert.False(t, StatusDelivered.CanTransitionTo(StatusOnTheWay))
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, StatusOnTheWay.IsValid())
	assert.False(t, OrderStatus("shipped").IsValid())
}
