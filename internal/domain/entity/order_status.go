// Package entity contains the core business objects of the project.
package entity

// OrderStatus represents the current state of a MasterOrder.
// The schema stores only the current value; the allowed transitions below are
// enforced by the order service, never by the database.
type OrderStatus string

const (
	// StatusPending is the initial state after the customer places the order.
	StatusPending OrderStatus = "pending"
	// StatusAccepted means the chef has confirmed the order.
	StatusAccepted OrderStatus = "accepted"
	// StatusCooking means the chef has started preparing the order.
	StatusCooking OrderStatus = "cooking"
	// StatusOnTheWay means the order has left the kitchen.
	StatusOnTheWay OrderStatus = "on_the_way"
	// StatusDelivered is a terminal state; actual_delivery is stamped on entry.
	StatusDelivered OrderStatus = "delivered"
	// StatusCancelled is a terminal state reachable from any non-terminal state.
	StatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCooking, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// nextStatuses is the authoritative transition table:
// pending → accepted → cooking → on_the_way → delivered,
// with cancelled reachable from every non-terminal state.
var nextStatuses = map[OrderStatus][]OrderStatus{
	StatusPending:  {StatusAccepted, StatusCancelled},
	StatusAccepted: {StatusCooking, StatusCancelled},
	StatusCooking:  {StatusOnTheWay, StatusCancelled},
	StatusOnTheWay: {StatusDelivered, StatusCancelled},
}

// CanTransitionTo reports whether a single-step transition from s to target is allowed.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range nextStatuses[s] {
		if next == target {
			return true
		}
	}

	return false
}

// NextStatuses returns all states reachable from s in one step.
func (s OrderStatus) NextStatuses() []OrderStatus {
	return nextStatuses[s]
}
