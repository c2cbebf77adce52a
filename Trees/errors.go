package Trees

import "strconv"

// MissingVisitorError is returned when a traversal is called with a nil Visitor.
type MissingVisitorError struct {
	Order Order
}

func (e *MissingVisitorError) Error() string {
	return "Trees: a visitor is required for " + e.Order.String() + " traversal"
}

// UnknownOrderError is returned by Traverse for an Order that isn't defined.
type UnknownOrderError struct {
	Order Order
}

func (e *UnknownOrderError) Error() string {
	return "Trees: unknown traversal order " + strconv.Itoa(int(e.Order))
}
