package orchestrator

import "errors"

// Failure classes of order creation. Every remote-call failure is mapped to
// one of these at the point of the call; the HTTP layer translates them with
// errors.Is.
var (
	ErrValidation  = errors.New("validation")  // 400: malformed or missing client input
	ErrReference   = errors.New("reference")   // 400: unknown customer/product, or out of stock
	ErrUnavailable = errors.New("unavailable") // 503: a collaborator could not be reached
	ErrPersistence = errors.New("persistence") // 500: the order service rejected the write
)
