package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEntityNotFound is returned when a projector references an entity that
	// should already exist (a pot, list or application created by an earlier
	// event) but does not. It marks a data-consistency problem for that single
	// event; sibling events in the block keep processing.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrPriceUnavailable is returned when a donation cannot be valued in USD:
	// the live price lookup failed and no cached price exists for the token.
	// It is a transient condition, distinct from decode errors, eligible for
	// later reconciliation.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrBlockOutOfOrder is returned when the block stream violates the
	// strictly-increasing order contract.
	ErrBlockOutOfOrder = errors.New("block out of order")
)

// DecodeError reports a malformed argument or result payload, attributable to
// the specific action that carried it.
type DecodeError struct {
	ReceiptID string
	Method    string
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s (receipt %s): %v", e.Method, e.ReceiptID, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError wraps err with the action context required by the error
// taxonomy.
func NewDecodeError(receiptID, method string, err error) *DecodeError {
	return &DecodeError{ReceiptID: receiptID, Method: method, Err: err}
}
