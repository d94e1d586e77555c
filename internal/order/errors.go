package order

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when no order exists for the given id.
	ErrNotFound = errors.New("order not found")

	ErrOwnerRequired       = errors.New("order owner is required")
	ErrItemsRequired       = errors.New("order must contain at least one item")
	ErrItemNameRequired    = errors.New("order item name is required")
	ErrItemQtyInvalid      = errors.New("order item qty must be greater than zero")
	ErrItemImageRequired   = errors.New("order item image is required")
	ErrItemPriceInvalid    = errors.New("order item price must be non-negative")
	ErrItemProductRequired = errors.New("order item product reference is required")
	ErrPriceNegative       = errors.New("tax, shipping and total prices must be non-negative")
)

// ValidationError carries every creation rule the request violated. It maps
// to a 400 response; the message is safe to show to the caller.
type ValidationError struct {
	Reasons []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Reasons))
	for _, r := range e.Reasons {
		msgs = append(msgs, r.Error())
	}
	return strings.Join(msgs, "; ")
}

// Is reports whether any collected reason matches target, so callers can
// test for a specific rule with errors.Is.
func (e *ValidationError) Is(target error) bool {
	for _, r := range e.Reasons {
		if errors.Is(r, target) {
			return true
		}
	}
	return false
}

// IsValidation reports whether err is a creation-rule violation.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
