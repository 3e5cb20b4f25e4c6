package application

import (
	"errors"
	"fmt"

	"github.com/labops/labstock/internal/domains/inventory/domain"
	"github.com/labops/labstock/internal/shared/validation"
)

// ErrNotFound signals the operation target is missing from the
// registry; in normal flow it indicates a desynchronized caller.
var ErrNotFound = errors.New("inventory item not found")

// ParseError reports a raw field that is not numeric. It is surfaced
// before the business rules run, so a garbled field never reaches them.
type ParseError struct {
	Field string
	Raw   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("field %s: %q is not a number", e.Field, e.Raw)
}

// ValidationError carries the ordered rule violations for a rejected
// form submission. State is guaranteed unchanged.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Violations.Error()
}

// Messages exposes the violations verbatim, in rule order.
func (e *ValidationError) Messages() []string {
	return e.Violations.Messages()
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrItemNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
