package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/labops/labstock/internal/domains/contact/domain"
	"github.com/labops/labstock/internal/shared/validation"
)

// ValidationError carries the ordered contact rule violations.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	return "contact form rejected: " + e.Violations.Error()
}

// Messages exposes the violations verbatim, in rule order.
func (e *ValidationError) Messages() []string {
	return e.Violations.Messages()
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID          string
	SubmittedAt time.Time
	Status      string
}

// Service accepts contact-form submissions. Messages are acknowledged,
// not stored: the flow ends with the receipt.
type Service struct {
	now func() time.Time
}

// NewService builds the contact service.
func NewService() *Service {
	return &Service{now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (s *Service) WithClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Submit validates the message and issues a receipt.
func (s *Service) Submit(_ context.Context, message domain.Message) (*Receipt, error) {
	if violations := message.Validate(); !violations.Empty() {
		return nil, &ValidationError{Violations: violations}
	}
	return &Receipt{
		ID:          uuid.NewString(),
		SubmittedAt: s.now(),
		Status:      "Message Submitted. Awaiting response.",
	}, nil
}
