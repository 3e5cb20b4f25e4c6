package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/labops/labstock/internal/domains/contact/domain"
)

func validMessage() domain.Message {
	return domain.Message{
		FullName:     "Asha Deshmukh",
		Email:        "asha@example.com",
		RollNumber:   "EMP42",
		SecurityCode: "100",
		Body:         "The oscilloscope probe stock page is wrong.",
	}
}

func TestSubmit_IssuesReceipt(t *testing.T) {
	svc := NewService()
	fixed := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return fixed })

	receipt, err := svc.Submit(context.Background(), validMessage())
	require.NoError(t, err)
	require.Equal(t, fixed, receipt.SubmittedAt)
	require.Equal(t, "Message Submitted. Awaiting response.", receipt.Status)
	_, err = uuid.Parse(receipt.ID)
	require.NoError(t, err)
}

func TestSubmit_CollectsViolationsInRuleOrder(t *testing.T) {
	svc := NewService()

	msg := domain.Message{
		FullName:     "Al",
		Email:        "not-an-email",
		RollNumber:   "ab",
		SecurityCode: "99",
		Body:         "too short",
	}
	_, err := svc.Submit(context.Background(), msg)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{
		"Full Name must be at least 3 characters.",
		"Invalid Email format.",
		"Roll/Employee ID must be 3-8 uppercase letters/numbers.",
		"Security Code must be a 3 digit number.",
		"Detailed Message must contain at least 5 words.",
	}, verr.Messages())
}

func TestSubmit_SecurityCodeMustMatchExactly(t *testing.T) {
	svc := NewService()

	msg := validMessage()
	msg.SecurityCode = "123"
	_, err := svc.Submit(context.Background(), msg)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"Security Code must be a 3 digit number."}, verr.Messages())
}

func TestSubmit_RollNumberFormat(t *testing.T) {
	svc := NewService()

	for _, roll := range []string{"EMP42", "ABC", "12345678", "A1B2C3"} {
		msg := validMessage()
		msg.RollNumber = roll
		_, err := svc.Submit(context.Background(), msg)
		require.NoError(t, err, "roll %q should be accepted", roll)
	}

	for _, roll := range []string{"ab", "emp42", "TOOLONGROLL", "EM P42"} {
		msg := validMessage()
		msg.RollNumber = roll
		_, err := svc.Submit(context.Background(), msg)
		require.Error(t, err, "roll %q should be rejected", roll)
	}
}

func TestSubmit_BodyNeedsFiveWords(t *testing.T) {
	svc := NewService()

	msg := validMessage()
	msg.Body = "one two three four five"
	_, err := svc.Submit(context.Background(), msg)
	require.NoError(t, err)

	msg.Body = "one two three four"
	_, err = svc.Submit(context.Background(), msg)
	require.Error(t, err)
}
