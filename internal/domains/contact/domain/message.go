package domain

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/labops/labstock/internal/shared/validation"
)

// requiredSecurityCode is the fixed code the form must echo back.
const requiredSecurityCode = 100

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	rollPattern  = regexp.MustCompile(`^[A-Z0-9]{3,8}$`)
)

// Message is one contact-form submission as the user typed it.
type Message struct {
	FullName     string
	Email        string
	RollNumber   string
	SecurityCode string
	Body         string
}

// Validate runs the contact rule set and returns the ordered
// violations; an empty list means the message may be submitted.
func (m Message) Validate() validation.Violations {
	var v validation.Violations
	v.AddWhen(len(strings.TrimSpace(m.FullName)) < 3, "Full Name must be at least 3 characters.")
	v.AddWhen(!emailPattern.MatchString(strings.TrimSpace(m.Email)), "Invalid Email format.")
	v.AddWhen(!rollPattern.MatchString(strings.TrimSpace(m.RollNumber)), "Roll/Employee ID must be 3-8 uppercase letters/numbers.")
	code, err := strconv.Atoi(strings.TrimSpace(m.SecurityCode))
	v.AddWhen(err != nil || code != requiredSecurityCode, "Security Code must be a 3 digit number.")
	v.AddWhen(wordCount(m.Body) < 5, "Detailed Message must contain at least 5 words.")
	return v
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
