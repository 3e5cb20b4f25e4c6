// Package validation carries the ordered violation list shared by the
// form-style rule sets. An empty list means the input is valid.
package validation

import "strings"

// Violations is an ordered list of human-readable rule violations.
type Violations []string

// Add appends a violation message.
func (v *Violations) Add(message string) {
	*v = append(*v, message)
}

// AddWhen appends the message only when the condition holds.
func (v *Violations) AddWhen(condition bool, message string) {
	if condition {
		v.Add(message)
	}
}

// Empty reports whether every rule passed.
func (v Violations) Empty() bool {
	return len(v) == 0
}

// Error renders all messages in rule order so they can be surfaced
// verbatim to the submitting user.
func (v Violations) Error() string {
	return strings.Join(v, "; ")
}

// Messages returns the underlying list for transport layers.
func (v Violations) Messages() []string {
	return append([]string(nil), v...)
}
