// Package validation implements client-side, field-level validation of form
// payloads before they are submitted to the backend. A failed validation
// never reaches the network.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aahadaazar/patients-app/internal/common"
)

// FieldErrors maps a field name to a user-facing validation message.
// It implements error and unwraps to common.ErrValidation so callers can
// match the whole class with errors.Is.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fe))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return strings.Join(parts, "; ")
}

func (fe FieldErrors) Unwrap() error {
	return common.ErrValidation
}

// Messages returns the per-field messages in stable field order, ready to be
// rendered next to a form.
func (fe FieldErrors) Messages() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fe))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return msgs
}
