package schema

import (
	"regexp"
	"strconv"
	"strings"
)

// Validation messages shared by the SDK wizard and server-side checks
const (
	MsgRequired      = "required"
	MsgInvalidEmail  = "invalid email address"
	MsgInvalidNumber = "invalid number"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateFields checks every field of a step against the submitted values
// and returns all failures at once, keyed by field name. An empty map means
// the step passes.
func ValidateFields(fields []FieldSpec, values map[string]string) map[string]string {
	errs := make(map[string]string)

	for _, f := range fields {
		value := strings.TrimSpace(values[f.Name])

		if value == "" {
			if f.Required {
				errs[f.Name] = MsgRequired
			}
			continue
		}

		switch f.Type {
		case FieldEmail:
			if !emailPattern.MatchString(value) {
				errs[f.Name] = MsgInvalidEmail
			}
		case FieldNumber:
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				errs[f.Name] = MsgInvalidNumber
			}
		}
	}

	return errs
}
