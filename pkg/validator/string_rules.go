package validator

import (
	"fmt"
	"strings"
)

// MaxLen validates that value is at most max bytes long.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// NoWhitespace rejects values containing any space, tab or newline.
func NoWhitespace(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsAny(value, " \t\r\n")
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not contain whitespace",
		},
	}
}
