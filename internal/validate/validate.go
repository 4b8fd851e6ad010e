package validate

import (
	"regexp"
	"strings"
)

// Shape check only: non-whitespace local part, one @, a dot in the domain.
// Deliverability is not our problem.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(s string) bool {
	return s != "" && emailRe.MatchString(s)
}

// Required reports whether every value is non-empty after trimming.
func Required(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
