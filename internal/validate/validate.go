package validate

import (
	"regexp"
	"strconv"
	"strings"
)

const MaxUsernameLen = 20

var (
	reUsername = regexp.MustCompile(`^[a-z0-9_]+$`)
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID       = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Username normalizes a raw identifier: lower-case, strip everything outside
// [a-z0-9_], cap at MaxUsernameLen. Total; never fails. Applied both to form
// input and to the :username path segment on catalog lookups.
func Username(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
		if b.Len() == MaxUsernameLen {
			break
		}
	}
	return b.String()
}

// UsernameValid asserts the post-normalization shape.
func UsernameValid(s string) bool {
	return reUsername.MatchString(s)
}

// Phone strips every non-digit rune. No length rule here; the registration
// validator enforces the minimum.
func Phone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces the minimum secret length. The upper bound keeps the
// secret inside bcrypt's 72-byte input limit.
func Password(s string) bool {
	return len(s) >= 6 && len(s) <= 72
}

// Price accepts a decimal-as-text amount; a comma decimal separator is
// rewritten to a dot so stored values parse. Returns the normalized text.
func Price(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 20 {
		return "", false
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 {
		return "", false
	}
	return s, true
}

// Name validates a displayable product name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// DisplayName validates an optional seller name (empty is fine).
func DisplayName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) <= 80
}

// Text trims free-form text (descriptions, service notes) to a byte budget.
func Text(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) > max {
		s = s[:max]
	}
	return s
}

// ID validates a simple resource identifier (product keys).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}
