// Package validate normalizes and validates the user-supplied fields of
// registration and login requests.
package validate

import (
	"html"
	"net/mail"
	"regexp"
	"strings"

	"github.com/sgurov/authgate/internal/common"
)

// MinPasswordLength is the password policy minimum.
const MinPasswordLength = 8

// Domain label: alphanumeric, optional inner hyphens, max 63 chars.
var domainLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// Email checks that addr conforms to ordinary address grammar: a single
// local-part@domain with at least two valid domain labels. Display names,
// comments and bare hostnames are rejected.
func Email(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return common.ErrorInvalidEmail
	}

	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return common.ErrorInvalidEmail
	}

	at := strings.LastIndex(addr, "@")
	domain := addr[at+1:]

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return common.ErrorInvalidEmail
	}
	for _, label := range labels {
		if !domainLabelRegex.MatchString(label) {
			return common.ErrorInvalidEmail
		}
	}

	return nil
}

// NormalizeEmail returns the canonical form used for uniqueness comparison:
// surrounding whitespace trimmed and the whole address lower-cased. The same
// normalization must be applied on every lookup path.
func NormalizeEmail(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// Password enforces the password strength policy.
func Password(plaintext string) error {
	if len(plaintext) < MinPasswordLength {
		return common.ErrorWeakPassword
	}
	return nil
}

// SanitizeUsername neutralizes HTML-special characters before storage so a
// stored name cannot inject markup into downstream rendering contexts.
func SanitizeUsername(name string) string {
	return html.EscapeString(strings.TrimSpace(name))
}
