package service

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizePassword trims the password and applies Unicode NFKD, so the
// same human password always yields the same bytes at the backend.
func normalizePassword(password string) []byte {
	return []byte(norm.NFKD.String(strings.TrimSpace(password)))
}
