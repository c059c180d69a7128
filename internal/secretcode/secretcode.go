// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretcode

import (
	"crypto/sha1"
	"encoding/hex"
	"regexp"
	"strings"
)

const (
	kdkHexLength = 32
	prefixLength = 5

	// FallbackPrefix is used when the user's subject cannot be resolved.
	FallbackPrefix = "00000"
)

// group lengths of the display form; they add up to 37
var groups = []int{5, 6, 5, 5, 5, 5, 6}

var separators = regexp.MustCompile(`[-, ]`)

// Format returns the display form of a raw 37-character code. ok is false
// when raw has any other length.
func Format(raw string) (formatted string, ok bool) {
	if len(raw) != prefixLength+kdkHexLength {
		return "", false
	}

	upper := strings.ToUpper(raw)
	parts := make([]string, 0, len(groups))
	start := 0
	for _, n := range groups {
		parts = append(parts, upper[start:start+n])
		start += n
	}

	return strings.Join(parts, "-"), true
}

// Parse extracts the key deriving key from a code in any of its accepted
// forms. Hyphens, commas and spaces are ignored, and only the last 32 hex
// characters are used, so the subscriber prefix is optional. ok is false
// when fewer than 32 characters remain or they are not hex.
func Parse(code string) (kdk []byte, ok bool) {
	stripped := separators.ReplaceAllString(code, "")
	if len(stripped) < kdkHexLength {
		return nil, false
	}

	kdk, err := hex.DecodeString(stripped[len(stripped)-kdkHexLength:])
	if err != nil {
		return nil, false
	}
	return kdk, true
}

// SubscriberPrefix returns the first five hex characters of SHA-1(subject),
// or [FallbackPrefix] when subject is empty. Code generation never fails on
// a missing subject.
func SubscriberPrefix(subject string) string {
	if subject == "" {
		return FallbackPrefix
	}

	sum := sha1.Sum([]byte(subject))
	return hex.EncodeToString(sum[:])[:prefixLength]
}

// Build renders the display code for kdk under the given subject. ok is
// false when kdk is not a 128-bit key.
func Build(kdk []byte, subject string) (string, bool) {
	return Format(SubscriberPrefix(subject) + hex.EncodeToString(kdk))
}
