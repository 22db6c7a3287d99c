// Package barcode provides canonicalization of raw scanned or typed codes.
package barcode

import "strings"

// Normalize returns the canonical, comparable form of a scanned code: every
// character that is not a decimal digit is stripped. Empty input yields an
// empty string rather than an error; emptiness means "no barcode provided"
// and is checked by callers.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
