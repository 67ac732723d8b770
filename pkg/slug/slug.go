// Package slug builds URL-safe identifiers from display names.
package slug

import "strings"

// Generate lowercases the name and collapses every run of non-alphanumeric
// characters into a single dash. "Garden Chairs & Tables" -> "garden-chairs-tables".
func Generate(name string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
