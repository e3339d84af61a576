package util

import "strings"

// MaskSecret renders a credential for display without revealing it. Short
// values mask entirely; longer ones keep the last four characters so a user
// can tell which token is loaded.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
