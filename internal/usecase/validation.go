package usecase

import "net/mail"

// ValidateEmail checks that the address parses as a single RFC 5322 address.
// Malformed identifiers are treated as "not found" by lookups, never
// propagated as errors.
func ValidateEmail(address string) bool {
	if address == "" {
		return false
	}
	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return false
	}
	return parsed.Address == address
}
