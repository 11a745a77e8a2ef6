package middleware

import (
	"fmt"
	"strings"
	"unicode"
)

// Input validation for citizen-supplied request fields.

const maxLocationLen = 120

// ValidateDirection checks the vote direction argument.
func ValidateDirection(dir string) error {
	switch dir {
	case "up", "down":
		return nil
	}
	return fmt.Errorf("invalid direction: %q (allowed: up, down)", dir)
}

// ValidateLocation checks a crawl search query. The string is forwarded
// verbatim into an AI prompt, so control characters are rejected.
func ValidateLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return fmt.Errorf("location cannot be empty")
	}
	if len(location) > maxLocationLen {
		return fmt.Errorf("location too long (max %d characters)", maxLocationLen)
	}
	for _, r := range location {
		if unicode.IsControl(r) {
			return fmt.Errorf("location contains control characters")
		}
	}
	return nil
}

// ValidateBudget rejects negative amounts.
func ValidateBudget(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("budget cannot be negative")
	}
	return nil
}
