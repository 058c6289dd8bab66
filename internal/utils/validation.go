package utils

import (
	"errors"
	"regexp"
)

// Compiled regular expressions for validation
var (
	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)
)

// ValidateQuery validates search query strings
func ValidateQuery(query string) error {
	if len(query) < 2 {
		return errors.New("query too short (min 2 characters)")
	}

	if len(query) > 200 {
		return errors.New("query too long (max 200 characters)")
	}

	// Check for dangerous characters that could indicate injection attempts
	if dangerousPattern.MatchString(query) {
		return errors.New("query contains invalid characters")
	}

	return nil
}

// ValidateStopName validates a stop name supplied in a request path or body.
// Stop names contain spaces, hyphens and slashes ("G-7 / G-8"), so this only
// bounds length and rejects injection patterns.
func ValidateStopName(name string) error {
	if name == "" {
		return errors.New("stop name cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("stop name too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("stop name contains invalid characters")
	}

	return nil
}
