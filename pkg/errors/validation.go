package errors

import (
	"strings"
	"unicode"
)

// ValidatePackageName validates a package or repository name for safety.
// It rejects names that could be used for path traversal or injection when
// interpolated into upstream API URLs.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //)
//   - No null bytes or backslashes
//   - Maximum length of 256 characters
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateOwnerRepo validates an owner/repository pair for use in upstream
// API paths. Both components must individually pass ValidatePackageName and
// must not contain slashes.
func ValidateOwnerRepo(owner, repo string) error {
	for _, part := range []string{owner, repo} {
		if err := ValidatePackageName(part); err != nil {
			return err
		}
		if strings.Contains(part, "/") {
			return New(ErrCodeInvalidPackage, "owner and repo must not contain slashes")
		}
	}
	return nil
}

// ValidateSearchQuery validates a search query string.
// Empty queries are rejected; overly long queries are rejected to keep
// upstream request URLs bounded.
func ValidateSearchQuery(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return New(ErrCodeInvalidQuery, "search query cannot be empty")
	}
	if len(query) > 256 {
		return New(ErrCodeInvalidQuery, "search query too long (max 256 characters)")
	}
	for _, r := range query {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidQuery, "search query contains invalid control characters")
		}
	}
	return nil
}
