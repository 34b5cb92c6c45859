package errors

import (
	"strings"
	"unicode"
)

// MaxTokenLength bounds a single coordinate token. A token longer than the
// symbol set capacity necessarily repeats symbols, but repetition is legal, so
// the bound only guards against runaway input.
const MaxTokenLength = 4096

// ValidateToken validates a single coordinate token from seed input.
//
// Tokens are strings of symbol bytes. The validation rules are:
//   - No empty tokens (an empty coordinate can never appear in a line)
//   - No whitespace or control characters (whitespace separates tokens)
//   - No '#' (reserved for comments in the seed format)
//   - ASCII only, since each byte is one symbol
func ValidateToken(token string) error {
	if token == "" {
		return New(ErrCodeEmptyCoordinate, "coordinate cannot be empty")
	}

	if len(token) > MaxTokenLength {
		return New(ErrCodeInvalidInput, "coordinate too long (max %d symbols)", MaxTokenLength)
	}

	for _, r := range token {
		switch {
		case r > unicode.MaxASCII:
			return New(ErrCodeInvalidInput, "coordinate %q contains non-ASCII symbol %q", token, r)
		case unicode.IsSpace(r), unicode.IsControl(r):
			return New(ErrCodeInvalidInput, "coordinate %q contains invalid control characters", token)
		case r == '#':
			return New(ErrCodeInvalidInput, "coordinate %q contains reserved symbol '#'", token)
		}
	}

	return nil
}

// ValidatePath validates a file path passed on the command line or in a
// config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
