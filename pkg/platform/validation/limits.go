package validation

import (
	"fmt"

	dErrors "contractease/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed request body size (256 KB).
	// Signature image payloads are base64 data URLs, so the ceiling is higher
	// than a plain JSON API would need.
	MaxBodySize = 256 * 1024
)

// String element length limits
const (
	// MaxTitleLength is the maximum length of a contract title.
	MaxTitleLength = 200

	// MaxTypeLength is the maximum length of a contract type label.
	MaxTypeLength = 100

	// MaxDescriptionLength is the maximum length of a contract description.
	MaxDescriptionLength = 2000

	// MaxNameLength is the maximum length of a person or organization name.
	MaxNameLength = 100

	// MaxEmailLength is the maximum length of an email address.
	MaxEmailLength = 255

	// MaxSignatureImageLength is the maximum length of a base64-encoded
	// signature image payload.
	MaxSignatureImageLength = 200 * 1024

	// MinPasswordLength is the minimum length of an account password.
	MinPasswordLength = 8

	// MaxPasswordLength is the maximum length of an account password.
	// bcrypt truncates input beyond 72 bytes, so longer passwords are rejected
	// rather than silently shortened.
	MaxPasswordLength = 72
)

// CheckRequired validates that a string field is non-empty.
func CheckRequired(fieldName, value string) error {
	if value == "" {
		return dErrors.New(dErrors.CodeValidation, fieldName+" is required")
	}
	return nil
}

// CheckMaxLength validates that a string does not exceed the maximum length.
func CheckMaxLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("%s exceeds maximum length of %d characters", fieldName, max))
	}
	return nil
}
