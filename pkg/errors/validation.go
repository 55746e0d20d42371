package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// Identifier limits.
const (
	MaxTaskIDLength    = 128
	MaxProjectIDLength = 128
	MaxPathLength      = 4096
)

// ValidateTaskID checks a task id supplied from outside (a focus argument, a
// query parameter). Task ids from the store are not validated: the engine
// accepts whatever the store holds.
//
// Rules:
//   - not empty
//   - at most MaxTaskIDLength bytes
//   - no control characters
func ValidateTaskID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidTask, "task id cannot be empty")
	}
	if len(id) > MaxTaskIDLength {
		return New(ErrCodeInvalidTask, "task id too long (max %d characters)", MaxTaskIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTask, "task id contains invalid control characters")
		}
	}
	return nil
}

// projectIDRegex matches store project ids: hex object ids and slugs.
var projectIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateProjectID checks a project id before it reaches the task store.
func ValidateProjectID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "project id cannot be empty")
	}
	if len(id) > MaxProjectIDLength {
		return New(ErrCodeInvalidInput, "project id too long (max %d characters)", MaxProjectIDLength)
	}
	if !projectIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid project id: %q", id)
	}
	return nil
}

// ValidatePath checks a local file path given on the command line or in the
// configuration file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of MaxPathLength characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > MaxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", MaxPathLength)
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateFormat checks that format is one of allowed (case-insensitive) and
// returns it lower-cased.
func ValidateFormat(format string, allowed ...string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
	}
	return "", New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
}
