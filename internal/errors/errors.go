// Package errors defines the typed failures surfaced by every tembo
// operation. Each failure kind has a code and carries the payload a caller
// needs to phrase its message: the offending path, the scope or key name, or
// the expected/given token counts.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code identifies a failure kind.
type Code string

const (
	// Page creation failures.
	CodeBasePathMissing Code = "BASE_PATH_MISSING"
	CodeTemplateMissing Code = "TEMPLATE_MISSING"
	CodeTokenMismatch   Code = "TOKEN_COUNT_MISMATCH"

	// Persistence failures.
	CodePageExists     Code = "PAGE_ALREADY_EXISTS"
	CodeStorageFailure Code = "STORAGE_FAILURE"

	// Configuration failures.
	CodeScopeNotFound       Code = "SCOPE_NOT_FOUND"
	CodeConfigEmpty         Code = "CONFIG_EMPTY"
	CodeConfigMissing       Code = "CONFIG_MISSING"
	CodeMandatoryKeyMissing Code = "MANDATORY_KEY_MISSING"
	CodeConfigInvalid       Code = "CONFIG_INVALID"
)

// AppError is the error type returned across package boundaries.
type AppError struct {
	Code    Code
	Message string

	// Path is the offending filesystem path for path-shaped failures
	// (base path, template file, page file, config directory).
	Path string

	// Scope and Key name the missing scope or config key.
	Scope string
	Key   string

	// Expected and Given carry the token counts for CodeTokenMismatch.
	Expected int
	Given    int

	Cause error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError with the given code and message.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// BasePathMissing reports that the configured base path does not exist. The
// path is reported as configured, before home expansion.
func BasePathMissing(path string) *AppError {
	return &AppError{
		Code:    CodeBasePathMissing,
		Message: fmt.Sprintf("Tembo base path of %s does not exist.", path),
		Path:    path,
	}
}

// TemplateMissing reports that a configured template file is absent, naming
// the resolved full path.
func TemplateMissing(fullPath string) *AppError {
	return &AppError{
		Code:    CodeTemplateMissing,
		Message: fmt.Sprintf("Template file %s does not exist.", fullPath),
		Path:    fullPath,
	}
}

// TokenMismatch reports that the number of distinct input tokens differs from
// the number of user-supplied values.
func TokenMismatch(expected, given int) *AppError {
	return &AppError{
		Code:     CodeTokenMismatch,
		Message:  fmt.Sprintf("expected %d input tokens, given %d", expected, given),
		Expected: expected,
		Given:    given,
	}
}

// PageExists reports that the destination file is already present.
func PageExists(path string) *AppError {
	return &AppError{
		Code:    CodePageExists,
		Message: fmt.Sprintf("%s already exists", path),
		Path:    path,
	}
}

// ScopeNotFound reports that the requested scope is absent from a non-empty
// configuration.
func ScopeNotFound(scope string) *AppError {
	return &AppError{
		Code:    CodeScopeNotFound,
		Message: fmt.Sprintf("Scope %s not found in config.yml", scope),
		Scope:   scope,
	}
}

// ConfigEmpty reports a config.yml that exists but defines no scopes.
func ConfigEmpty(configPath string) *AppError {
	return &AppError{
		Code:    CodeConfigEmpty,
		Message: fmt.Sprintf("Config.yml found in %s is empty", configPath),
		Path:    configPath,
	}
}

// ConfigMissing reports that no config.yml was found.
func ConfigMissing(configPath string) *AppError {
	return &AppError{
		Code:    CodeConfigMissing,
		Message: fmt.Sprintf("No config.yml found in %s", configPath),
		Path:    configPath,
	}
}

// MandatoryKeyMissing reports a scope entry that lacks a required key.
func MandatoryKeyMissing(key string) *AppError {
	return &AppError{
		Code:    CodeMandatoryKeyMissing,
		Message: fmt.Sprintf("Key '%s' not found in config.yml", key),
		Key:     key,
	}
}

// GetAppError extracts an AppError from err, or wraps err as a storage
// failure if it is some other error type.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeStorageFailure, err.Error())
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code Code) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
