// Package errors provides standardized error types for the tribenest
// deployment CLI.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the provisioning pipeline.
//
// # Error Types
//
// SetupError is the primary error type, containing:
//   - Code: Categorizes the error (PLATFORM, PKG, NGINX, etc.)
//   - Message: Human-readable error description
//   - Step: The pipeline step that failed (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Sentinel Errors
//
// Common error scenarios have pre-defined sentinel errors:
//
//	errors.ErrUnsupportedOS    // no supported package manager found
//	errors.ErrNginxMissing     // nginx binary not found after install
//	errors.ErrCertbotMissing   // certbot binary not found after install
//	errors.ErrRootRequired     // root access required
//
// # Usage
//
// Creating pipeline errors:
//
//	// Step failure with underlying error
//	return errors.Step(errors.ErrCodeNginx, "install nginx", err)
//
//	// Validation error
//	return errors.Validation("domain cannot be empty")
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrUnsupportedOS) {
//	    // Handle unsupported platform
//	}
//
// Use errors.As for type assertion:
//
//	var setupErr *errors.SetupError
//	if errors.As(err, &setupErr) {
//	    fmt.Printf("Error code: %s, Step: %s\n", setupErr.Code, setupErr.Step)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeValidation ErrorCode = "VALIDATION" // Input validation failed
	ErrCodePlatform   ErrorCode = "PLATFORM"   // OS/distro detection error
	ErrCodePkg        ErrorCode = "PKG"        // Package manager error
	ErrCodeNginx      ErrorCode = "NGINX"      // nginx install/config/service error
	ErrCodeSSL        ErrorCode = "SSL"        // certbot/certificate error
	ErrCodeConfig     ErrorCode = "CONFIG"     // Deployment record error
	ErrCodePermission ErrorCode = "PERMISSION" // Permission denied
	ErrCodeInternal   ErrorCode = "INTERNAL"   // Internal/unexpected error
)

// SetupError represents a structured error with context about the
// provisioning step that produced it.
type SetupError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Step    string    // Pipeline step name (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *SetupError) Error() string {
	if e.Step != "" && e.Err != nil {
		if e.Message == "" {
			return fmt.Sprintf("%s: %v", e.Step, e.Err)
		}
		return fmt.Sprintf("%s: %s: %v", e.Step, e.Message, e.Err)
	}
	if e.Step != "" && e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Step, e.Message)
	}
	if e.Step != "" {
		return fmt.Sprintf("%s failed", e.Step)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *SetupError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *SetupError) Is(target error) bool {
	t, ok := target.(*SetupError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrUnsupportedOS indicates no supported package manager was detected.
	ErrUnsupportedOS = &SetupError{Code: ErrCodePlatform, Message: "unsupported operating system"}

	// ErrNginxMissing indicates the nginx binary was not found.
	ErrNginxMissing = &SetupError{Code: ErrCodeNginx, Message: "nginx is not installed"}

	// ErrCertbotMissing indicates the certbot binary was not found.
	ErrCertbotMissing = &SetupError{Code: ErrCodeSSL, Message: "certbot is not installed"}

	// ErrInvalidDomain indicates the domain name is not valid.
	ErrInvalidDomain = &SetupError{Code: ErrCodeValidation, Message: "invalid domain"}

	// ErrInvalidEmail indicates the email address is not valid.
	ErrInvalidEmail = &SetupError{Code: ErrCodeValidation, Message: "invalid email"}

	// ErrSiteNotFound indicates the tribenest site config does not exist.
	ErrSiteNotFound = &SetupError{Code: ErrCodeNginx, Message: "site config not found"}

	// ErrConfigInvalid indicates the deployment record is invalid or corrupt.
	ErrConfigInvalid = &SetupError{Code: ErrCodeConfig, Message: "invalid deployment record"}

	// ErrRootRequired indicates root privileges are required.
	ErrRootRequired = &SetupError{Code: ErrCodePermission, Message: "root privileges required"}
)

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &SetupError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Step creates an error for a failed pipeline step.
func Step(code ErrorCode, step string, err error) error {
	return &SetupError{
		Code: code,
		Step: step,
		Err:  err,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &SetupError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
