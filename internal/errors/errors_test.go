package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSetupError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SetupError
		expected string
	}{
		{
			name: "message only",
			err: &SetupError{
				Code:    ErrCodeValidation,
				Message: "invalid input",
			},
			expected: "invalid input",
		},
		{
			name: "with step and message",
			err: &SetupError{
				Code:    ErrCodeNginx,
				Message: "config test failed",
				Step:    "validate nginx config",
			},
			expected: "validate nginx config: config test failed",
		},
		{
			name: "with underlying error",
			err: &SetupError{
				Code:    ErrCodeConfig,
				Message: "failed to load",
				Err:     fmt.Errorf("file not found"),
			},
			expected: "failed to load: file not found",
		},
		{
			name: "with step and underlying error",
			err: &SetupError{
				Code: ErrCodePkg,
				Step: "install nginx",
				Err:  fmt.Errorf("apt-get exited with status 100"),
			},
			expected: "install nginx: apt-get exited with status 100",
		},
		{
			name: "step only",
			err: &SetupError{
				Code: ErrCodeNginx,
				Step: "restart nginx",
			},
			expected: "restart nginx failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestSetupError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	err := &SetupError{
		Code:    ErrCodeConfig,
		Message: "wrapped error",
		Err:     underlying,
	}

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() did not return underlying error")
	}

	errNoWrap := &SetupError{
		Code:    ErrCodeValidation,
		Message: "no underlying",
	}

	if errNoWrap.Unwrap() != nil {
		t.Errorf("Unwrap() should return nil when no underlying error")
	}
}

func TestSetupError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "same code matches",
			err:      Step(ErrCodePlatform, "detect os", fmt.Errorf("no os-release")),
			target:   ErrUnsupportedOS,
			expected: true,
		},
		{
			name:     "different code does not match",
			err:      Step(ErrCodeNginx, "install nginx", fmt.Errorf("boom")),
			target:   ErrUnsupportedOS,
			expected: false,
		},
		{
			name:     "non-SetupError target does not match",
			err:      Validation("bad domain"),
			target:   fmt.Errorf("bad domain"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.expected {
				t.Errorf("errors.Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSetupError_As(t *testing.T) {
	err := Wrap(ErrCodeSSL, "certbot failed", fmt.Errorf("exit status 1"))

	var setupErr *SetupError
	if !errors.As(err, &setupErr) {
		t.Fatal("errors.As() should match *SetupError")
	}
	if setupErr.Code != ErrCodeSSL {
		t.Errorf("expected code %s, got %s", ErrCodeSSL, setupErr.Code)
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  *SetupError
		code ErrorCode
	}{
		{"ErrUnsupportedOS", ErrUnsupportedOS, ErrCodePlatform},
		{"ErrNginxMissing", ErrNginxMissing, ErrCodeNginx},
		{"ErrCertbotMissing", ErrCertbotMissing, ErrCodeSSL},
		{"ErrInvalidDomain", ErrInvalidDomain, ErrCodeValidation},
		{"ErrInvalidEmail", ErrInvalidEmail, ErrCodeValidation},
		{"ErrSiteNotFound", ErrSiteNotFound, ErrCodeNginx},
		{"ErrConfigInvalid", ErrConfigInvalid, ErrCodeConfig},
		{"ErrRootRequired", ErrRootRequired, ErrCodePermission},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err.Code != s.code {
				t.Errorf("expected code %s, got %s", s.code, s.err.Code)
			}
			if s.err.Message == "" {
				t.Error("sentinel error should have a message")
			}
		})
	}
}
