package cli

import (
	"testing"
)

func TestValidateDomain(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		wantErr bool
	}{
		{"valid simple domain", "example.com", false},
		{"valid subdomain", "app.example.com", false},
		{"valid with hyphen", "my-site.example.com", false},
		{"valid with numbers", "api123.example.com", false},
		{"empty domain", "", true},
		{"domain with space", "example .com", true},
		{"starts with hyphen", "-example.com", true},
		{"ends with hyphen", "example.com-", true},
		{"no dot", "localhost", true},
		{"explicit wildcard", "*.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDomain(tt.domain)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDomain(%q) error = %v, wantErr %v", tt.domain, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "admin@example.com", false},
		{"valid with plus", "admin+le@example.com", false},
		{"empty", "", true},
		{"no at sign", "admin.example.com", true},
		{"empty local part", "@example.com", true},
		{"empty host part", "admin@", true},
		{"contains space", "admin @example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUpstream(t *testing.T) {
	tests := []struct {
		name     string
		upstream string
		want     string
		wantErr  bool
	}{
		{"valid http url", "http://127.0.0.1:3000", "http://127.0.0.1:3000", false},
		{"valid https url", "https://app.internal:8443", "https://app.internal:8443", false},
		{"host:port gets scheme", "127.0.0.1:3000", "http://127.0.0.1:3000", false},
		{"localhost:port gets scheme", "localhost:8080", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"bad scheme", "ftp://files.example.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateUpstream(tt.upstream)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateUpstream(%q) error = %v, wantErr %v", tt.upstream, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("validateUpstream(%q) = %q, want %q", tt.upstream, got, tt.want)
			}
		})
	}
}

func TestNewSuccessResult(t *testing.T) {
	result := newSuccessResult("example.com", "setup")

	if !result.Success {
		t.Error("expected Success to be true")
	}
	if result.Domain != "example.com" {
		t.Errorf("expected domain example.com, got %s", result.Domain)
	}
	if result.Action != "setup" {
		t.Errorf("expected action setup, got %s", result.Action)
	}
}
