package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/drenathan/tribenest-deployment/internal/config"
	"github.com/drenathan/tribenest-deployment/internal/nginx"
	"github.com/drenathan/tribenest-deployment/internal/output"
	"github.com/drenathan/tribenest-deployment/internal/platform"
)

// detectHost identifies the distribution and builds the nginx service
// for its config layout
func detectHost() (*platform.Info, *nginx.Service, error) {
	info, err := deps.PlatformDetector.Detect()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to detect platform: %w", err)
	}
	if !info.Supported() {
		return nil, nil, fmt.Errorf("unsupported operating system: %s (debian or rhel family required)", info.PrettyName)
	}
	svc := deps.NginxFactory.Create(info)
	return info, svc, nil
}

// testAndReload tests the nginx config and reloads the service
func testAndReload(svc *nginx.Service, reload bool) error {
	output.Info("Testing nginx configuration...")
	if err := svc.Test(); err != nil {
		return fmt.Errorf("configuration test failed: %w", err)
	}

	if reload {
		output.Info("Reloading nginx...")
		if err := svc.Reload(); err != nil {
			return fmt.Errorf("failed to reload nginx: %w", err)
		}
	}

	return nil
}

// saveConfig saves the deployment record
func saveConfig(cfg *config.Config) error {
	if err := deps.ConfigLoader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save deployment record: %w", err)
	}
	return nil
}

// requireRoot checks for root privileges before mutating system state
func requireRoot() error {
	return deps.RootChecker.RequireRoot()
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}

// validateDomain checks that the domain is usable as an nginx
// server_name and a certbot -d argument
func validateDomain(domain string) error {
	if domain == "" {
		return fmt.Errorf("domain cannot be empty")
	}
	if strings.Contains(domain, " ") {
		return fmt.Errorf("domain cannot contain spaces")
	}
	if strings.HasPrefix(domain, "-") || strings.HasSuffix(domain, "-") {
		return fmt.Errorf("domain cannot start or end with hyphen")
	}
	if strings.HasPrefix(domain, "*.") {
		return fmt.Errorf("pass the bare domain; the wildcard is requested automatically")
	}
	if !strings.Contains(domain, ".") {
		return fmt.Errorf("domain must contain at least one dot: %s", domain)
	}
	return nil
}

// validateEmail checks that the email is usable as a certbot --email argument
func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	local, host, ok := strings.Cut(email, "@")
	if !ok || local == "" || host == "" || strings.Contains(email, " ") {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// validateUpstream checks and normalizes the app server URL
func validateUpstream(upstream string) (string, error) {
	if upstream == "" {
		return "", fmt.Errorf("upstream cannot be empty")
	}

	// Allow host:port format without scheme
	if !strings.Contains(upstream, "://") {
		upstream = "http://" + upstream
	}

	u, err := url.Parse(upstream)
	if err != nil {
		return "", fmt.Errorf("invalid upstream URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("upstream scheme must be http or https: %s", upstream)
	}
	if u.Host == "" {
		return "", fmt.Errorf("upstream has no host: %s", upstream)
	}

	return upstream, nil
}

// CommandResult represents a common result structure for CLI commands
type CommandResult struct {
	Success bool   `json:"success"`
	Domain  string `json:"domain"`
	Action  string `json:"action,omitempty"`
	Message string `json:"message,omitempty"`
}

// newSuccessResult creates a success result
func newSuccessResult(domain, action string) CommandResult {
	return CommandResult{
		Success: true,
		Domain:  domain,
		Action:  action,
	}
}
