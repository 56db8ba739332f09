package nginx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/drenathan/tribenest-deployment/internal/config"
	"github.com/drenathan/tribenest-deployment/internal/executor"
	"github.com/drenathan/tribenest-deployment/internal/logger"
	"github.com/drenathan/tribenest-deployment/internal/platform"
)

// Service manages the tribenest nginx site and the nginx system service
type Service struct {
	layout platform.NginxLayout
	exec   executor.CommandExecutor
}

// New creates a Service for the given config layout
func New(layout platform.NginxLayout) *Service {
	return &Service{
		layout: layout,
		exec:   executor.NewSystemExecutor(),
	}
}

// NewWithExecutor creates a Service with a custom executor (for testing)
func NewWithExecutor(layout platform.NginxLayout, exec executor.CommandExecutor) *Service {
	return &Service{
		layout: layout,
		exec:   exec,
	}
}

// Layout returns the config layout in use
func (s *Service) Layout() platform.NginxLayout {
	return s.layout
}

// SitePath returns the path of the tribenest site config
func (s *Service) SitePath() string {
	return filepath.Join(s.layout.Available, s.siteFileName())
}

// EnabledPath returns the path of the enabled site (symlink on Debian layouts)
func (s *Service) EnabledPath() string {
	return filepath.Join(s.layout.Enabled, s.siteFileName())
}

// DefaultConfPath returns the path of the catch-all default config
func (s *Service) DefaultConfPath() string {
	return filepath.Join(s.layout.ConfD, "default.conf")
}

func (s *Service) siteFileName() string {
	if s.layout.Symlink {
		return config.SiteName
	}
	// conf.d layouts only pick up *.conf files
	return config.SiteName + ".conf"
}

// IsInstalled checks if the nginx binary is on PATH
func (s *Service) IsInstalled() bool {
	_, err := s.exec.LookPath("nginx")
	return err == nil
}

// Version returns the installed nginx version string
func (s *Service) Version() (string, error) {
	// nginx prints its version to stderr
	out, err := s.exec.Execute("nginx", "-v")
	if err != nil {
		return "", fmt.Errorf("nginx -v failed: %s", string(out))
	}
	version := strings.TrimSpace(string(out))
	version = strings.TrimPrefix(version, "nginx version: ")
	return version, nil
}

// RemoveStale deletes any previous tribenest site config, its enabled
// link, the catch-all default.conf, and the distro's stock default site
// link. Missing files are not errors; reruns must be idempotent.
func (s *Service) RemoveStale() error {
	targets := []string{
		s.EnabledPath(),
		s.SitePath(),
		s.DefaultConfPath(),
		filepath.Join(s.layout.Enabled, "default"),
	}
	for _, target := range targets {
		if err := os.Remove(target); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to remove %s: %w", target, err)
		}
		logger.Debug("removed stale config %s", target)
	}
	return nil
}

// InstallDefault writes the catch-all default.conf into conf.d
func (s *Service) InstallDefault(content string) error {
	if err := os.MkdirAll(s.layout.ConfD, 0755); err != nil {
		return fmt.Errorf("failed to create conf.d directory: %w", err)
	}
	if err := os.WriteFile(s.DefaultConfPath(), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	return nil
}

// InstallSite writes the tribenest site config and enables it.
// An existing config is overwritten; install is rerun after certificate
// issuance with the HTTPS body.
func (s *Service) InstallSite(content string) error {
	if err := os.MkdirAll(s.layout.Available, 0755); err != nil {
		return fmt.Errorf("failed to create site directory: %w", err)
	}
	if err := os.WriteFile(s.SitePath(), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write site config: %w", err)
	}

	if !s.layout.Symlink {
		return nil
	}

	if err := os.MkdirAll(s.layout.Enabled, 0755); err != nil {
		return fmt.Errorf("failed to create sites-enabled directory: %w", err)
	}

	// Recreate the symlink so reruns don't fail on an existing link
	if err := os.Remove(s.EnabledPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace enabled link: %w", err)
	}
	if err := os.Symlink(s.SitePath(), s.EnabledPath()); err != nil {
		return fmt.Errorf("failed to enable site: %w", err)
	}
	return nil
}

// SiteInstalled checks if the tribenest site config exists
func (s *Service) SiteInstalled() bool {
	_, err := os.Stat(s.SitePath())
	return err == nil
}

// SiteEnabled checks if the tribenest site is enabled
func (s *Service) SiteEnabled() bool {
	_, err := os.Lstat(s.EnabledPath())
	return err == nil
}

// Test validates the nginx config syntax
func (s *Service) Test() error {
	out, err := s.exec.Execute("nginx", "-t")
	if err != nil {
		return fmt.Errorf("nginx config test failed: %s", string(out))
	}
	return nil
}

// Start enables and starts the nginx service
func (s *Service) Start() error {
	out, err := s.exec.Execute("systemctl", "enable", "--now", "nginx")
	if err != nil {
		// Fall back for hosts without systemd
		out, err = s.exec.Execute("service", "nginx", "start")
		if err != nil {
			return fmt.Errorf("failed to start nginx: %s", string(out))
		}
	}
	return nil
}

// Reload reloads nginx to apply config changes
func (s *Service) Reload() error {
	out, err := s.exec.Execute("systemctl", "reload", "nginx")
	if err != nil {
		// Try nginx -s reload as fallback
		out, err = s.exec.Execute("nginx", "-s", "reload")
		if err != nil {
			return fmt.Errorf("failed to reload nginx: %s", string(out))
		}
	}
	return nil
}

// Restart restarts the nginx service
func (s *Service) Restart() error {
	out, err := s.exec.Execute("systemctl", "restart", "nginx")
	if err != nil {
		out, err = s.exec.Execute("service", "nginx", "restart")
		if err != nil {
			return fmt.Errorf("failed to restart nginx: %s", string(out))
		}
	}
	return nil
}

// IsActive checks whether the nginx service reports active
func (s *Service) IsActive() bool {
	out, err := s.exec.Execute("systemctl", "is-active", "nginx")
	if err == nil && strings.TrimSpace(string(out)) == "active" {
		return true
	}

	// service(8) fallback
	if out, err := s.exec.Execute("service", "nginx", "status"); err == nil {
		status := string(out)
		return strings.Contains(status, "running") || strings.Contains(status, "active")
	}
	return false
}
