// Package pkgmgr wraps the native package manager used to install nginx
// and certbot. The tool is resolved from the detected distribution
// family: apt-get on Debian-family hosts, dnf (or yum on older
// releases) on RHEL-family hosts.
package pkgmgr

import (
	"fmt"
	"strings"

	"github.com/drenathan/tribenest-deployment/internal/errors"
	"github.com/drenathan/tribenest-deployment/internal/executor"
	"github.com/drenathan/tribenest-deployment/internal/logger"
	"github.com/drenathan/tribenest-deployment/internal/platform"
)

// Manager runs install operations through a resolved package tool.
type Manager struct {
	tool string
	exec executor.CommandExecutor
}

// Detect resolves the package manager binary for the distribution family.
func Detect(family platform.Family, exec executor.CommandExecutor) (*Manager, error) {
	var candidates []string
	switch family {
	case platform.FamilyDebian:
		candidates = []string{"apt-get"}
	case platform.FamilyRHEL:
		// dnf replaced yum on RHEL 8+; older hosts still carry yum only
		candidates = []string{"dnf", "yum"}
	default:
		return nil, errors.ErrUnsupportedOS
	}

	for _, tool := range candidates {
		if _, err := exec.LookPath(tool); err == nil {
			logger.Debug("resolved package manager: %s", tool)
			return &Manager{tool: tool, exec: exec}, nil
		}
	}
	return nil, errors.Wrap(errors.ErrCodePlatform,
		fmt.Sprintf("no package manager found (checked %s)", strings.Join(candidates, ", ")), nil)
}

// NewWithExecutor creates a Manager with an explicit tool and executor (for testing).
func NewWithExecutor(tool string, exec executor.CommandExecutor) *Manager {
	return &Manager{tool: tool, exec: exec}
}

// Name returns the resolved package tool name.
func (m *Manager) Name() string {
	return m.tool
}

// Refresh updates the package index. Only apt-get requires a separate
// refresh before install; dnf and yum refresh metadata on demand.
func (m *Manager) Refresh() error {
	if m.tool != "apt-get" {
		return nil
	}
	logger.Info("refreshing package index")
	out, err := m.exec.Execute("apt-get", "update", "-y")
	if err != nil {
		return errors.Wrap(errors.ErrCodePkg, fmt.Sprintf("apt-get update failed: %s", string(out)), err)
	}
	return nil
}

// Install installs the named packages non-interactively.
func (m *Manager) Install(pkgs ...string) error {
	if len(pkgs) == 0 {
		return nil
	}
	args := append([]string{"install", "-y"}, pkgs...)
	logger.InfoFields("installing packages", map[string]interface{}{
		"tool":     m.tool,
		"packages": strings.Join(pkgs, " "),
	})
	out, err := m.exec.Execute(m.tool, args...)
	if err != nil {
		return errors.Wrap(errors.ErrCodePkg,
			fmt.Sprintf("%s install %s failed: %s", m.tool, strings.Join(pkgs, " "), string(out)), err)
	}
	return nil
}

// InstallOptional installs packages but only logs on failure. Used for
// packages that are helpful but not required, such as epel-release on
// RHEL-family hosts before installing certbot.
func (m *Manager) InstallOptional(pkgs ...string) {
	if err := m.Install(pkgs...); err != nil {
		logger.Warn("optional package install skipped: %v", err)
	}
}
