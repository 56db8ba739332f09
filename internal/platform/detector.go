// Package platform detects the host Linux distribution and derives the
// package manager and nginx configuration layout used by the
// provisioning pipeline.
package platform

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Family groups distributions by packaging lineage.
type Family string

// Supported distribution families.
const (
	FamilyDebian  Family = "debian" // Debian, Ubuntu, Mint
	FamilyRHEL    Family = "rhel"   // RHEL, CentOS, Fedora, Rocky, Alma, Amazon
	FamilyUnknown Family = "unknown"
)

// osReleasePath is the standard distribution identification file.
const osReleasePath = "/etc/os-release"

// Info describes the detected host distribution.
type Info struct {
	ID         string // os-release ID (e.g. "ubuntu")
	IDLike     string // os-release ID_LIKE (e.g. "debian")
	PrettyName string // os-release PRETTY_NAME
	VersionID  string // os-release VERSION_ID
	Family     Family
}

// NginxLayout describes where nginx site configs live on this host.
type NginxLayout struct {
	Available string // site config directory (sites-available on Debian)
	Enabled   string // enabled site directory (sites-enabled on Debian)
	ConfD     string // conf.d directory, present on both layouts
	Symlink   bool   // whether enabling uses a symlink into Enabled
}

// Detect identifies the host distribution from /etc/os-release.
// Non-Linux hosts and unreadable os-release files are fatal.
func Detect() (*Info, error) {
	if runtime.GOOS != "linux" {
		return nil, fmt.Errorf("unsupported platform: %s (linux required)", runtime.GOOS)
	}
	return DetectFromFile(osReleasePath)
}

// DetectFromFile parses an os-release formatted file. Exposed for tests.
func DetectFromFile(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	defer f.Close()

	info := &Info{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		switch key {
		case "ID":
			info.ID = strings.ToLower(value)
		case "ID_LIKE":
			info.IDLike = strings.ToLower(value)
		case "PRETTY_NAME":
			info.PrettyName = value
		case "VERSION_ID":
			info.VersionID = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if info.ID == "" {
		return nil, fmt.Errorf("no ID field in %s", path)
	}

	info.Family = classify(info.ID, info.IDLike)
	return info, nil
}

// classify maps an os-release ID (and ID_LIKE fallback) to a family.
func classify(id, idLike string) Family {
	debianIDs := map[string]bool{
		"debian": true, "ubuntu": true, "linuxmint": true, "raspbian": true,
	}
	rhelIDs := map[string]bool{
		"rhel": true, "centos": true, "fedora": true, "rocky": true,
		"almalinux": true, "amzn": true, "ol": true,
	}

	if debianIDs[id] {
		return FamilyDebian
	}
	if rhelIDs[id] {
		return FamilyRHEL
	}

	// Derivative distros identify their parent via ID_LIKE
	for _, like := range strings.Fields(idLike) {
		if debianIDs[like] {
			return FamilyDebian
		}
		if rhelIDs[like] || like == "fedora" {
			return FamilyRHEL
		}
	}

	return FamilyUnknown
}

// Layout returns the nginx config layout for the distribution family.
// Debian-family hosts use sites-available with symlinks into
// sites-enabled; RHEL-family hosts write directly into conf.d.
func (i *Info) Layout() NginxLayout {
	if i.Family == FamilyDebian {
		return NginxLayout{
			Available: "/etc/nginx/sites-available",
			Enabled:   "/etc/nginx/sites-enabled",
			ConfD:     "/etc/nginx/conf.d",
			Symlink:   true,
		}
	}
	return NginxLayout{
		Available: "/etc/nginx/conf.d",
		Enabled:   "/etc/nginx/conf.d",
		ConfD:     "/etc/nginx/conf.d",
		Symlink:   false,
	}
}

// Supported reports whether the provisioning pipeline can run on this
// distribution.
func (i *Info) Supported() bool {
	return i.Family != FamilyUnknown
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
