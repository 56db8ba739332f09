package cli

import (
	"bufio"
	"os"

	"github.com/drenathan/tribenest-deployment/internal/config"
	"github.com/drenathan/tribenest-deployment/internal/errors"
	"github.com/drenathan/tribenest-deployment/internal/executor"
	"github.com/drenathan/tribenest-deployment/internal/nginx"
	"github.com/drenathan/tribenest-deployment/internal/platform"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader     ConfigLoader
	PlatformDetector PlatformDetector
	NginxFactory     NginxFactory
	Executor         executor.CommandExecutor
	RootChecker      RootChecker
	StdinReader      StdinReader
}

// ConfigLoader handles deployment record loading and saving
type ConfigLoader interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
}

// PlatformDetector identifies the host distribution
type PlatformDetector interface {
	Detect() (*platform.Info, error)
}

// NginxFactory builds the nginx service for a detected host
type NginxFactory interface {
	Create(info *platform.Info) *nginx.Service
}

// RootChecker checks root privileges
type RootChecker interface {
	RequireRoot() error
}

// StdinReader reads from stdin
type StdinReader interface {
	ReadString(delim byte) (string, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	ConfigLoader:     &realConfigLoader{},
	PlatformDetector: &realPlatformDetector{},
	NginxFactory:     &realNginxFactory{},
	Executor:         executor.NewSystemExecutor(),
	RootChecker:      &realRootChecker{},
	StdinReader:      &realStdinReader{},
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations that delegate to the underlying packages

type realConfigLoader struct{}

func (r *realConfigLoader) Load() (*config.Config, error) {
	return config.Load()
}

func (r *realConfigLoader) Save(cfg *config.Config) error {
	return cfg.Save()
}

type realPlatformDetector struct{}

func (r *realPlatformDetector) Detect() (*platform.Info, error) {
	return platform.Detect()
}

type realNginxFactory struct{}

func (r *realNginxFactory) Create(info *platform.Info) *nginx.Service {
	return nginx.NewWithExecutor(info.Layout(), deps.Executor)
}

type realRootChecker struct{}

func (r *realRootChecker) RequireRoot() error {
	if os.Geteuid() != 0 {
		return errors.ErrRootRequired
	}
	return nil
}

type realStdinReader struct {
	reader *bufio.Reader
}

func (r *realStdinReader) ReadString(delim byte) (string, error) {
	if r.reader == nil {
		r.reader = bufio.NewReader(os.Stdin)
	}
	return r.reader.ReadString(delim)
}
