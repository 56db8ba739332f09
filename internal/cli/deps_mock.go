package cli

import (
	"errors"
	"io"

	"github.com/drenathan/tribenest-deployment/internal/config"
	"github.com/drenathan/tribenest-deployment/internal/executor"
	"github.com/drenathan/tribenest-deployment/internal/nginx"
	"github.com/drenathan/tribenest-deployment/internal/platform"
)

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg       *config.Config
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockConfigLoader) Load() (*config.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

func (m *MockConfigLoader) Save(cfg *config.Config) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cfg = cfg
	return nil
}

// MockPlatformDetector is a test double for PlatformDetector
type MockPlatformDetector struct {
	Info *platform.Info
	Err  error
}

func (m *MockPlatformDetector) Detect() (*platform.Info, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Info != nil {
		return m.Info, nil
	}
	return &platform.Info{
		ID:         "ubuntu",
		IDLike:     "debian",
		PrettyName: "Ubuntu 24.04 LTS",
		Family:     platform.FamilyDebian,
	}, nil
}

// MockNginxFactory is a test double for NginxFactory. It pins the
// service to a fixed layout (normally under t.TempDir) and executor.
type MockNginxFactory struct {
	Layout platform.NginxLayout
	Exec   executor.CommandExecutor
}

func (m *MockNginxFactory) Create(info *platform.Info) *nginx.Service {
	exec := m.Exec
	if exec == nil {
		exec = &executor.MockExecutor{}
	}
	return nginx.NewWithExecutor(m.Layout, exec)
}

// MockRootChecker is a test double for RootChecker
type MockRootChecker struct {
	IsRoot bool
	Calls  int
}

func (m *MockRootChecker) RequireRoot() error {
	m.Calls++
	if !m.IsRoot {
		return errors.New("this operation requires root privileges. Please run with sudo")
	}
	return nil
}

// MockStdinReader is a test double for StdinReader
type MockStdinReader struct {
	Inputs []string
	index  int
}

func (m *MockStdinReader) ReadString(delim byte) (string, error) {
	if m.index >= len(m.Inputs) {
		return "", io.EOF
	}
	result := m.Inputs[m.index]
	m.index++
	return result, nil
}
