// Package executor abstracts system command execution so that package
// manager, nginx, and certbot invocations can be mocked in tests.
package executor

import (
	"os"
	"os/exec"
)

// CommandExecutor is an interface for executing system commands
type CommandExecutor interface {
	// Execute runs a command with the given name and arguments and
	// returns its combined output
	Execute(name string, args ...string) ([]byte, error)

	// ExecuteInteractive runs a command with stdin, stdout, and stderr
	// attached to the terminal. Used for certbot's manual DNS challenge,
	// which prompts the operator.
	ExecuteInteractive(name string, args ...string) error

	// LookPath searches for an executable in the directories named by the PATH
	LookPath(file string) (string, error)
}

// SystemExecutor implements CommandExecutor using os/exec
type SystemExecutor struct{}

// NewSystemExecutor creates a new SystemExecutor
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs a command and returns combined output
func (e *SystemExecutor) Execute(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// ExecuteInteractive runs a command with inherited stdio
func (e *SystemExecutor) ExecuteInteractive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// LookPath searches for an executable
func (e *SystemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// MockExecutor is a mock implementation for testing
type MockExecutor struct {
	ExecuteFunc     func(name string, args ...string) ([]byte, error)
	InteractiveFunc func(name string, args ...string) error
	LookPathFunc    func(file string) (string, error)
	Calls           []CommandCall
}

// CommandCall records a command execution for verification
type CommandCall struct {
	Name        string
	Args        []string
	Interactive bool
}

// Execute calls the mock function
func (m *MockExecutor) Execute(name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return []byte(""), nil
}

// ExecuteInteractive calls the mock function
func (m *MockExecutor) ExecuteInteractive(name string, args ...string) error {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args, Interactive: true})
	if m.InteractiveFunc != nil {
		return m.InteractiveFunc(name, args...)
	}
	return nil
}

// LookPath calls the mock function
func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}
