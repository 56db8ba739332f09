package ssl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/drenathan/tribenest-deployment/internal/executor"
)

// Cert represents an issued certificate
type Cert struct {
	Domain   string
	CertPath string
	KeyPath  string
}

// letsencryptDir is the base directory for Let's Encrypt certificates
const letsencryptDir = "/etc/letsencrypt/live"

// cmdExecutor is the command executor (can be replaced for testing)
var cmdExecutor executor.CommandExecutor = executor.NewSystemExecutor()

// SetExecutor allows tests to inject a mock executor
func SetExecutor(exec executor.CommandExecutor) {
	cmdExecutor = exec
}

// ResetExecutor resets the executor to the default system executor
func ResetExecutor() {
	cmdExecutor = executor.NewSystemExecutor()
}

// IsInstalled checks if certbot is installed
func IsInstalled() bool {
	_, err := cmdExecutor.LookPath("certbot")
	return err == nil
}

// runCertbot executes certbot with the given arguments
func runCertbot(args []string) error {
	if !IsInstalled() {
		return fmt.Errorf("certbot is not installed")
	}

	out, err := cmdExecutor.Execute("certbot", args...)
	if err != nil {
		return fmt.Errorf("certbot failed: %s", string(out))
	}
	return nil
}

// GetCertPaths returns the certificate paths for a domain
func GetCertPaths(domain string) *Cert {
	return &Cert{
		Domain:   domain,
		CertPath: filepath.Join(letsencryptDir, domain, "fullchain.pem"),
		KeyPath:  filepath.Join(letsencryptDir, domain, "privkey.pem"),
	}
}

// CertExists checks whether a certificate directory exists for the domain
func CertExists(domain string) bool {
	_, err := os.Stat(filepath.Join(letsencryptDir, domain))
	return err == nil
}

// IssueWildcard obtains a wildcard certificate through the manual DNS-01
// challenge. Certbot runs with the terminal attached: it prints the TXT
// record to publish and waits for the operator to confirm before
// validating. Wildcard issuance is only possible over DNS-01.
func IssueWildcard(domain, email string) (*Cert, error) {
	if !IsInstalled() {
		return nil, fmt.Errorf("certbot is not installed")
	}

	args := []string{
		"certonly",
		"--manual",
		"--preferred-challenges=dns",
		"-d", domain,
		"-d", "*." + domain,
		"--email", email,
		"--agree-tos",
		"--no-eff-email",
	}

	if err := cmdExecutor.ExecuteInteractive("certbot", args...); err != nil {
		return nil, fmt.Errorf("certbot DNS challenge failed: %w", err)
	}

	return GetCertPaths(domain), nil
}

// Renew renews a specific certificate
func Renew(domain string) error {
	args := []string{
		"renew",
		"--cert-name", domain,
		"--non-interactive",
	}
	return runCertbot(args)
}

// RenewAll renews all certificates
func RenewAll() error {
	return runCertbot([]string{"renew", "--non-interactive"})
}

// List returns all certbot-managed certificate names
func List() ([]string, error) {
	if !IsInstalled() {
		return nil, fmt.Errorf("certbot is not installed")
	}

	out, err := cmdExecutor.Execute("certbot", "certificates")
	if err != nil {
		return nil, fmt.Errorf("certbot certificates failed: %s", string(out))
	}

	// Parse output to extract certificate names
	var domains []string
	lines := strings.Split(string(out), "\n")
	for _, line := range lines {
		if strings.Contains(line, "Certificate Name:") {
			parts := strings.Split(line, ":")
			if len(parts) >= 2 {
				domains = append(domains, strings.TrimSpace(parts[1]))
			}
		}
	}

	return domains, nil
}
