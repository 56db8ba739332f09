package cli

import (
	"fmt"
	"time"

	"github.com/drenathan/tribenest-deployment/internal/errors"
	"github.com/drenathan/tribenest-deployment/internal/input"
	"github.com/drenathan/tribenest-deployment/internal/output"
	"github.com/drenathan/tribenest-deployment/internal/ssl"
	"github.com/spf13/cobra"
)

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Wildcard certificate management",
	Long:  `Manage the Let's Encrypt wildcard certificate outside the setup pipeline.`,
}

var certIssueCmd = &cobra.Command{
	Use:   "issue <domain> <email>",
	Short: "Issue a wildcard certificate via the manual DNS challenge",
	Long: `Obtain a wildcard certificate for <domain> and *.<domain> without
rewriting the nginx config. Useful for re-issuing after a failed setup.

Examples:
  tribenest-deploy cert issue example.com admin@example.com`,
	Args: cobra.ExactArgs(2),
	RunE: runCertIssue,
}

var certRenewCmd = &cobra.Command{
	Use:   "renew [domain]",
	Short: "Renew certificate(s)",
	Long: `Renew certificates. Manually issued DNS-01 certificates need the
challenge repeated, so certbot may report them as unrenewable here.

Examples:
  tribenest-deploy cert renew example.com
  tribenest-deploy cert renew --all`,
	RunE: runCertRenew,
}

var certStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List certbot-managed certificates",
	RunE:  runCertStatus,
}

var certRenewAll bool

func init() {
	certRenewCmd.Flags().BoolVar(&certRenewAll, "all", false, "Renew all certificates")

	certCmd.AddCommand(certIssueCmd)
	certCmd.AddCommand(certRenewCmd)
	certCmd.AddCommand(certStatusCmd)

	rootCmd.AddCommand(certCmd)
}

func runCertIssue(cmd *cobra.Command, args []string) error {
	domain, email := args[0], args[1]

	if err := validateDomain(domain); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	if !ssl.IsInstalled() {
		return errors.ErrCertbotMissing
	}

	if err := requireRoot(); err != nil {
		return err
	}

	output.Info("Requesting wildcard certificate for %s and *.%s...", domain, domain)
	output.Print("Certbot will print a DNS TXT record; press Enter when ready.")
	if err := input.WaitForEnter(deps.StdinReader); err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	cert, err := ssl.IssueWildcard(domain, email)
	if err != nil {
		return errors.Step(errors.ErrCodeSSL, "issue wildcard certificate", err)
	}

	// Keep the deployment record in sync when it covers this domain
	if cfg, err := deps.ConfigLoader.Load(); err == nil && cfg.Deployment != nil && cfg.Deployment.Domain == domain {
		cfg.Deployment.SSL = true
		cfg.Deployment.SSLCert = cert.CertPath
		cfg.Deployment.SSLKey = cert.KeyPath
		cfg.Deployment.UpdatedAt = time.Now()
		if err := saveConfig(cfg); err != nil {
			output.Warn("Certificate issued but the deployment record could not be saved: %v", err)
		}
	}

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"success":   true,
			"domain":    domain,
			"cert_path": cert.CertPath,
			"key_path":  cert.KeyPath,
		})
	}

	output.Success("Wildcard certificate issued for %s", domain)
	output.Print("  Certificate: %s", cert.CertPath)
	output.Print("  Private Key: %s", cert.KeyPath)
	return nil
}

func runCertRenew(cmd *cobra.Command, args []string) error {
	if !ssl.IsInstalled() {
		return errors.ErrCertbotMissing
	}

	if certRenewAll {
		output.Info("Renewing all certificates...")
		if err := ssl.RenewAll(); err != nil {
			return err
		}
		return outputResult(
			map[string]interface{}{
				"success": true,
				"renewed": "all",
			},
			"All certificates renewed",
		)
	}

	if len(args) == 0 {
		return fmt.Errorf("specify a domain or use --all to renew all certificates")
	}

	domain := args[0]
	if err := validateDomain(domain); err != nil {
		return err
	}

	output.Info("Renewing certificate for %s...", domain)
	if err := ssl.Renew(domain); err != nil {
		return err
	}

	return outputResult(newSuccessResult(domain, "renewed"), "Certificate renewed for %s", domain)
}

func runCertStatus(cmd *cobra.Command, args []string) error {
	if !ssl.IsInstalled() {
		return errors.ErrCertbotMissing
	}

	domains, err := ssl.List()
	if err != nil {
		return err
	}

	if len(domains) == 0 {
		output.Info("No certificates found")
		return nil
	}

	if jsonOutput {
		return output.JSON(domains)
	}

	output.Print("Managed certificates:")
	for _, domain := range domains {
		output.Print("  - %s", domain)
	}

	return nil
}
