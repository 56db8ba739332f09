package cli

import (
	"fmt"
	"time"

	"github.com/drenathan/tribenest-deployment/internal/config"
	"github.com/drenathan/tribenest-deployment/internal/errors"
	"github.com/drenathan/tribenest-deployment/internal/input"
	"github.com/drenathan/tribenest-deployment/internal/logger"
	"github.com/drenathan/tribenest-deployment/internal/nginx"
	"github.com/drenathan/tribenest-deployment/internal/output"
	"github.com/drenathan/tribenest-deployment/internal/pkgmgr"
	"github.com/drenathan/tribenest-deployment/internal/platform"
	"github.com/drenathan/tribenest-deployment/internal/ssl"
	"github.com/drenathan/tribenest-deployment/internal/template"
	"github.com/spf13/cobra"
)

var (
	setupUpstream string
	setupSkipSSL  bool
	setupYes      bool
)

var setupCmd = &cobra.Command{
	Use:   "setup <domain> <email>",
	Short: "Provision nginx and a wildcard certificate for the app server",
	Long: `Provision the host end to end: detect the distribution, install nginx
and certbot through the native package manager, write the reverse proxy
site config, obtain a Let's Encrypt wildcard certificate via the manual
DNS-01 challenge, and enable the HTTPS redirect.

The DNS challenge is interactive: certbot prints a TXT record that must
be published at your DNS provider before validation proceeds.

Examples:
  tribenest-deploy setup example.com admin@example.com
  tribenest-deploy setup example.com admin@example.com --upstream http://127.0.0.1:8080
  tribenest-deploy setup example.com admin@example.com --skip-ssl`,
	Args: cobra.ExactArgs(2),
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&setupUpstream, "upstream", "http://127.0.0.1:3000", "App server URL nginx proxies to")
	setupCmd.Flags().BoolVar(&setupSkipSSL, "skip-ssl", false, "Stop after the HTTP site is up (no certificate)")
	setupCmd.Flags().BoolVarP(&setupYes, "yes", "y", false, "Skip the pause before the DNS challenge")

	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	domain, email := args[0], args[1]

	if err := validateDomain(domain); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	upstream, err := validateUpstream(setupUpstream)
	if err != nil {
		return err
	}

	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load deployment record: %w", err)
	}

	info, svc, err := detectHost()
	if err != nil {
		return err
	}

	pm, err := pkgmgr.Detect(info.Family, deps.Executor)
	if err != nil {
		return err
	}

	logger.DebugFields("host detected", map[string]interface{}{
		"distro": info.ID,
		"family": info.Family,
		"pkgmgr": pm.Name(),
	})

	if dryRun {
		return outputSetupDryRun(domain, info, pm, svc)
	}

	if err := requireRoot(); err != nil {
		return err
	}

	total := 9
	if setupSkipSSL {
		total = 5
	}

	output.Step(1, total, "Detected %s (%s, %s)", info.PrettyName, info.Family, pm.Name())

	output.Step(2, total, "Removing stale nginx config")
	if err := svc.RemoveStale(); err != nil {
		return errors.Step(errors.ErrCodeNginx, "remove stale config", err)
	}

	output.Step(3, total, "Installing nginx via %s", pm.Name())
	if err := pm.Refresh(); err != nil {
		return err
	}
	if err := pm.Install("nginx"); err != nil {
		return err
	}
	if !svc.IsInstalled() {
		return errors.ErrNginxMissing
	}

	output.Step(4, total, "Writing HTTP site config for %s", domain)
	if err := installSiteConfigs(svc, domain, upstream, nil); err != nil {
		return err
	}

	output.Step(5, total, "Starting nginx")
	if err := svc.Test(); err != nil {
		return errors.Step(errors.ErrCodeNginx, "validate nginx config", err)
	}
	if err := svc.Start(); err != nil {
		return errors.Step(errors.ErrCodeNginx, "start nginx", err)
	}
	if !svc.IsActive() {
		return errors.Wrap(errors.ErrCodeNginx, "nginx is not active after start", nil)
	}

	// Record the HTTP-only deployment before the interactive SSL flow so
	// a failed challenge leaves an accurate record for reruns
	now := time.Now()
	deployment := &config.Deployment{
		Domain:    domain,
		Email:     email,
		Upstream:  upstream,
		SSL:       false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if cfg.Deployment != nil {
		deployment.CreatedAt = cfg.Deployment.CreatedAt
	}
	cfg.SetDeployment(deployment)
	if err := saveConfig(cfg); err != nil {
		output.Warn("Site is up but the deployment record could not be saved: %v", err)
	}

	if setupSkipSSL {
		return outputResult(
			newSuccessResult(domain, "setup-http"),
			"HTTP site for %s is up, proxying to %s", domain, upstream,
		)
	}

	output.Step(6, total, "Installing certbot via %s", pm.Name())
	if info.Family == platform.FamilyRHEL {
		// certbot lives in EPEL on most RHEL-family hosts
		pm.InstallOptional("epel-release")
	}
	if err := pm.Install("certbot"); err != nil {
		return err
	}
	if !ssl.IsInstalled() {
		return errors.ErrCertbotMissing
	}

	output.Step(7, total, "Requesting wildcard certificate for %s and *.%s", domain, domain)
	if !setupYes {
		output.Print("")
		output.Print("Certbot will print a DNS TXT record (_acme-challenge.%s).", domain)
		output.Print("Have access to your DNS provider ready, then press Enter to continue.")
		if err := input.WaitForEnter(deps.StdinReader); err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
	}
	cert, err := ssl.IssueWildcard(domain, email)
	if err != nil {
		return errors.Step(errors.ErrCodeSSL, "issue wildcard certificate", err)
	}

	output.Step(8, total, "Writing HTTPS site config with redirect")
	if err := installSiteConfigs(svc, domain, upstream, cert); err != nil {
		return err
	}

	output.Step(9, total, "Restarting nginx")
	if err := svc.Test(); err != nil {
		return errors.Step(errors.ErrCodeNginx, "validate nginx config", err)
	}
	if err := svc.Restart(); err != nil {
		return errors.Step(errors.ErrCodeNginx, "restart nginx", err)
	}
	if !svc.IsActive() {
		return errors.Wrap(errors.ErrCodeNginx, "nginx is not active after restart", nil)
	}

	deployment.SSL = true
	deployment.SSLCert = cert.CertPath
	deployment.SSLKey = cert.KeyPath
	deployment.UpdatedAt = time.Now()
	if err := saveConfig(cfg); err != nil {
		output.Warn("Setup finished but the deployment record could not be saved: %v", err)
	}

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"success":   true,
			"domain":    domain,
			"upstream":  upstream,
			"ssl":       true,
			"cert_path": cert.CertPath,
			"key_path":  cert.KeyPath,
		})
	}

	output.Success("TribeNest proxy for %s is live", domain)
	output.Print("  Upstream:    %s", upstream)
	output.Print("  Certificate: %s", cert.CertPath)
	output.Print("  Private Key: %s", cert.KeyPath)
	output.Print("  Covers:      %s, *.%s", domain, domain)

	return nil
}

// installSiteConfigs renders and writes the catch-all default config and
// the tribenest site. A nil cert selects the HTTP-only body.
func installSiteConfigs(svc *nginx.Service, domain, upstream string, cert *ssl.Cert) error {
	data := &template.SiteData{
		Domain:   domain,
		Upstream: upstream,
	}
	kind := template.KindSiteHTTP
	if cert != nil {
		kind = template.KindSiteHTTPS
		data.SSLCert = cert.CertPath
		data.SSLKey = cert.KeyPath
	}

	defaultConf, err := template.Render(template.KindDefault, data)
	if err != nil {
		return fmt.Errorf("failed to render default config: %w", err)
	}
	siteConf, err := template.Render(kind, data)
	if err != nil {
		return fmt.Errorf("failed to render site config: %w", err)
	}

	if err := svc.InstallDefault(defaultConf); err != nil {
		return errors.Step(errors.ErrCodeNginx, "write default config", err)
	}
	if err := svc.InstallSite(siteConf); err != nil {
		return errors.Step(errors.ErrCodeNginx, "write site config", err)
	}
	return nil
}
