package cli

import (
	"fmt"

	"github.com/drenathan/tribenest-deployment/internal/config"
	"github.com/drenathan/tribenest-deployment/internal/nginx"
	"github.com/drenathan/tribenest-deployment/internal/output"
	"github.com/drenathan/tribenest-deployment/internal/pkgmgr"
	"github.com/drenathan/tribenest-deployment/internal/ssl"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the provisioned host and diagnose issues",
	Long: `Run diagnostic checks on the host and the tribenest deployment.

Checks:
  - Distribution and package manager
  - nginx installation, config syntax, and service state
  - Site config presence and enablement
  - Certbot installation and certificate presence

Examples:
  tribenest-deploy status
  tribenest-deploy status --json`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// StatusReport contains all diagnostic results
type StatusReport struct {
	Host       []CheckResult `json:"host"`
	Nginx      []CheckResult `json:"nginx"`
	TLS        []CheckResult `json:"tls"`
	Deployment *struct {
		Domain   string `json:"domain"`
		Upstream string `json:"upstream"`
		SSL      bool   `json:"ssl"`
	} `json:"deployment,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load deployment record: %w", err)
	}

	info, svc, err := detectHost()
	if err != nil {
		return err
	}

	report := &StatusReport{}

	// Host checks
	report.Host = append(report.Host, CheckResult{
		Status:  "success",
		Message: fmt.Sprintf("Distribution: %s (%s family)", info.PrettyName, info.Family),
	})
	if pm, err := pkgmgr.Detect(info.Family, deps.Executor); err == nil {
		report.Host = append(report.Host, CheckResult{
			Status:  "success",
			Message: fmt.Sprintf("Package manager: %s", pm.Name()),
		})
	} else {
		report.Host = append(report.Host, CheckResult{
			Status:  "error",
			Message: "No supported package manager found",
		})
	}

	report.Nginx = checkNginx(svc)
	report.TLS = checkTLS(cfg)

	if d := cfg.Deployment; d != nil {
		report.Deployment = &struct {
			Domain   string `json:"domain"`
			Upstream string `json:"upstream"`
			SSL      bool   `json:"ssl"`
		}{Domain: d.Domain, Upstream: d.Upstream, SSL: d.SSL}
	}

	if jsonOutput {
		return output.JSON(report)
	}

	displayStatus(report)
	return nil
}

func checkNginx(svc *nginx.Service) []CheckResult {
	var results []CheckResult

	if !svc.IsInstalled() {
		results = append(results, CheckResult{Status: "error", Message: "nginx not installed"})
		return results
	}

	version := "unknown"
	if v, err := svc.Version(); err == nil {
		version = v
	}
	results = append(results, CheckResult{
		Status:  "success",
		Message: fmt.Sprintf("nginx installed (%s)", version),
	})

	if err := svc.Test(); err == nil {
		results = append(results, CheckResult{Status: "success", Message: "nginx config syntax valid"})
	} else {
		results = append(results, CheckResult{Status: "error", Message: fmt.Sprintf("nginx config invalid: %v", err)})
	}

	if svc.IsActive() {
		results = append(results, CheckResult{Status: "success", Message: "nginx service active"})
	} else {
		results = append(results, CheckResult{Status: "error", Message: "nginx service not active"})
	}

	if svc.SiteInstalled() {
		results = append(results, CheckResult{Status: "success", Message: fmt.Sprintf("site config present (%s)", svc.SitePath())})
	} else {
		results = append(results, CheckResult{Status: "warning", Message: "site config not installed; run setup"})
	}
	if svc.SiteEnabled() {
		results = append(results, CheckResult{Status: "success", Message: "site enabled"})
	} else {
		results = append(results, CheckResult{Status: "warning", Message: "site not enabled"})
	}

	return results
}

func checkTLS(cfg *config.Config) []CheckResult {
	var results []CheckResult

	if !ssl.IsInstalled() {
		status := "warning"
		if cfg.Deployment != nil && cfg.Deployment.SSL {
			status = "error"
		}
		results = append(results, CheckResult{Status: status, Message: "certbot not installed"})
		return results
	}
	results = append(results, CheckResult{Status: "success", Message: "certbot installed"})

	d := cfg.Deployment
	if d == nil {
		results = append(results, CheckResult{Status: "warning", Message: "no deployment record; run setup"})
		return results
	}

	if !d.SSL {
		results = append(results, CheckResult{Status: "warning", Message: fmt.Sprintf("no certificate recorded for %s", d.Domain)})
		return results
	}

	if ssl.CertExists(d.Domain) {
		results = append(results, CheckResult{
			Status:  "success",
			Message: fmt.Sprintf("certificate present for %s, %s", d.Domain, d.WildcardDomain()),
		})
	} else {
		results = append(results, CheckResult{
			Status:  "error",
			Message: fmt.Sprintf("certificate recorded but missing on disk (%s)", d.SSLCert),
		})
	}

	return results
}

func displayStatus(report *StatusReport) {
	printChecks := func(title string, checks []CheckResult) {
		output.Print("%s:", title)
		for _, c := range checks {
			switch c.Status {
			case "success":
				output.Success("  %s", c.Message)
			case "warning":
				output.Warn("  %s", c.Message)
			default:
				output.Error("  %s", c.Message)
			}
		}
	}

	printChecks("Host", report.Host)
	printChecks("Nginx", report.Nginx)
	printChecks("TLS", report.TLS)

	if d := report.Deployment; d != nil {
		output.Print("Deployment:")
		output.Print("  Domain:   %s", d.Domain)
		output.Print("  Upstream: %s", d.Upstream)
		output.Print("  SSL:      %v", d.SSL)
	}
}
