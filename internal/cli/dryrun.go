package cli

import (
	"fmt"

	"github.com/drenathan/tribenest-deployment/internal/nginx"
	"github.com/drenathan/tribenest-deployment/internal/output"
	"github.com/drenathan/tribenest-deployment/internal/pkgmgr"
	"github.com/drenathan/tribenest-deployment/internal/platform"
)

// DryRunOperation describes a single operation that would be performed
type DryRunOperation struct {
	Action  string `json:"action"`
	Target  string `json:"target"`
	Details string `json:"details,omitempty"`
}

// DryRunResult contains the planned operations for a command
type DryRunResult struct {
	Domain     string            `json:"domain"`
	Operations []DryRunOperation `json:"operations"`
}

// outputDryRun prints a dry-run plan as JSON or a table
func outputDryRun(result *DryRunResult) error {
	if jsonOutput {
		return output.JSON(result)
	}

	output.Info("Dry run for %s; no changes will be made", result.Domain)
	rows := make([][]string, 0, len(result.Operations))
	for _, op := range result.Operations {
		rows = append(rows, []string{op.Action, op.Target, op.Details})
	}
	output.Table([]string{"ACTION", "TARGET", "DETAILS"}, rows)
	return nil
}

// outputSetupDryRun lists what the setup pipeline would do on this host
func outputSetupDryRun(domain string, info *platform.Info, pm *pkgmgr.Manager, svc *nginx.Service) error {
	ops := []DryRunOperation{
		{Action: "remove", Target: svc.SitePath(), Details: "stale site config (ignored if absent)"},
		{Action: "remove", Target: svc.DefaultConfPath(), Details: "stale catch-all config (ignored if absent)"},
		{Action: "install", Target: "nginx", Details: fmt.Sprintf("via %s", pm.Name())},
		{Action: "write", Target: svc.DefaultConfPath(), Details: "catch-all server (444)"},
		{Action: "write", Target: svc.SitePath(), Details: fmt.Sprintf("HTTP proxy site for %s", domain)},
	}
	if svc.Layout().Symlink {
		ops = append(ops, DryRunOperation{
			Action: "symlink", Target: svc.EnabledPath(), Details: "enable site",
		})
	}
	ops = append(ops,
		DryRunOperation{Action: "run", Target: "nginx -t", Details: "validate configuration"},
		DryRunOperation{Action: "run", Target: "systemctl enable --now nginx", Details: "start service"},
	)
	if !setupSkipSSL {
		ops = append(ops,
			DryRunOperation{Action: "install", Target: "certbot", Details: fmt.Sprintf("via %s", pm.Name())},
			DryRunOperation{Action: "run", Target: "certbot certonly --manual --preferred-challenges=dns", Details: fmt.Sprintf("wildcard for %s and *.%s, interactive", domain, domain)},
			DryRunOperation{Action: "write", Target: svc.SitePath(), Details: "HTTPS site with redirect"},
			DryRunOperation{Action: "run", Target: "systemctl restart nginx", Details: "apply TLS config"},
		)
	}

	return outputDryRun(&DryRunResult{Domain: domain, Operations: ops})
}
