package cli

import (
	"fmt"

	"github.com/drenathan/tribenest-deployment/internal/errors"
	"github.com/drenathan/tribenest-deployment/internal/output"
	"github.com/spf13/cobra"
)

var teardownNoReload bool

var teardownCmd = &cobra.Command{
	Use:   "teardown <domain>",
	Short: "Remove the tribenest site from nginx",
	Long: `Remove the tribenest site config and the catch-all default config,
then reload nginx. Installed packages and issued certificates are left
in place.

Examples:
  tribenest-deploy teardown example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runTeardown,
}

func init() {
	teardownCmd.Flags().BoolVar(&teardownNoReload, "no-reload", false, "Don't reload nginx after removal")

	rootCmd.AddCommand(teardownCmd)
}

func runTeardown(cmd *cobra.Command, args []string) error {
	domain := args[0]

	if err := validateDomain(domain); err != nil {
		return err
	}

	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load deployment record: %w", err)
	}
	if cfg.Deployment != nil && cfg.Deployment.Domain != domain {
		return fmt.Errorf("deployed domain is %s, not %s", cfg.Deployment.Domain, domain)
	}

	_, svc, err := detectHost()
	if err != nil {
		return err
	}

	if !svc.SiteInstalled() && !svc.SiteEnabled() {
		return errors.ErrSiteNotFound
	}

	if dryRun {
		return outputDryRun(&DryRunResult{
			Domain: domain,
			Operations: []DryRunOperation{
				{Action: "remove", Target: svc.SitePath(), Details: "site config"},
				{Action: "remove", Target: svc.EnabledPath(), Details: "enabled link"},
				{Action: "remove", Target: svc.DefaultConfPath(), Details: "catch-all config"},
				{Action: "run", Target: "systemctl reload nginx", Details: "apply removal"},
			},
		})
	}

	if err := requireRoot(); err != nil {
		return err
	}

	output.Info("Removing site config for %s...", domain)
	if err := svc.RemoveStale(); err != nil {
		return errors.Step(errors.ErrCodeNginx, "remove site config", err)
	}

	if svc.IsInstalled() {
		if err := testAndReload(svc, !teardownNoReload); err != nil {
			return err
		}
	}

	cfg.ClearDeployment()
	if err := saveConfig(cfg); err != nil {
		output.Warn("Site removed but the deployment record could not be cleared: %v", err)
	}

	return outputResult(newSuccessResult(domain, "teardown"), "Site for %s removed", domain)
}
