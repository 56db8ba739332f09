package cli

import (
	"os"

	"github.com/drenathan/tribenest-deployment/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	dryRun     bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tribenest-deploy",
	Short: "Provision an nginx reverse proxy with wildcard TLS for TribeNest",
	Long: `tribenest-deploy provisions the host for a TribeNest application server.

The setup command installs nginx and certbot through the native package
manager, writes the reverse proxy site config, obtains a Let's Encrypt
wildcard certificate via the manual DNS-01 challenge, and enables the
HTTPS redirect. Companion commands report status, manage certificates,
and tear the site back down.`,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without changing the system")
}
