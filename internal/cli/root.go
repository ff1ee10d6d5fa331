package cli

import (
	"github.com/flowstate-mods/matforge/internal/branding"
	"github.com/flowstate-mods/matforge/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates repak material boilerplate (JSON descriptor plus uber
shader buffer) and registers the resulting rpak paths in the shared pak manifest.
Run it from the root of a mod workspace containing the uber template and manifest.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
