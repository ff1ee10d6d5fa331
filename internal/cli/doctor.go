package cli

import (
	"fmt"
	"os"

	"github.com/flowstate-mods/matforge/internal/config"
	"github.com/flowstate-mods/matforge/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the current mod workspace",
	Long:  `Verify the uber template, pak manifest, assets tree, and tool version requirement.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lay := workspace.Resolve(".")
		failures := workspace.Check(os.Stdout, lay, buildVersion, config.Get(config.KeyRequires))
		if failures > 0 {
			fmt.Printf("\n%d check(s) failed\n", failures)
		} else {
			fmt.Println("\nAll checks passed")
		}
		return nil
	},
}
