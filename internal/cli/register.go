package cli

import (
	"github.com/flowstate-mods/matforge/internal/material"
	"github.com/flowstate-mods/matforge/internal/workspace"
	"github.com/spf13/cobra"
)

var registerAsNames bool

func init() {
	registerCmd.Flags().BoolVar(&registerAsNames, "names", false, "Treat arguments as material names instead of rpak paths")
	rootCmd.AddCommand(registerCmd)
}

var registerCmd = &cobra.Command{
	Use:   "register <rpak-path>...",
	Short: "Insert entries into the pak manifest without generating files",
	Long: `Register rpak paths in the shared pak manifest. Useful to re-run the patch
phase after a failed generate run, or to register materials produced by hand.

Examples:
  matforge register material/weapons/wingman_elite_sknp.rpak
  matforge register --names weapons/wingman_elite`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if registerAsNames {
			paths = make([]string, len(args))
			for i, name := range args {
				paths[i] = material.PakPath(name)
			}
		}

		lay := workspace.Resolve(".")
		return patchManifest(lay.ManifestPath(), paths)
	},
}
