package cli

import (
	"fmt"

	"github.com/flowstate-mods/matforge/internal/manifest"
	"github.com/flowstate-mods/matforge/internal/workspace"
	"github.com/spf13/cobra"
)

var listType string

func init() {
	listCmd.Flags().StringVar(&listType, "type", "", "Only list entries of this asset type (e.g. matl, txtr)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List asset entries registered in the pak manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lay := workspace.Resolve(".")

		entries, err := manifest.EntriesFromFile(lay.ManifestPath())
		if err != nil {
			return err
		}

		if listType != "" {
			entries = manifest.FilterByType(entries, listType)
		}

		for _, e := range entries {
			fmt.Printf("%-5s %s\n", e.Type, e.Path)
		}
		fmt.Printf("%d entries\n", len(entries))
		return nil
	},
}
