package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/flowstate-mods/matforge/internal/branding"
	"github.com/flowstate-mods/matforge/internal/manifest"
	"github.com/flowstate-mods/matforge/internal/material"
	"github.com/flowstate-mods/matforge/internal/prompt"
	"github.com/flowstate-mods/matforge/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	generateYes          bool
	generateSkipManifest bool
)

func init() {
	generateCmd.Flags().BoolVarP(&generateYes, "yes", "y", false, "Skip the confirmation prompt")
	generateCmd.Flags().BoolVar(&generateSkipManifest, "skip-manifest", false, "Generate files without patching the pak manifest")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [name...]",
	Short: "Generate material boilerplate and register it in the pak manifest",
	Long: `Generate the JSON descriptor and uber shader buffer for each material name,
then insert matching entries into the shared pak manifest.

Names may be slash-delimited to create subdirectories under the assets tree
(e.g. weapons/wingman_elite). With no arguments, names are collected
interactively until a blank line.

Examples:
  matforge generate weapons/wingman_elite props/crate_low
  matforge generate            (interactive)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		interactive := len(args) == 0

		if interactive {
			fmt.Printf("%s — material generator\n", branding.DisplayName())
			fmt.Println("Enter material names (one per line, empty line to finish):")

			collector := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			var err error
			names, err = collector.CollectNames()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println("No material names provided. Exiting.")
				return nil
			}

			if !generateYes {
				ok, err := collector.Confirm(names)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Operation cancelled.")
					return nil
				}
			}
		}

		if len(names) == 0 {
			fmt.Println("No material names provided. Exiting.")
			return nil
		}

		lay := workspace.Resolve(".")

		if !lay.TemplateExists() {
			fmt.Printf("Error: %s not found in the current directory.\n", lay.TemplateFile)
			return nil
		}

		result, err := material.Generate(names, material.Options{
			AssetsDir:    lay.AssetsPath(),
			TemplateFile: lay.TemplatePath(),
		}, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		if len(result.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for _, w := range result.Warnings {
				fmt.Printf("  - %s\n", w)
			}
		}

		if !generateSkipManifest {
			fmt.Printf("\nUpdating %s...\n", lay.ManifestFile)
			if err := patchManifest(lay.ManifestPath(), result.PakPaths()); err != nil {
				return err
			}
		}

		fmt.Printf("\nCompleted processing %d materials.\n", len(names))
		return nil
	},
}

// patchManifest runs the manifest patcher and reports the outcome. The
// defined abort conditions (missing manifest, missing anchor entry) print a
// message and leave the file untouched; already-generated material files
// stay on disk either way.
func patchManifest(manifestPath string, pakPaths []string) error {
	result, err := manifest.PatchFile(manifestPath, pakPaths)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Printf("Error: %s not found\n", manifestPath)
		return nil
	case errors.Is(err, manifest.ErrNoMaterialEntry):
		fmt.Printf("Warning: no existing material entries found in %s\n", manifestPath)
		return nil
	case errors.Is(err, manifest.ErrNoEntryStart):
		fmt.Printf("Error: could not find the start of the first material entry in %s\n", manifestPath)
		return nil
	case err != nil:
		return err
	}

	for _, p := range result.Skipped {
		fmt.Printf("  Skipping (already exists): %s\n", p)
	}

	if len(result.Added) == 0 {
		fmt.Printf("All material paths already exist in %s. No changes made.\n", manifestPath)
		return nil
	}

	fmt.Printf("Added %d new material entries to %s\n", len(result.Added), manifestPath)
	if len(result.Skipped) > 0 {
		fmt.Printf("Skipped %d existing entries\n", len(result.Skipped))
	}
	return nil
}
