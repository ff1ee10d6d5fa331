package cli

import (
	"fmt"

	"github.com/flowstate-mods/matforge/internal/material"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>...",
	Short: "Validate material descriptor files against the sknp schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invalid := 0

		for _, path := range args {
			result, err := material.ValidateFile(path)
			if err != nil {
				fmt.Printf("  [FAIL] %s: %v\n", path, err)
				invalid++
				continue
			}

			if result.Valid {
				fmt.Printf("  [ OK ] %s\n", path)
				continue
			}

			invalid++
			fmt.Printf("  [FAIL] %s: %d validation issue(s):\n", path, len(result.Issues))
			for _, issue := range result.Issues {
				if issue.Path != "" {
					fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
				} else {
					fmt.Printf("    - %s\n", issue.Message)
				}
			}
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d descriptor(s) failed validation", invalid, len(args))
		}
		return nil
	},
}
