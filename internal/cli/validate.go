package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/platformkit/platformkit/internal/project"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a project file against its schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			var err error
			if path, err = projectFile(); err != nil {
				return err
			}
		}

		result, err := project.ValidateFile(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(out, "[ OK ] %s is valid\n", path)
			return nil
		}
		fmt.Fprintf(out, "[FAIL] %s has %d issue(s):\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
		return result.Err()
	},
}
