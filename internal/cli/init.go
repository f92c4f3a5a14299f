package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/platformkit/platformkit/internal/branding"
	"github.com/platformkit/platformkit/internal/scaffold"
	"github.com/platformkit/platformkit/internal/version"
)

var (
	initName    string
	initRuntime string
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Project name (default: slug of the directory name)")
	initCmd.Flags().StringVar(&initRuntime, "runtime", "", "Runtime version the project targets, e.g. 8.6.0")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a new " + branding.ProjectFile() + " and project layout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", dir, err)
		}

		name := initName
		if name == "" {
			name = slug.Make(filepath.Base(abs))
		}
		if !slug.IsSlug(name) {
			return fmt.Errorf("invalid project name %q: use lowercase letters, digits and dashes", name)
		}
		if initRuntime != "" {
			if err := version.Valid(initRuntime); err != nil {
				return fmt.Errorf("invalid --runtime: %w", err)
			}
		}

		result, err := scaffold.Generate(abs, scaffold.NewData(name, initRuntime))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Initialized %s in %s\n", name, result.OutputDir)
		for _, f := range result.Files {
			fmt.Fprintf(out, "  created %s\n", f)
		}
		for _, d := range result.Dirs {
			fmt.Fprintf(out, "  created %s%c\n", d, os.PathSeparator)
		}
		for _, w := range result.Warnings {
			log.Warn(w)
		}
		return nil
	},
}
