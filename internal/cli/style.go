package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/platformkit/platformkit/internal/resolve"
)

var (
	stylePlatform string
	styleFrom     string
)

func init() {
	addPlatformFlag(styleCmd, &stylePlatform)
	styleCmd.Flags().StringVar(&styleFrom, "from", "", "Directory of the importing stylesheet (default: the app directory)")
	rootCmd.AddCommand(styleCmd)
}

var styleCmd = &cobra.Command{
	Use:   "style <specifier>",
	Short: "Resolve a stylesheet import for a platform",
	Long: `Resolve a stylesheet import the way the bundler will: a platform-specific
sibling (name.<platform>.ext) wins over the generic file, then the alias
target's sibling, then the generic resolution.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject()
		if err != nil {
			return err
		}
		reg, err := projectRegistry(p)
		if err != nil {
			return err
		}
		active, err := reg.Parse(stylePlatform)
		if err != nil {
			return err
		}

		from := p.AppDir()
		if styleFrom != "" {
			if from, err = filepath.Abs(styleFrom); err != nil {
				return fmt.Errorf("resolving %s: %w", styleFrom, err)
			}
		}

		r := resolve.NewStyleResolver(afero.NewOsFs(), active, reg, p.AppDir())
		for _, c := range r.Candidates(args[0], from) {
			log.WithField("candidate", c).Debug("trying stylesheet")
		}
		resolved, err := r.Resolve(args[0], from)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), filepath.FromSlash(resolved))
		return nil
	},
}
