package cli

import (
	"github.com/spf13/cobra"
)

var (
	renderPlatform string
	renderFormat   string
	renderOut      string
)

func init() {
	addPlatformFlag(renderCmd, &renderPlatform)
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "json", "Output format: json or yaml")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the specialized bundler configuration for a platform",
	Long: `Run the specialization pipeline for one platform and print the resulting
configuration. Feature flags come from the config file, PLATFORMKIT_* environment
variables and the global flags, in increasing priority.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject()
		if err != nil {
			return err
		}
		c, err := specialize(p, renderPlatform)
		if err != nil {
			return err
		}
		data, err := c.Render(renderFormat)
		if err != nil {
			return err
		}
		if sum, err := c.Fingerprint(); err == nil {
			log.WithField("fingerprint", sum).Debug("rendered configuration")
		}
		return writeOutput(cmd, renderOut, data)
	},
}
