package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/platformkit/platformkit/internal/branding"
	"github.com/platformkit/platformkit/internal/config"
	"github.com/platformkit/platformkit/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	projectPath string

	// Resolved once per invocation in PersistentPreRunE.
	log      = logging.Discard()
	features config.Features
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` specializes one base build description into a per-platform bundler
configuration: extension resolution order, exclusion of other platforms' files,
platform defines, transformation rules and optional features (hot reload,
bundle report, source maps).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		if err := config.BindFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}
		features = config.LoadFeatures()

		l, err := logging.New(logging.Options{
			Verbose: features.Verbose,
			Format:  config.LogFormat(),
			Output:  cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		log = l
		log.WithFields(logrus.Fields{
			"mode":   features.Mode(),
			"hmr":    features.HMR,
			"report": features.Report,
		}).Debug("resolved feature flags")
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&projectPath, "project", "", "Path to "+branding.ProjectFile()+" (default: search upward from the working directory)")
	pf.Bool(config.KeyVerbose, false, "Verbose logging")
	pf.String(config.KeyLogFormat, logging.FormatText, "Log format: text or json")
	pf.Bool(config.KeyHMR, false, "Enable hot module replacement (development only)")
	pf.Bool(config.KeyReport, false, "Emit bundle analysis report and stats")
	pf.Bool(config.KeySourceMap, false, "Emit hidden source maps in production")
	pf.Bool(config.KeyJSX, false, "Resolve .tsx UI components")
	pf.Bool(config.KeyProduction, false, "Production mode")
	pf.Bool(config.KeyUnitTesting, false, "Add the unit test entry and __TEST__ define")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
