package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/platformkit/platformkit/internal/resolve"
)

var (
	resolvePlatform string
	resolveScan     bool
	resolveJSON     bool
)

func init() {
	addPlatformFlag(resolveCmd, &resolvePlatform)
	resolveCmd.Flags().BoolVar(&resolveScan, "scan", false, "List project files the exclusion patterns keep out of the bundle")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(resolveCmd)
}

type resolveReport struct {
	Platform   string            `json:"platform"`
	Extensions []string          `json:"extensions"`
	Exclude    []string          `json:"exclude"`
	Excluded   []resolve.ScanHit `json:"excluded,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show extension order and exclusion patterns for a platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject()
		if err != nil {
			return err
		}
		c, err := specialize(p, resolvePlatform)
		if err != nil {
			return err
		}

		report := resolveReport{
			Platform:   string(c.Platform),
			Extensions: c.Resolve.Extensions,
			Exclude:    c.Resolve.Exclude.Strings(),
		}
		if resolveScan {
			hits, err := resolve.Scan(afero.NewOsFs(), p.Root, c.Resolve.Exclude)
			if err != nil {
				return err
			}
			log.WithField("count", len(hits)).Debug("scanned project")
			report.Excluded = hits
		}

		out := cmd.OutOrStdout()
		if resolveJSON {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling resolution: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "Platform: %s\n", report.Platform)
		fmt.Fprintln(out, "Extensions:")
		for i, ext := range report.Extensions {
			fmt.Fprintf(out, "  %2d. %s\n", i+1, ext)
		}
		fmt.Fprintln(out, "Exclude:")
		for _, pattern := range report.Exclude {
			fmt.Fprintf(out, "  %s\n", pattern)
		}
		if resolveScan {
			fmt.Fprintf(out, "Excluded files (%d):\n", len(report.Excluded))
			for _, hit := range report.Excluded {
				fmt.Fprintf(out, "  %s  [%s]\n", hit.Path, hit.Pattern)
			}
		}
		return nil
	},
}
