package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/platformkit/platformkit/internal/platform"
	"github.com/platformkit/platformkit/internal/project"
)

var platformsJSON bool

func init() {
	platformsCmd.Flags().BoolVar(&platformsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(platformsCmd)
}

type platformRow struct {
	Name     string   `json:"name"`
	Alias    string   `json:"alias,omitempty"`
	Requires string   `json:"requires,omitempty"`
	Family   []string `json:"family"`
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List known platforms, aliases and runtime requirements",
	Long: `List every platform a build may target. When run inside a project the
project's platform declarations are included.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := platform.DefaultRegistry()
		p, err := loadProject()
		switch {
		case err == nil:
			if reg, err = projectRegistry(p); err != nil {
				return err
			}
		case errors.Is(err, project.ErrNotFound):
			log.Debug("no project found, listing built-in platforms")
		default:
			return err
		}

		rows := make([]platformRow, 0, len(reg.Known()))
		for _, pl := range reg.Known() {
			row := platformRow{Name: string(pl), Requires: reg.Requirement(pl)}
			if target, ok := reg.AliasOf(pl); ok {
				row.Alias = string(target)
			}
			for _, f := range reg.Family(pl) {
				row.Family = append(row.Family, string(f))
			}
			rows = append(rows, row)
		}

		if platformsJSON {
			out, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling platforms: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tALIAS\tREQUIRES\tDEFINE")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, dash(r.Alias), dash(r.Requires), platform.DefineKey(platform.Platform(r.Name)))
		}
		return w.Flush()
	},
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
