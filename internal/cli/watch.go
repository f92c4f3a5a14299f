package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/platformkit/platformkit/internal/project"
	"github.com/platformkit/platformkit/internal/watch"
)

var (
	watchPlatform string
	watchFormat   string
	watchOut      string
)

func init() {
	addPlatformFlag(watchCmd, &watchPlatform)
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "json", "Output format: json or yaml")
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the configuration when the project file or tsconfig changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := projectFile()
		if err != nil {
			return err
		}

		var last string
		render := func() error {
			p, err := project.Load(path)
			if err != nil {
				return err
			}
			c, err := specialize(p, watchPlatform)
			if err != nil {
				return err
			}
			sum, err := c.Fingerprint()
			if err != nil {
				return err
			}
			if sum == last {
				log.Debug("configuration unchanged")
				return nil
			}
			data, err := c.Render(watchFormat)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd, watchOut, data); err != nil {
				return err
			}
			last = sum
			log.WithFields(logrus.Fields{
				"platform":    c.Platform,
				"fingerprint": sum,
			}).Info("configuration rendered")
			return nil
		}

		p, err := project.Load(path)
		if err != nil {
			return err
		}
		if err := render(); err != nil {
			return err
		}

		paths := []string{path}
		if ts := p.TSConfigPath(); ts != "" {
			paths = append(paths, ts)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := &watch.Watcher{
			Paths: paths,
			OnChange: func(changed string) error {
				log.WithField("path", changed).Debug("change detected")
				return render()
			},
			OnError: func(err error) {
				log.WithError(err).Warn("rebuild failed")
			},
		}
		log.WithField("paths", paths).Info("watching for changes")
		return w.Run(ctx)
	},
}
