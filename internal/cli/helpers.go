package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/platformkit/platformkit/internal/buildconfig"
	"github.com/platformkit/platformkit/internal/platform"
	"github.com/platformkit/platformkit/internal/project"
)

// addPlatformFlag registers the required --platform flag on cmd.
func addPlatformFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "platform", "p", "", "Target platform (e.g. ios, android, visionos)")
	_ = cmd.MarkFlagRequired("platform")
}

// projectFile returns --project or the nearest project file above the
// working directory.
func projectFile() (string, error) {
	if projectPath != "" {
		return projectPath, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return project.Find(wd)
}

func loadProject() (*project.Project, error) {
	path, err := projectFile()
	if err != nil {
		return nil, err
	}
	p, err := project.Load(path)
	if err != nil {
		return nil, err
	}
	log.WithField("path", path).Debug("loaded project")
	return p, nil
}

// projectRegistry returns the default registry extended by p.
func projectRegistry(p *project.Project) (*platform.Registry, error) {
	return p.Registry(platform.DefaultRegistry())
}

// specialize runs the default pipeline, tracing each step at debug level.
func specialize(p *project.Project, platformName string) (buildconfig.Config, error) {
	return buildconfig.Specialize(buildconfig.Request{
		Project:  p,
		Platform: platformName,
		Features: features,
		FS:       afero.NewOsFs(),
		Trace: func(step string, c buildconfig.Config) {
			log.WithFields(logrus.Fields{
				"step":       step,
				"platform":   c.Platform,
				"extensions": len(c.Resolve.Extensions),
				"rules":      len(c.Rules),
			}).Debug("applied step")
		},
	})
}

// writeOutput writes data to path, or to cmd's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.WithField("path", path).Info("wrote configuration")
	return nil
}
