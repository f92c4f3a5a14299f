package buildconfig

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/platformkit/platformkit/internal/config"
	"github.com/platformkit/platformkit/internal/platform"
	"github.com/platformkit/platformkit/internal/project"
)

// Request is everything Specialize needs for one build.
type Request struct {
	Project  *project.Project
	Platform string
	Features config.Features
	// Registry is extended with the project's platform declarations.
	// Nil means platform.DefaultRegistry().
	Registry *platform.Registry
	// FS is used to read tsconfig. Nil means the OS filesystem.
	FS    afero.Fs
	Trace TraceFunc
}

// Specialize builds the base config for req.Project and runs the default
// pipeline for req.Platform.
func Specialize(req Request) (Config, error) {
	if req.Project == nil {
		return Config{}, fmt.Errorf("specializing: no project")
	}

	base := req.Registry
	if base == nil {
		base = platform.DefaultRegistry()
	}
	reg, err := req.Project.Registry(base)
	if err != nil {
		return Config{}, err
	}

	fsys := req.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	p := DefaultPipeline()
	p.Trace = req.Trace
	return p.Run(Base(req.Project), Inputs{
		PlatformName: req.Platform,
		Registry:     reg,
		Features:     req.Features,
		Project:      req.Project,
		FS:           fsys,
	})
}
