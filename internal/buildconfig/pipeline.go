package buildconfig

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/platformkit/platformkit/internal/config"
	"github.com/platformkit/platformkit/internal/platform"
	"github.com/platformkit/platformkit/internal/project"
)

// Inputs are the explicit values every step may read.
type Inputs struct {
	// PlatformName is the unvalidated platform requested by the caller.
	PlatformName string
	Registry     *platform.Registry
	Features     config.Features
	Project      *project.Project
	FS           afero.Fs
}

// Step is one specialization stage.
type Step struct {
	Name  string
	Apply func(Config, Inputs) (Config, error)
}

// TraceFunc observes the config after each applied step.
type TraceFunc func(step string, c Config)

// Pipeline applies Steps in order.
type Pipeline struct {
	Steps []Step
	Trace TraceFunc
}

// Run applies every step to a copy of base. Each step gets its own copy
// of the previous result, so no step can alter a value another step or
// the caller holds. The first failing step aborts the run.
func (p Pipeline) Run(base Config, in Inputs) (Config, error) {
	cur := base.Clone()
	for _, step := range p.Steps {
		next, err := step.Apply(cur.Clone(), in)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", step.Name, err)
		}
		cur = next
		if p.Trace != nil {
			p.Trace(step.Name, cur.Clone())
		}
	}
	return cur, nil
}

// DefaultSteps returns the standard specialization order. Platform must
// come first: every later step depends on the validated platform.
func DefaultSteps() []Step {
	return []Step{
		{Name: "platform", Apply: applyPlatform},
		{Name: "mode", Apply: applyMode},
		{Name: "extensions", Apply: applyExtensions},
		{Name: "exclusions", Apply: applyExclusions},
		{Name: "defines", Apply: applyDefines},
		{Name: "rules", Apply: applyRules},
		{Name: "aliases", Apply: applyAliases},
		{Name: "copy", Apply: applyCopy},
		{Name: "source-map", Apply: applySourceMap},
		{Name: "hot-reload", Apply: applyHotReload},
		{Name: "unit-testing", Apply: applyUnitTesting},
		{Name: "analysis", Apply: applyAnalysis},
	}
}

// DefaultPipeline returns a pipeline running DefaultSteps.
func DefaultPipeline() Pipeline {
	return Pipeline{Steps: DefaultSteps()}
}
