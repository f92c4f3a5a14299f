package buildconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/platformkit/platformkit/internal/platform"
	"github.com/platformkit/platformkit/internal/project"
	"github.com/platformkit/platformkit/internal/resolve"
	"github.com/platformkit/platformkit/internal/tsconfig"
)

// Loader and entry identifiers emitted into the configuration.
const (
	ScriptLoader        = "ts-loader"
	StyleLoader         = "css2json-loader"
	SassLoader          = "sass-loader"
	XMLLoader           = "xml-namespace-loader"
	HMRClientEntry      = "@platformkit/runtime/hmr"
	BundleEntryName     = "bundle"
	TestEntryName       = "test"
	DefaultTestEntry    = "./tests/index.ts"
	OutputFilename      = "[name].js"
	ReportDir           = "report"
	ReportFile          = "report.html"
	StatsFile           = "stats.json"
	DevSourceMap        = "inline-source-map"
	ProductionSourceMap = "hidden-source-map"
)

var errNoPlatform = errors.New("platform not set: the platform step must run first")

// builtinDefines are set by the pipeline from features and may not be
// supplied by a project.
var builtinDefines = []string{
	"process.env.NODE_ENV",
	"__DEV__",
	"__TEST__",
	"__VERBOSE__",
	"__HMR__",
}

// Base builds the unspecialized configuration from a project.
func Base(p *project.Project) Config {
	appDir := p.AppDir()
	return Config{
		Name:    p.Name,
		Context: appDir,
		Entry: map[string][]string{
			BundleEntryName: {joinApp(appDir, p.Entry)},
		},
		Output: Output{
			Path:     filepath.Join(p.Root, p.OutputPath),
			Filename: OutputFilename,
		},
		Externals: slices.Clone(p.Externals),
	}
}

func applyPlatform(c Config, in Inputs) (Config, error) {
	p, err := in.Registry.Parse(in.PlatformName)
	if err != nil {
		return c, err
	}
	if in.Project != nil {
		if err := in.Registry.CheckRuntime(p, in.Project.RuntimeVersion); err != nil {
			return c, err
		}
	}
	c.Platform = p
	return c, nil
}

func applyMode(c Config, in Inputs) (Config, error) {
	c.Mode = in.Features.Mode()
	return c, nil
}

func applyExtensions(c Config, in Inputs) (Config, error) {
	if c.Platform == "" {
		return c, errNoPlatform
	}
	c.Resolve.Extensions = resolve.BuildExtensionList(c.Platform, in.Registry, baseExtensions(in))
	return c, nil
}

// baseExtensions returns the project's extension list, or the defaults,
// with tsx appended when the UI-component extension mode is on.
func baseExtensions(in Inputs) []string {
	if in.Project == nil || len(in.Project.Extensions) == 0 {
		return resolve.DefaultExtensions(in.Features.JSX)
	}
	exts := slices.Clone(in.Project.Extensions)
	if in.Features.JSX && !slices.Contains(exts, "tsx") && !slices.Contains(exts, ".tsx") {
		exts = append(exts, "tsx")
	}
	return exts
}

func applyExclusions(c Config, in Inputs) (Config, error) {
	if c.Platform == "" {
		return c, errNoPlatform
	}
	c.Resolve.Exclude = resolve.BuildExclusionPatterns(c.Platform, in.Registry, resourceSegment(in))
	return c, nil
}

// resourceSegment returns the resource directory as a slash-separated
// path segment suitable for matching.
func resourceSegment(in Inputs) string {
	if in.Project == nil || in.Project.ResourcesPath == "" {
		return resolve.DefaultResourceDir
	}
	dir := in.Project.ResourcesPath
	if filepath.IsAbs(dir) {
		dir = filepath.Base(dir)
	}
	return filepath.ToSlash(filepath.Clean(dir))
}

func applyDefines(c Config, in Inputs) (Config, error) {
	if c.Platform == "" {
		return c, errNoPlatform
	}
	platformDefs := platform.Defines(c.Platform, in.Registry)

	defs := make(map[string]string)
	if in.Project != nil {
		for k, v := range in.Project.Defines {
			if _, reserved := platformDefs[k]; reserved {
				return c, fmt.Errorf("define %s is reserved for platform flags", k)
			}
			if slices.Contains(builtinDefines, k) {
				return c, fmt.Errorf("define %s is reserved for build flags", k)
			}
			defs[k] = v
		}
	}

	defs["process.env.NODE_ENV"] = strconv.Quote(in.Features.Mode())
	defs["__DEV__"] = strconv.FormatBool(!in.Features.Production)
	defs["__TEST__"] = strconv.FormatBool(in.Features.UnitTesting)
	defs["__VERBOSE__"] = strconv.FormatBool(in.Features.Verbose)
	for k, v := range platformDefs {
		defs[k] = v
	}

	c.Defines = defs
	return c, nil
}

// applyRules needs the exclusion set: every rule skips node_modules and
// the files the active platform excludes.
func applyRules(c Config, in Inputs) (Config, error) {
	if c.Platform == "" {
		return c, errNoPlatform
	}
	scripts := []string{"ts", "js", "mjs"}
	if in.Features.JSX {
		scripts = append(scripts, "tsx")
	}
	exclude := append([]string{"node_modules"}, c.Resolve.Exclude.Strings()...)

	c.Rules = []Rule{
		{
			Name:    "scripts",
			Test:    `\.(` + strings.Join(scripts, "|") + `)$`,
			Use:     []string{ScriptLoader},
			Exclude: slices.Clone(exclude),
		},
		{
			Name:    "css",
			Test:    `\.css$`,
			Use:     []string{StyleLoader},
			Exclude: slices.Clone(exclude),
		},
		{
			Name:    "scss",
			Test:    `\.scss$`,
			Use:     []string{StyleLoader, SassLoader},
			Exclude: slices.Clone(exclude),
		},
		{
			Name:    "xml",
			Test:    `\.xml$`,
			Use:     []string{XMLLoader},
			Exclude: slices.Clone(exclude),
		},
	}
	return c, nil
}

// applyAliases layers "~" and "@" (the app directory), tsconfig paths and
// project aliases, later sources winning.
func applyAliases(c Config, in Inputs) (Config, error) {
	alias := map[string]string{
		"~": c.Context,
		"@": c.Context,
	}

	if in.Project != nil {
		tsAliases, err := loadTSAliases(in)
		if err != nil {
			return c, err
		}
		for k, v := range tsAliases {
			alias[k] = filepath.FromSlash(v)
		}
		for k, v := range in.Project.Aliases {
			if !filepath.IsAbs(v) {
				v = filepath.Join(in.Project.Root, v)
			}
			alias[k] = v
		}
	}

	c.Resolve.Alias = alias
	return c, nil
}

// loadTSAliases reads the project's tsconfig. A missing file is not an
// error; a malformed one is.
func loadTSAliases(in Inputs) (map[string]string, error) {
	path := in.Project.TSConfigPath()
	if in.FS == nil || path == "" {
		return nil, nil
	}
	if !fileExists(in.FS, path) {
		return nil, nil
	}
	cfg, err := tsconfig.Load(in.FS, path)
	if err != nil {
		return nil, err
	}
	return cfg.Aliases(), nil
}

// applyCopy roots every copy rule at the app directory and keeps the
// resource tree and other platforms' files out of the output.
func applyCopy(c Config, in Inputs) (Config, error) {
	if c.Platform == "" {
		return c, errNoPlatform
	}
	if in.Project == nil {
		return c, nil
	}

	ignore := []string{filepath.ToSlash(resourceSegment(in)) + "/**"}
	if others := in.Registry.Others(c.Platform); len(others) > 0 {
		names := make([]string, len(others))
		for i, p := range others {
			names[i] = string(p)
		}
		sort.Strings(names)
		ignore = append(ignore, "**/*.+("+strings.Join(names, "|")+").*")
	}

	rules := make([]CopyRule, 0, len(in.Project.Copy))
	for _, r := range in.Project.Copy {
		rules = append(rules, CopyRule{
			From:    r.From,
			To:      r.To,
			Context: c.Context,
			Ignore:  append(slices.Clone(r.Ignore), ignore...),
		})
	}
	c.Copy = rules
	return c, nil
}

func applySourceMap(c Config, in Inputs) (Config, error) {
	switch {
	case !in.Features.Production:
		c.Devtool = DevSourceMap
	case in.Features.SourceMap:
		c.Devtool = ProductionSourceMap
	default:
		c.Devtool = ""
	}
	return c, nil
}

// applyHotReload is development-only; production builds ignore the flag.
func applyHotReload(c Config, in Inputs) (Config, error) {
	if !in.Features.HMR || in.Features.Production {
		return c, nil
	}
	c.HMR = true
	if c.Defines == nil {
		c.Defines = make(map[string]string)
	}
	c.Defines["__HMR__"] = "true"
	if c.Entry == nil {
		c.Entry = make(map[string][]string)
	}
	c.Entry[BundleEntryName] = append([]string{HMRClientEntry}, c.Entry[BundleEntryName]...)
	return c, nil
}

func applyUnitTesting(c Config, in Inputs) (Config, error) {
	if !in.Features.UnitTesting {
		return c, nil
	}
	if c.Entry == nil {
		c.Entry = make(map[string][]string)
	}
	c.Entry[TestEntryName] = []string{joinApp(c.Context, DefaultTestEntry)}
	return c, nil
}

func applyAnalysis(c Config, in Inputs) (Config, error) {
	if !in.Features.Report {
		return c, nil
	}
	root := filepath.Dir(c.Output.Path)
	if in.Project != nil {
		root = in.Project.Root
	}
	c.Analysis = &Analysis{
		ReportPath: filepath.Join(root, ReportDir, ReportFile),
		StatsPath:  filepath.Join(root, ReportDir, StatsFile),
	}
	return c, nil
}

func joinApp(appDir, entry string) string {
	if filepath.IsAbs(entry) {
		return entry
	}
	return filepath.Join(appDir, entry)
}

// fileExists reports whether path exists on fsys.
func fileExists(fsys afero.Fs, path string) bool {
	ok, err := afero.Exists(fsys, path)
	return err == nil && ok
}
