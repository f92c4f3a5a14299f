package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/platformkit/platformkit/internal/branding"
	"github.com/platformkit/platformkit/internal/platform"
	"github.com/platformkit/platformkit/internal/project"
	"github.com/platformkit/platformkit/internal/resolve"
	"github.com/platformkit/platformkit/internal/tsconfig"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the project layout and platform declarations",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := &doctor{out: cmd.OutOrStdout(), fs: afero.NewOsFs()}
		d.run()
		if d.failures > 0 {
			return fmt.Errorf("doctor found %d problem(s)", d.failures)
		}
		return nil
	},
}

type doctor struct {
	out      io.Writer
	fs       afero.Fs
	failures int
}

func (d *doctor) ok(format string, a ...any) {
	fmt.Fprintf(d.out, "  [ OK ] "+format+"\n", a...)
}

func (d *doctor) warn(format string, a ...any) {
	fmt.Fprintf(d.out, "  [WARN] "+format+"\n", a...)
}

func (d *doctor) fail(format string, a ...any) {
	d.failures++
	fmt.Fprintf(d.out, "  [FAIL] "+format+"\n", a...)
}

func (d *doctor) run() {
	fmt.Fprintln(d.out, "Project check:")
	path, err := projectFile()
	if err != nil {
		d.fail("%v", err)
		return
	}
	p, err := project.Load(path)
	if err != nil {
		d.fail("%v", err)
		return
	}
	d.ok("%s is valid", path)

	d.checkDir("app path", p.AppDir())
	d.checkDir("resources path", p.ResourcesDir())
	entry := filepath.Join(p.AppDir(), filepath.FromSlash(p.Entry))
	if exists, _ := afero.Exists(d.fs, entry); exists {
		d.ok("entry %s found", p.Entry)
	} else {
		d.fail("entry %s not found in %s", p.Entry, p.AppDir())
	}
	d.checkTSConfig(p)

	reg, err := projectRegistry(p)
	if err != nil {
		d.fail("platform declarations: %v", err)
		return
	}
	d.checkPlatforms(p, reg)
	d.checkPlatformFiles(p, reg)
}

func (d *doctor) checkDir(label, dir string) {
	info, err := d.fs.Stat(dir)
	switch {
	case err != nil:
		d.fail("%s %s does not exist", label, dir)
	case !info.IsDir():
		d.fail("%s %s is not a directory", label, dir)
	default:
		d.ok("%s %s", label, dir)
	}
}

func (d *doctor) checkTSConfig(p *project.Project) {
	path := p.TSConfigPath()
	if exists, _ := afero.Exists(d.fs, path); !exists {
		d.warn("%s not found; only default aliases apply", p.TSConfig)
		return
	}
	cfg, err := tsconfig.Load(d.fs, path)
	if err != nil {
		d.fail("%v", err)
		return
	}
	d.ok("%s parsed (%d path alias(es))", p.TSConfig, len(cfg.Aliases()))
}

func (d *doctor) checkPlatforms(p *project.Project, reg *platform.Registry) {
	fmt.Fprintln(d.out, "Platform check:")
	for _, pl := range reg.Known() {
		label := string(pl)
		if target, ok := reg.AliasOf(pl); ok {
			label += " (falls back to " + string(target) + ")"
		}
		req := reg.Requirement(pl)
		switch {
		case req == "":
			d.ok("%s", label)
		case p.RuntimeVersion == "":
			d.warn("%s requires runtime %s; runtime_version not declared in %s", label, req, branding.ProjectFile())
		default:
			if err := reg.CheckRuntime(pl, p.RuntimeVersion); err != nil {
				d.fail("%v", err)
				continue
			}
			d.ok("%s (runtime %s satisfies %s)", label, p.RuntimeVersion, req)
		}
	}
}

// checkPlatformFiles reports how many app files each platform build
// leaves out and flags resource directories nested inside the app path.
func (d *doctor) checkPlatformFiles(p *project.Project, reg *platform.Registry) {
	fmt.Fprintln(d.out, "Platform files:")
	appDir := p.AppDir()
	if info, err := d.fs.Stat(appDir); err != nil || !info.IsDir() {
		d.warn("skipped; app path missing")
		return
	}

	nested := make(map[string]bool)
	for _, pl := range reg.Known() {
		set := resolve.BuildExclusionPatterns(pl, reg, filepath.Base(p.ResourcesDir()))
		hits, err := resolve.Scan(d.fs, appDir, set)
		if err != nil {
			d.fail("scanning for %s: %v", pl, err)
			return
		}
		n := 0
		for _, h := range hits {
			if h.Pattern == resolve.PatternResources {
				nested[h.Path] = true
				continue
			}
			n++
		}
		d.ok("%s build excludes %d file(s) suffixed for other platforms", pl, n)
	}

	paths := make([]string, 0, len(nested))
	for path := range nested {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		d.warn("%s sits inside the app path and is never bundled", path)
	}
}
