package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func newTestViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	configure(v)
	return v
}

func TestFeatures_Defaults(t *testing.T) {
	f := featuresFrom(newTestViper(t))
	if f != (Features{}) {
		t.Errorf("expected all features off, got %+v", f)
	}
	if f.Mode() != "development" {
		t.Errorf("Mode() = %q", f.Mode())
	}
}

func TestFeatures_Env(t *testing.T) {
	t.Setenv("PLATFORMKIT_HMR", "true")
	t.Setenv("PLATFORMKIT_SOURCE_MAP", "1")
	t.Setenv("PLATFORMKIT_PRODUCTION", "true")

	f := featuresFrom(newTestViper(t))
	if !f.HMR || !f.SourceMap || !f.Production {
		t.Errorf("env flags not applied: %+v", f)
	}
	if f.Report {
		t.Error("report should stay off")
	}
	if f.Mode() != "production" {
		t.Errorf("Mode() = %q", f.Mode())
	}
}

func TestFeatures_FlagOverridesEnv(t *testing.T) {
	t.Setenv("PLATFORMKIT_REPORT", "true")

	v := newTestViper(t)
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool(KeyReport, false, "")
	flags.Bool(KeyJSX, false, "")
	if err := bindFlags(v, flags); err != nil {
		t.Fatalf("bindFlags error: %v", err)
	}

	// Unset flags do not shadow the environment.
	if f := featuresFrom(v); !f.Report {
		t.Error("env report should apply when flag is not set")
	}

	if err := flags.Parse([]string{"--report=false", "--jsx"}); err != nil {
		t.Fatal(err)
	}
	f := featuresFrom(v)
	if f.Report {
		t.Error("explicit --report=false should override env")
	}
	if !f.JSX {
		t.Error("--jsx should be on")
	}
}

func TestFeatures_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("verbose: true\nunit-testing: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	v := newTestViper(t)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig error: %v", err)
	}
	f := featuresFrom(v)
	if !f.Verbose || !f.UnitTesting {
		t.Errorf("config file flags not applied: %+v", f)
	}
}

func TestDir_Override(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PLATFORMKIT_HOME", dir)
	if Dir() != dir {
		t.Errorf("Dir() = %q, want %q", Dir(), dir)
	}
	if FilePath() != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", FilePath())
	}
}
