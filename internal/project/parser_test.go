package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/platformkit/platformkit/internal/platform"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestLoad_Full(t *testing.T) {
	p, err := Load(testPath("valid-full.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if p.Name != "demo-app" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.AppPath != "src" || p.OutputPath != "platforms/out" {
		t.Errorf("paths = %q, %q", p.AppPath, p.OutputPath)
	}
	if p.RuntimeVersion != "8.6.2" {
		t.Errorf("RuntimeVersion = %q", p.RuntimeVersion)
	}
	if diff := cmp.Diff([]string{"ts", "js", "css", "scss", "json"}, p.Extensions); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}
	if p.Defines["__FEATURE_X__"] != "true" {
		t.Errorf("Defines = %v", p.Defines)
	}
	if len(p.Copy) != 2 || p.Copy[1].Ignore[0] != "**/*.psd" {
		t.Errorf("Copy = %+v", p.Copy)
	}
	if p.TSConfig != "tsconfig.app.json" {
		t.Errorf("TSConfig = %q", p.TSConfig)
	}

	wantRoot, _ := filepath.Abs(testdataDir)
	if p.Root != wantRoot {
		t.Errorf("Root = %q, want %q", p.Root, wantRoot)
	}
	if p.AppDir() != filepath.Join(wantRoot, "src") {
		t.Errorf("AppDir = %q", p.AppDir())
	}
}

func TestLoad_Defaults(t *testing.T) {
	p, err := Load(testPath("valid-minimal.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if p.AppPath != DefaultAppPath {
		t.Errorf("AppPath = %q", p.AppPath)
	}
	if p.ResourcesPath != DefaultResourcesPath {
		t.Errorf("ResourcesPath = %q", p.ResourcesPath)
	}
	if p.OutputPath != DefaultOutputPath {
		t.Errorf("OutputPath = %q", p.OutputPath)
	}
	if p.Entry != DefaultEntry {
		t.Errorf("Entry = %q", p.Entry)
	}
	if p.TSConfig != DefaultTSConfig {
		t.Errorf("TSConfig = %q", p.TSConfig)
	}
	if diff := cmp.Diff(DefaultCopy, p.Copy); diff != "" {
		t.Errorf("Copy mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(testPath("invalid-missing-name.yaml"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load error = %v, want ErrInvalid", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	if _, err := Load(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParse_Error(t *testing.T) {
	if _, err := Parse([]byte("name: [x")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "app", "views")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	projectFile := filepath.Join(root, "platformkit.yaml")
	if err := os.WriteFile(projectFile, []byte("name: demo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Find(nested)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if got != projectFile {
		t.Errorf("Find = %q, want %q", got, projectFile)
	}

	if _, err := Find(t.TempDir()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find error = %v, want ErrNotFound", err)
	}
}

func TestRegistry(t *testing.T) {
	p, err := Load(testPath("valid-full.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	base := platform.DefaultRegistry()
	r, err := p.Registry(base)
	if err != nil {
		t.Fatalf("Registry error: %v", err)
	}

	if base.IsKnown("macos") {
		t.Error("base registry was modified")
	}
	if diff := cmp.Diff([]platform.Platform{"macos", platform.VisionOS, platform.IOS}, r.Family("macos")); diff != "" {
		t.Errorf("Family(macos) mismatch (-want +got):\n%s", diff)
	}
	if r.Requirement("macos") != ">= 8.7.0" {
		t.Errorf("Requirement(macos) = %q", r.Requirement("macos"))
	}
}

func TestRegistry_BadAlias(t *testing.T) {
	p := &Project{Name: "x", Platforms: []PlatformDecl{{Name: "tvos", Alias: "tizen"}}}
	_, err := p.Registry(platform.DefaultRegistry())
	if !errors.Is(err, platform.ErrUnknownPlatform) {
		t.Errorf("error = %v, want ErrUnknownPlatform", err)
	}
}
