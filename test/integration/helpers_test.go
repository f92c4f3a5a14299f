//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // PLATFORMKIT_HOME, holds config.yaml
	ProjectDir string // A mock app project
}

// setupTestEnv creates isolated temp directories and points
// PLATFORMKIT_HOME at one of them. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("PLATFORMKIT_HOME", env.HomeDir)
	return env
}

// setupProject writes a project with platform-specific scripts, styles and
// resources for ios, android and visionos. Returns the project file path.
func setupProject(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "platformkit.yaml")
	writeFile(t, path, `name: demo-app
runtime_version: 8.6.0
defines:
  API_URL: '"https://api.example.com"'
aliases:
  "@shared": ../shared
externals:
  - "@platformkit/core"
`)
	writeFile(t, filepath.Join(dir, "tsconfig.json"), `{
  // project-wide path aliases
  "compilerOptions": {
    "baseUrl": ".",
    "paths": {
      "~/*": ["app/*"],
      "@components/*": ["app/components/*"],
    },
  },
}
`)

	files := []string{
		"app/app.ts",
		"app/main-page.ts",
		"app/main-page.ios.ts",
		"app/main-page.android.ts",
		"app/main-page.visionos.ts",
		"app/components/button.ts",
		"app/components/button.android.ts",
		"app/app.css",
		"app/app.ios.css",
		"app/app.android.css",
		"app/fonts/icons.ttf",
		"App_Resources/iOS/Info.plist",
		"App_Resources/Android/src/main/AndroidManifest.xml",
		"App_Resources/visionOS/Info.plist",
	}
	for _, f := range files {
		writeFile(t, filepath.Join(dir, filepath.FromSlash(f)), "")
	}
	return path
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
