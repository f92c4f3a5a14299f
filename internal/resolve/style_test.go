package resolve

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/platformkit/platformkit/internal/platform"
)

func writeFiles(t *testing.T, fsys afero.Fs, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := afero.WriteFile(fsys, p, []byte("/* */"), 0o644); err != nil {
			t.Fatalf("writing %s: %v", p, err)
		}
	}
}

func TestStyleResolver_Resolve(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys,
		"/proj/app/theme.css",
		"/proj/app/theme.ios.css",
		"/proj/app/common.css",
		"/proj/app/views/local.visionos.scss",
		"/proj/app/views/local.scss",
		"/proj/node_modules/@scope/theme/core.css",
	)
	r := platform.DefaultRegistry()

	tests := []struct {
		name      string
		active    platform.Platform
		specifier string
		baseDir   string
		want      string
	}{
		{"platform sibling", platform.IOS, "./theme.css", "/proj/app", "/proj/app/theme.ios.css"},
		{"generic when no sibling", platform.Android, "./theme.css", "/proj/app", "/proj/app/theme.css"},
		{"alias target sibling", platform.VisionOS, "./theme.css", "/proj/app", "/proj/app/theme.ios.css"},
		{"own sibling before alias", platform.VisionOS, "./local.scss", "/proj/app/views", "/proj/app/views/local.visionos.scss"},
		{"tilde rooted at app", platform.IOS, "~/theme.css", "/proj/app/views", "/proj/app/theme.ios.css"},
		{"parent relative", platform.Android, "../common.css", "/proj/app/views", "/proj/app/common.css"},
		{"package", platform.IOS, "@scope/theme/core.css", "/proj/app/views", "/proj/node_modules/@scope/theme/core.css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStyleResolver(fsys, tt.active, r, "/proj/app")
			got, err := s.Resolve(tt.specifier, tt.baseDir)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.specifier, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.specifier, got, tt.want)
			}
		})
	}
}

func TestStyleResolver_NotFound(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := NewStyleResolver(fsys, platform.IOS, platform.DefaultRegistry(), "/proj/app")

	for _, spec := range []string{"./missing.css", "missing-pkg/x.css"} {
		_, err := s.Resolve(spec, "/proj/app")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve(%q) error = %v, want ErrNotFound", spec, err)
		}
	}
}

func TestStyleResolver_CustomFallback(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := NewStyleResolver(fsys, platform.VisionOS, platform.DefaultRegistry(), "/proj/app")

	var gotSpec string
	s.Fallback = func(specifier, baseDir string) (string, error) {
		gotSpec = specifier
		return "resolved:" + specifier, nil
	}

	got, err := s.Resolve("./theme.css", "/proj/app")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if gotSpec != "./theme.css" {
		t.Errorf("fallback received %q, want unmodified specifier", gotSpec)
	}
	if got != "resolved:./theme.css" {
		t.Errorf("Resolve = %q", got)
	}
}

func TestStyleResolver_Candidates(t *testing.T) {
	s := NewStyleResolver(afero.NewMemMapFs(), platform.VisionOS, platform.DefaultRegistry(), "/proj/app")

	got := s.Candidates("./a/b.css", "/proj/app")
	want := []string{"/proj/app/a/b.visionos.css", "/proj/app/a/b.ios.css"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}

	if c := s.Candidates("pkg/b.css", "/proj/app"); c != nil {
		t.Errorf("package specifier candidates = %v, want none", c)
	}
	if c := s.Candidates("./noext", "/proj/app"); c != nil {
		t.Errorf("extensionless candidates = %v, want none", c)
	}
}
