package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/platformkit/platformkit/internal/platform"
)

func TestBuildExtensionList(t *testing.T) {
	r := platform.DefaultRegistry()

	tests := []struct {
		name   string
		active platform.Platform
		base   []string
		want   ExtensionList
	}{
		{
			name:   "android single",
			active: platform.Android,
			base:   []string{"ts"},
			want:   ExtensionList{".android.ts", ".ts"},
		},
		{
			name:   "ios keeps caller order",
			active: platform.IOS,
			base:   []string{"ts", "css"},
			want:   ExtensionList{".ios.ts", ".ts", ".ios.css", ".css"},
		},
		{
			name:   "visionos appends ios fallback",
			active: platform.VisionOS,
			base:   []string{"ts"},
			want:   ExtensionList{".visionos.ts", ".ts", ".ios.ts"},
		},
		{
			name:   "visionos multiple",
			active: platform.VisionOS,
			base:   []string{"ts", "js"},
			want:   ExtensionList{".visionos.ts", ".ts", ".visionos.js", ".js", ".ios.ts", ".ios.js"},
		},
		{
			name:   "normalizes dots and duplicates",
			active: platform.Android,
			base:   []string{".ts", "ts", "", "json"},
			want:   ExtensionList{".android.ts", ".ts", ".android.json", ".json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildExtensionList(tt.active, r, tt.base)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildExtensionList mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildExtensionList_PlatformPrecedesGeneric(t *testing.T) {
	r := platform.DefaultRegistry()
	for _, p := range r.Known() {
		for _, e := range DefaultExtensions(true) {
			list := BuildExtensionList(p, r, []string{e})
			qi := list.Index("." + string(p) + "." + e)
			gi := list.Index("." + e)
			if qi < 0 || gi != qi+1 {
				t.Errorf("%s/%s: qualified at %d, generic at %d in %v", p, e, qi, gi, list)
			}
		}
	}
}

func TestBuildExtensionList_AliasEntriesFollow(t *testing.T) {
	r := platform.DefaultRegistry()
	exts := DefaultExtensions(false)
	list := BuildExtensionList(platform.VisionOS, r, exts)

	seen := map[string]bool{}
	for _, e := range list {
		if seen[e] {
			t.Fatalf("duplicate entry %q in %v", e, list)
		}
		seen[e] = true
	}

	for _, e := range exts {
		own := list.Index(".visionos." + e)
		alias := list.Index(".ios." + e)
		generic := list.Index("." + e)
		if own < 0 || alias < 0 || generic < 0 {
			t.Fatalf("missing entries for %s in %v", e, list)
		}
		if alias <= own {
			t.Errorf(".ios.%s at %d should follow .visionos.%s at %d", e, alias, e, own)
		}
	}
	if len(list) != len(exts)*3 {
		t.Errorf("expected %d entries, got %d", len(exts)*3, len(list))
	}
}

func TestBuildExtensionList_ChainedAlias(t *testing.T) {
	r := platform.DefaultRegistry()
	if err := r.Register("macos"); err != nil {
		t.Fatal(err)
	}
	if err := r.Alias("macos", platform.VisionOS); err != nil {
		t.Fatal(err)
	}

	got := BuildExtensionList("macos", r, []string{"ts"})
	want := ExtensionList{".macos.ts", ".ts", ".visionos.ts", ".ios.ts"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildExtensionList_Idempotent(t *testing.T) {
	r := platform.DefaultRegistry()
	exts := DefaultExtensions(true)
	first := BuildExtensionList(platform.VisionOS, r, exts)
	second := BuildExtensionList(platform.VisionOS, r, exts)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated calls differ (-first +second):\n%s", diff)
	}
}

func TestDefaultExtensions(t *testing.T) {
	if diff := cmp.Diff([]string{"ts", "js", "mjs", "css", "scss", "json"}, DefaultExtensions(false)); diff != "" {
		t.Errorf("without jsx (-want +got):\n%s", diff)
	}
	withJSX := DefaultExtensions(true)
	if withJSX[len(withJSX)-1] != "tsx" {
		t.Errorf("expected tsx appended, got %v", withJSX)
	}
	if len(BaseExtensions) != 6 {
		t.Error("DefaultExtensions must not mutate BaseExtensions")
	}
}
