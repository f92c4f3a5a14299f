package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/platformkit/platformkit/internal/platform"
)

func TestScan(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys,
		"/proj/app/main.ts",
		"/proj/app/main.ios.ts",
		"/proj/app/main.android.ts",
		"/proj/app/styles/app.visionos.css",
		"/proj/app/App_Resources/Android/app.gradle",
		"/proj/app/App_Resources/iOS/Info.plist",
		"/proj/app/node_modules/dep/index.android.js",
	)

	set := BuildExclusionPatterns(platform.IOS, platform.DefaultRegistry(), "")
	hits, err := Scan(fsys, "/proj/app", set)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	want := []ScanHit{
		{Path: "App_Resources", Pattern: PatternResources},
		{Path: "main.android.ts", Pattern: PatternOtherPlatforms},
		{Path: "styles/app.visionos.css", Pattern: PatternOtherPlatforms},
	}
	if diff := cmp.Diff(want, hits); diff != "" {
		t.Errorf("Scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	set := BuildExclusionPatterns(platform.IOS, platform.DefaultRegistry(), "")
	if _, err := Scan(afero.NewMemMapFs(), "/nope", set); err == nil {
		t.Error("expected error for missing root")
	}
}
