package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestInfoFill(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/matzehuels/hextile", Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}

	got := Info{Version: defaultVersion, Commit: defaultCommit, Date: defaultDate}.fill(bi)
	want := Info{Version: "v0.3.0", Commit: "0123456789ab", Date: "2026-10-01T12:00:00Z"}
	if got != want {
		t.Errorf("fill() = %+v, want %+v", got, want)
	}
}

func TestInfoFillKeepsStamped(t *testing.T) {
	bi := &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffff"}},
	}
	stamped := Info{Version: "v1.0.0", Commit: "abc123", Date: "2026-01-01"}
	if got := stamped.fill(bi); got != stamped {
		t.Errorf("fill() overwrote ldflags values: %+v", got)
	}
}

func TestInfoFillDevelBuild(t *testing.T) {
	bi := &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}
	got := Info{Version: defaultVersion, Commit: defaultCommit, Date: defaultDate}.fill(bi)
	if got.Version != defaultVersion {
		t.Errorf("Version = %q, want %q for a local build", got.Version, defaultVersion)
	}
}

func TestInfoTemplate(t *testing.T) {
	info := Info{Version: "v1.0.0", Commit: "abc123", Date: "2026-01-01"}
	tmpl := info.Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version v1.0.0") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(info.String(), "commit: abc123") {
		t.Errorf("String() = %q", info.String())
	}
}
