// Package buildinfo reports which hextile build is running.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/hextile/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/hextile/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/hextile/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/hextile
//
// Binaries built with "go install github.com/matzehuels/hextile/cmd/hextile@latest"
// carry no ldflags; their version and VCS stamp come from the module build
// info embedded by the Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

const (
	defaultVersion = "dev"
	defaultCommit  = "none"
	defaultDate    = "unknown"

	shortCommit = 12
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = defaultVersion

	// Commit is the git commit SHA.
	Commit = defaultCommit

	// Date is the build timestamp.
	Date = defaultDate
)

// Info is the resolved build identity.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the build identity, filling values that were not stamped
// with ldflags from the embedded module build info.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = info.fill(bi)
	}
	return info
}

func (i Info) fill(bi *debug.BuildInfo) Info {
	if i.Version == defaultVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.Commit == defaultCommit {
				i.Commit = s.Value
				if len(i.Commit) > shortCommit {
					i.Commit = i.Commit[:shortCommit]
				}
			}
		case "vcs.time":
			if i.Date == defaultDate {
				i.Date = s.Value
			}
		}
	}
	return i
}

// String returns the formatted build information.
func (i Info) String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", i.Version, i.Commit, i.Date)
}

// Template returns the version template string for cobra.
func (i Info) Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", i.Version, i.Commit, i.Date)
}
