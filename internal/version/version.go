// Package version reports the build version of the wizard.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/flochat/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/flochat/internal/version.Commit=abc1234"
//
// Unset values are filled from VCS build info, then from the fallbacks below.
var (
	Version = ""
	Commit  = ""
)

const (
	devVersion    = "dev"
	unknownCommit = "unknown"
	shortHashLen  = 7
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			fillFromBuildInfo(info)
		}
	}
	if Version == "" {
		Version = devVersion
	}
	if Commit == "" {
		Commit = unknownCommit
	}
}

// fillFromBuildInfo sets whichever of Version and Commit are still empty
func fillFromBuildInfo(info *debug.BuildInfo) {
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	if Commit != "" {
		return
	}
	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return
	}
	if len(revision) > shortHashLen {
		revision = revision[:shortHashLen]
	}
	if dirty {
		revision += "-dirty"
	}
	Commit = revision
}

// Full returns the version with commit, e.g. "v0.3.0 (commit: abc1234)"
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Platform returns the Go version and target, e.g. "go1.24.0 linux/amd64"
func Platform() string {
	return fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
