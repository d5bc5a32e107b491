// Package buildinfo reports the version of the frogleap binary.
//
// Values are injected with ldflags:
//
//	go build -ldflags "-X github.com/elitelau/frog-leap-problem/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/elitelau/frog-leap-problem/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/elitelau/frog-leap-problem/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Without ldflags, a binary installed with `go install` still reports the
// module version recorded by the toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build information served by the HTTP API.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

var readBuildInfo = debug.ReadBuildInfo

// Get returns the effective build information.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if info.Version != "dev" {
		return info
	}
	if bi, ok := readBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	return info
}

// String returns the formatted build information.
func String() string {
	i := Get()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", i.Version, i.Commit, i.Date)
}

// Template returns the version template for cobra.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", i.Version, i.Commit, i.Date)
}

// CacheScope is the key prefix isolating cached artifacts of this build.
func CacheScope() string {
	return Get().Version + ":"
}
