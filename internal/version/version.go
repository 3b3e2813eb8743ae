package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set during build time
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// BuildInfo contains build and runtime information
type BuildInfo struct {
	Version   string
	SemVer    string
	BuildDate string
	GitCommit string
	GoVersion string
	Platform  string
	Deps      []Module
}

// Module represents a Go module dependency
type Module struct {
	Path    string
	Version string
}

// GetBuildInfo returns build information for the running binary
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		SemVer:    strings.TrimPrefix(strings.Split(Version, "-")[0], "v"),
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range bi.Deps {
			info.Deps = append(info.Deps, Module{Path: dep.Path, Version: dep.Version})
		}
		if info.GitCommit == "unknown" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.GitCommit = s.Value
				}
			}
		}
	}

	return info
}

// FullVersion returns a formatted string with complete version information
func FullVersion() string {
	info := GetBuildInfo()

	var b strings.Builder
	fmt.Fprintf(&b, "linecount %s\n", info.Version)
	b.WriteString("========================================\n\n")
	fmt.Fprintf(&b, "  Semantic Ver: %s\n", info.SemVer)
	fmt.Fprintf(&b, "  Build Date:   %s\n", info.BuildDate)
	fmt.Fprintf(&b, "  Commit:       %s\n", info.GitCommit)
	fmt.Fprintf(&b, "  Go Version:   %s\n", info.GoVersion)
	fmt.Fprintf(&b, "  Platform:     %s\n", info.Platform)

	if len(info.Deps) > 0 {
		b.WriteString("\nDependencies:\n")
		for _, dep := range info.Deps {
			fmt.Fprintf(&b, "  - %s@%s\n", dep.Path, dep.Version)
		}
	}

	return b.String()
}
