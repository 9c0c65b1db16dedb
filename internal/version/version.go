// Package version reports the planner build version.
package version

import (
	"runtime"
	"runtime/debug"
)

// Version is injected at build time via -ldflags "-X azure-cost-planner/internal/version.Version=v1.2.3".
var Version = ""

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Revision  string `json:"revision,omitempty"`
	GoVersion string `json:"goVersion"`
}

// Get resolves build information, preferring the injected Version, then the module
// version, then the VCS tag or revision, then "dev".
func Get() Info {
	info := Info{Version: Version, GoVersion: runtime.Version()}

	var tag string
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.tag":
				tag = setting.Value
			case "vcs.revision":
				info.Revision = setting.Value
			}
		}
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	switch {
	case info.Version != "":
	case tag != "":
		info.Version = tag
	case info.Revision != "":
		info.Version = info.Revision
	default:
		info.Version = "dev"
	}
	return info
}

// Value returns just the version string.
func Value() string {
	return Get().Version
}
