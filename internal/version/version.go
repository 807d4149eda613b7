// Package version reports the build of the requisition binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is set with -ldflags "-X .../internal/version.Version=v1.2.3".
	Version = "dev"
	// Commit is the short VCS revision, filled from build info when available.
	Commit = ""
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	if Commit == "" {
		Commit = revision(info.Settings)
	}
}

func revision(settings []debug.BuildSetting) string {
	for _, s := range settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 7 {
				return s.Value[:7]
			}
			return s.Value
		}
	}
	return ""
}

// String formats the version line printed by `requisition version`.
func String() string {
	v := Version
	if Commit != "" {
		v += " (" + Commit + ")"
	}
	return fmt.Sprintf("requisition %s %s/%s", v, runtime.GOOS, runtime.GOARCH)
}
