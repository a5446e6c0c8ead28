package buildinfo

import (
	"runtime/debug"
)

// BuildInfo is nil when the binary was built without module support.
var BuildInfo *debug.BuildInfo

func init() {
	BuildInfo, _ = debug.ReadBuildInfo()
}

func Version() string {
	if BuildInfo == nil || BuildInfo.Main.Version == "" {
		return "unknown"
	}
	return BuildInfo.Main.Version
}
