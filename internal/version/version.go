package version

import "runtime/debug"

// Version is set with -ldflags at release time.
var Version = "devel"

// `go install` builds carry no -ldflags but do embed the module version, so
// fall back to it.
func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	mainVersion := info.Main.Version
	if mainVersion != "" && mainVersion != "(devel)" {
		Version = mainVersion
	}
}
