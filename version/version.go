// Package version tells which build of the application is running.
package version

import "runtime/debug"

// Version can be set at build time, e.g.
// go build -ldflags "-X github.com/vsariola/xylophone/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision embedded by the go tool, suffixed with
// "-dirty" for builds from a modified tree. Empty if unknown.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return revision(info.Settings)
}()

var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	if Hash != "" {
		return Hash
	}
	return "devel"
}()

func revision(settings []debug.BuildSetting) string {
	var rev string
	modified := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if rev != "" && modified {
		rev += "-dirty"
	}
	return rev
}
