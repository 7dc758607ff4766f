// Package version carries build identity, populated via -ldflags.
package version

import "runtime"

var (
	AppName        = "Server Herald"
	AppDescription = "Discord bot for composing and publishing rich announcements."
	Version        = "dev"
	BuildDate      = ""
	GoVersion      = runtime.Version()
)
