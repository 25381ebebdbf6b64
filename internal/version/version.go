// Package version holds the release string shared by every lab tool.
package version

// Version is overridden at link time with -ldflags "-X biolab/internal/version.Version=...".
var Version = "0.3.0"
