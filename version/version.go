// Package version holds the binembed release version.
package version

// Version is overridden at build time with -ldflags "-X github.com/xll-gen/binembed/version.Version=...".
var Version = "dev"
