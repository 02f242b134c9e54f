// Package isiscb holds application-wide metadata shared by the CLI
// and the library packages.
package isiscb

var (
	// Version is the application version, set via ldflags at build time.
	Version = "v0.1.0"

	// Build is the build timestamp, set via ldflags at build time.
	Build = "n/a"
)
