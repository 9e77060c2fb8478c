// Package buildinfo carries the version stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X plotter/internal/buildinfo.Version=v1.2.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version if set, else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// Title decorates a window title with the short build identifier.
func Title(name string) string {
	return fmt.Sprintf("%s (%s)", name, Short())
}

// Line describes the build for the startup log.
func Line() string {
	return fmt.Sprintf("plotter %s commit=%s date=%s", Short(), Commit, Date)
}
