// Package buildinfo carries the version stamp set with
// -ldflags "-X sparkcalc/internal/buildinfo.Version=v1.2.0 ...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or the commit for untagged builds.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long includes commit and date when they are known.
func Long() string {
	s := Short()
	if Commit != "" && Commit != "unknown" && s != Commit {
		s += " " + Commit
	}
	if Date != "" && Date != "unknown" {
		s += fmt.Sprintf(" (%s)", Date)
	}
	return s
}
