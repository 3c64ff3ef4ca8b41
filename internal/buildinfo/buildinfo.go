// Package buildinfo exposes the version metadata the build injects.
package buildinfo

import (
	"fmt"
	"runtime"
	"time"

	"github.com/blang/semver"
)

var (
	// set via ldflags
	version   = "0.0.0-dev"
	commit    = "<commit>"
	buildDate = "<date>"

	parsedVersion   semver.Version
	parsedBuildDate time.Time
)

func init() {
	var err error
	if parsedVersion, err = semver.ParseTolerant(version); err != nil {
		parsedVersion = semver.MustParse("0.0.0-dev")
	}

	if parsedBuildDate, err = time.Parse(time.RFC3339, buildDate); err != nil {
		parsedBuildDate = time.Now()
	}
}

// Name returns the name the executable goes by.
func Name() string { return "vercel" }

// Version returns the version of the current build.
func Version() semver.Version { return parsedVersion }

// Commit returns the commit of the current build.
func Commit() string { return commit }

// BuildDate returns the date of the current build.
func BuildDate() time.Time { return parsedBuildDate }

// IsDev reports whether the current build is a development one.
func IsDev() bool {
	return len(parsedVersion.Pre) > 0 && parsedVersion.Pre[0].VersionStr == "dev"
}

// Info describes the current build.
type Info struct {
	Name         string
	Version      semver.Version
	Commit       string
	BuildDate    time.Time
	OS           string
	Architecture string
}

func (i Info) String() string {
	return fmt.Sprintf("%s v%s %s/%s Commit: %s BuildDate: %s",
		i.Name,
		i.Version,
		i.OS,
		i.Architecture,
		i.Commit,
		i.BuildDate.Format(time.RFC3339),
	)
}

func Current() Info {
	return Info{
		Name:         Name(),
		Version:      Version(),
		Commit:       Commit(),
		BuildDate:    BuildDate(),
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
	}
}
