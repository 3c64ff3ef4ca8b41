// Package env implements environment related functionality.
package env

import (
	"os"
	"strings"
)

// First returns the value of the first of the given environment variables
// that is set, or the empty string should none be.
func First(names ...string) string {
	for _, name := range names {
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
	}

	return ""
}

// FirstOrDefault returns the value of the first of the given environment
// variables that is set, or def should none be.
func FirstOrDefault(def string, names ...string) string {
	if v := First(names...); v != "" {
		return v
	}

	return def
}

// IsTruthy reports whether any of the given environment variables holds a
// truthy value ("1", "true", "yes", case-insensitively).
func IsTruthy(names ...string) bool {
	switch strings.ToLower(First(names...)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// IsCI reports whether the environment is a CI one.
//
// Based on https://github.com/watson/ci-info/blob/HEAD/index.js
func IsCI() bool {
	return os.Getenv("CI") != "" || // GitHub Actions, Travis CI, CircleCI, Cirrus CI, GitLab CI, AppVeyor, CodeShip, dsari
		os.Getenv("BUILD_NUMBER") != "" || // Jenkins, TeamCity
		os.Getenv("RUN_ID") != "" // TaskCluster, dsari
}
