// Package flagnames holds the names of flags shared between packages.
package flagnames

const (
	// AccessToken denotes the name of the access token flag.
	AccessToken = "token"

	// Scope denotes the name of the scope (team) flag.
	Scope = "scope"

	// Verbose denotes the name of the verbose flag.
	Verbose = "verbose"

	// JSONOutput denotes the name of the json output flag.
	JSONOutput = "json"

	// Yes denotes the name of the yes flag.
	Yes = "yes"

	// Project denotes the name of the project flag.
	Project = "project"
)
