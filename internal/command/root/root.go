// Package root implements the root command.
package root

import (
	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/command"
	"github.com/vercel/cli/internal/command/auth"
	"github.com/vercel/cli/internal/command/deploys"
	"github.com/vercel/cli/internal/command/link"
	"github.com/vercel/cli/internal/command/open"
	"github.com/vercel/cli/internal/command/projects"
	"github.com/vercel/cli/internal/command/teams"
	"github.com/vercel/cli/internal/command/version"
	"github.com/vercel/cli/internal/flag/flagnames"
)

// New initializes and returns a reference to a new root command.
func New() *cobra.Command {
	const (
		long = `vercel is a command line interface to the Vercel platform.

It allows users to manage authentication, inspect projects and
deployments, and jump to the right dashboard pages from the terminal.

* Link a local directory to a project with the link command
* Open the dashboard, inspector or latest deployments with the open command
* Inspect recent deployments with the deploys command
`
		short = "The Vercel CLI"
	)

	root := command.New("vercel", short, long, nil)

	// errors are rendered by cli.Run; cobra must not print them too
	root.SilenceUsage = true
	root.SilenceErrors = true

	fs := root.PersistentFlags()
	_ = fs.StringP(flagnames.AccessToken, "t", "", "Vercel API access token")
	_ = fs.StringP(flagnames.Scope, "S", "", "The team slug to operate on")
	_ = fs.Bool(flagnames.Verbose, false, "Verbose output")
	_ = fs.Bool(flagnames.JSONOutput, false, "JSON output")

	root.AddCommand(
		version.New(),
		auth.New(),
		link.New(),
		open.New(),
		projects.New(),
		deploys.New(),
		teams.New(),

		// shortcuts for the auth subcommands
		auth.NewLogin(),
		auth.NewLogout(),
		auth.NewWhoAmI(),
	)

	return root
}
