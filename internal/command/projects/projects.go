// Package projects implements the projects command and its subcommands.
package projects

import (
	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/command"
)

func New() *cobra.Command {
	const (
		long = `Manage the projects of the selected scope.
`
		short = "Manage projects"
	)

	projects := command.New("projects", short, long, nil)

	projects.AddCommand(
		newList(),
	)

	return projects
}
