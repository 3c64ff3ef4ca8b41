// Package teams implements the teams command and its subcommands.
package teams

import (
	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/command"
)

func New() *cobra.Command {
	const (
		long = `Manage the teams the current user belongs to and the team new
commands run against.
`
		short = "Manage teams"
	)

	teams := command.New("teams", short, long, nil)

	teams.AddCommand(
		newList(),
		newSwitch(),
	)

	return teams
}
