// Package deploys implements the deploys command and its subcommands.
package deploys

import (
	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/command"
)

func New() *cobra.Command {
	const (
		long = `Inspect the deployments of the linked project.
`
		short = "Inspect deployments"
	)

	deploys := command.New("deploys", short, long, nil)

	deploys.AddCommand(
		newList(),
	)

	return deploys
}
