// Package auth implements the auth command and its subcommands.
package auth

import (
	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/command"
)

func New() *cobra.Command {
	const (
		long = `Authenticate with the platform. Start with the "login" subcommand.
`
		short = "Manage authentication"
	)

	auth := command.New("auth", short, long, nil)

	auth.AddCommand(
		NewLogin(),
		NewLogout(),
		NewWhoAmI(),
		newToken(),
	)

	return auth
}
