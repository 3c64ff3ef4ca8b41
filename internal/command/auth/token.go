package auth

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/command"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/iostreams"
)

func newToken() *cobra.Command {
	const (
		long = `Print the access token in use. Useful for scripting against the
API with the same credentials as the CLI.
`
		short = "Show the current access token"
	)

	return command.New("token", short, long, runToken,
		command.RequireSession)
}

func runToken(ctx context.Context) error {
	io := iostreams.FromContext(ctx)
	fmt.Fprintln(io.Out, config.FromContext(ctx).AccessToken)

	return nil
}
