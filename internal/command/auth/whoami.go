package auth

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/api"
	"github.com/vercel/cli/internal/command"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/render"
	"github.com/vercel/cli/iostreams"
)

func NewWhoAmI() *cobra.Command {
	const (
		long = `Display the username of the currently authenticated user.
`
		short = "Show the currently authenticated user"
	)

	return command.New("whoami", short, long, runWhoAmI,
		command.RequireSession)
}

func runWhoAmI(ctx context.Context) error {
	user, err := api.FromContext(ctx).GetCurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed retrieving current user: %w", err)
	}

	io := iostreams.FromContext(ctx)

	if config.FromContext(ctx).JSONOutput {
		return render.JSON(io.Out, user)
	}

	fmt.Fprintln(io.Out, user.Username)

	return nil
}
