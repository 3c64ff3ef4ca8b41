package auth

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/command"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/state"
	"github.com/vercel/cli/iostreams"
)

func NewLogout() *cobra.Command {
	const (
		long = `Log the currently logged-in user out. To continue using the
platform, log in again.
`
		short = "Log out the current user"
	)

	return command.New("logout", short, long, runLogout)
}

func runLogout(ctx context.Context) error {
	if err := config.Clear(state.ConfigFile(ctx)); err != nil {
		return fmt.Errorf("failed clearing credentials: %w", err)
	}

	io := iostreams.FromContext(ctx)
	fmt.Fprintln(io.Out, "logged out")

	return nil
}
