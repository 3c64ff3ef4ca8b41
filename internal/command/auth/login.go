package auth

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/api"
	"github.com/vercel/cli/internal/command"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/flag"
	"github.com/vercel/cli/internal/flag/flagnames"
	"github.com/vercel/cli/internal/logger"
	"github.com/vercel/cli/internal/prompt"
	"github.com/vercel/cli/internal/state"
	"github.com/vercel/cli/iostreams"
)

// NewLogin returns a login command. It is registered both under auth and at
// the root.
func NewLogin() *cobra.Command {
	const (
		long = `Log in with an access token created on the account settings page.
The token is verified against the API and persisted in the config file.
`
		short = "Log in with an access token"
	)

	// the root command already declares --token; login reuses it
	return command.New("login", short, long, runLogin)
}

type requiredWhenNonInteractive string

func (r requiredWhenNonInteractive) Error() string {
	return fmt.Sprintf("%s must be specified when not running interactively", string(r))
}

func runLogin(ctx context.Context) error {
	var token string
	if flag.IsSpecified(ctx, flagnames.AccessToken) {
		token = flag.GetString(ctx, flagnames.AccessToken)
	}

	if token == "" {
		switch err := prompt.Password(ctx, &token, "Access token:", true); {
		case err == nil:
			break
		case prompt.IsNonInteractive(err):
			return requiredWhenNonInteractive("--token")
		default:
			return err
		}
	}

	client := api.NewWithOptions(api.NewClientOpts{
		BaseURL: config.FromContext(ctx).APIBaseURL,
		Token:   token,
		Logger:  logger.FromContext(ctx),
	})

	user, err := client.GetCurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed verifying access token: %w", err)
	}

	if err := config.SetAccessToken(state.ConfigFile(ctx), token); err != nil {
		return fmt.Errorf("failed persisting access token: %w", err)
	}

	io := iostreams.FromContext(ctx)
	colorize := io.ColorScheme()
	fmt.Fprintf(io.Out, "successfully logged in as %s\n", colorize.Bold(user.Username))

	return nil
}
