package teams

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/api"
	"github.com/vercel/cli/internal/command"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/flag"
	"github.com/vercel/cli/internal/prompt"
	"github.com/vercel/cli/internal/state"
	"github.com/vercel/cli/iostreams"
)

func newSwitch() *cobra.Command {
	const (
		long = `Select the team subsequent commands run against. Pass a team
slug, or run interactively to pick one. Switching to the personal account
clears the selection.
`
		short = "Switch the selected team"

		usage = "switch [slug]"
	)

	cmd := command.New(usage, short, long, runSwitch,
		command.RequireSession,
	)

	cmd.Args = cobra.MaximumNArgs(1)

	return cmd
}

func runSwitch(ctx context.Context) error {
	client := api.FromContext(ctx)

	user, err := client.GetCurrentUser(ctx)
	if err != nil {
		return err
	}

	teams, err := client.ListTeams(ctx)
	if err != nil {
		return err
	}

	slug := flag.FirstArg(ctx)
	if slug == "" {
		org, err := prompt.SelectScope(ctx, user, teams)
		if err != nil {
			return err
		}
		slug = org.Slug
	}

	if slug != user.Username {
		_, found := lo.Find(teams, func(t api.Team) bool { return t.Slug == slug })
		if !found {
			return fmt.Errorf("team %s not found", slug)
		}
	}

	selected := slug
	if slug == user.Username {
		// personal account; drop the team selection
		selected = ""
	}

	if err := config.SetTeam(state.ConfigFile(ctx), selected); err != nil {
		return fmt.Errorf("failed persisting team selection: %w", err)
	}

	io := iostreams.FromContext(ctx)
	fmt.Fprintf(io.Out, "switched to %s\n", slug)

	return nil
}
