package teams

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/api"
	"github.com/vercel/cli/internal/command"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/render"
	"github.com/vercel/cli/iostreams"
)

func newList() *cobra.Command {
	const (
		long = `List the teams the current user belongs to. The selected team,
if any, is marked.
`
		short = "List teams"
	)

	cmd := command.New("list", short, long, runList,
		command.RequireSession,
	)

	cmd.Aliases = []string{"ls"}

	return cmd
}

func runList(ctx context.Context) error {
	teams, err := api.FromContext(ctx).ListTeams(ctx)
	if err != nil {
		return err
	}

	var (
		io  = iostreams.FromContext(ctx)
		cfg = config.FromContext(ctx)
	)

	if cfg.JSONOutput {
		return render.JSON(io.Out, teams)
	}

	rows := make([][]string, 0, len(teams))
	for _, team := range teams {
		selected := ""
		if team.Slug == cfg.Team {
			selected = "*"
		}

		rows = append(rows, []string{team.Slug, team.Name, selected})
	}

	return render.Table(io.Out, "", rows, "Slug", "Name", "Selected")
}
