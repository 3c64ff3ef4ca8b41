package deploys

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/api"
	"github.com/vercel/cli/internal/command"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/flag"
	"github.com/vercel/cli/internal/link"
	"github.com/vercel/cli/internal/render"
	"github.com/vercel/cli/iostreams"
)

func newList() *cobra.Command {
	const (
		long = `List the most recent deployments of the linked project, newest
first.
`
		short = "List recent deployments"
	)

	cmd := command.New("list", short, long, runList,
		command.RequireSession,
		command.RequireLink,
	)

	cmd.Aliases = []string{"ls"}

	flag.Add(cmd,
		flag.Yes(),
		flag.Project(),
		flag.Int{
			Name:        "limit",
			Description: "Maximum number of deployments to list",
			Default:     20,
		},
	)

	return cmd
}

func runList(ctx context.Context) error {
	var (
		resolved = link.FromContext(ctx)
		limit    = flag.GetInt(ctx, "limit")
	)

	deployments, err := api.FromContext(ctx).ListDeployments(ctx,
		resolved.Project.ID, resolved.Org.TeamID(), limit)
	if err != nil {
		return err
	}

	out := iostreams.FromContext(ctx).Out

	if config.FromContext(ctx).JSONOutput {
		return render.JSON(out, deployments)
	}

	rows := make([][]string, 0, len(deployments))
	for _, d := range deployments {
		target := d.Target
		if target == "" {
			target = "preview"
		}

		rows = append(rows, []string{
			d.URL,
			d.State,
			target,
			humanize.Time(d.Created()),
			d.Creator.Username,
		})
	}

	return render.Table(out, resolved.Project.Name, rows,
		"URL", "State", "Target", "Age", "Creator")
}
