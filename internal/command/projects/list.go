package projects

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/api"
	"github.com/vercel/cli/internal/command"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/prompt"
	"github.com/vercel/cli/internal/render"
	"github.com/vercel/cli/iostreams"
)

func newList() *cobra.Command {
	const (
		long = `List the projects of the selected scope.
`
		short = "List projects"
	)

	cmd := command.New("list", short, long, runList,
		command.RequireSession,
	)

	cmd.Aliases = []string{"ls"}

	return cmd
}

func runList(ctx context.Context) error {
	org, err := prompt.Scope(ctx)
	if err != nil {
		return err
	}

	projects, err := api.FromContext(ctx).ListProjects(ctx, org.TeamID())
	if err != nil {
		return err
	}

	out := iostreams.FromContext(ctx).Out

	if config.FromContext(ctx).JSONOutput {
		return render.JSON(out, projects)
	}

	rows := make([][]string, 0, len(projects))
	for _, project := range projects {
		latest := "-"
		if len(project.LatestDeployments) > 0 {
			latest = project.LatestDeployments[0].URL
		}

		rows = append(rows, []string{
			project.Name,
			project.ID,
			latest,
		})
	}

	return render.Table(out, org.Slug, rows, "Name", "ID", "Latest Deployment")
}
