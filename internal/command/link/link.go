// Package link implements the link command.
package link

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/command"
	"github.com/vercel/cli/internal/flag"
	"github.com/vercel/cli/internal/link"
	"github.com/vercel/cli/iostreams"
)

func New() (cmd *cobra.Command) {
	const (
		long = `Link the current directory to a project. The association is
stored in the directory's .vercel folder and picked up by commands that
operate on "the linked project", such as open.
`
		short = "Link the current directory to a project"

		usage = "link"
	)

	cmd = command.New(usage, short, long, run,
		command.RequireSession,
	)

	cmd.Args = cobra.NoArgs

	flag.Add(cmd,
		flag.Yes(),
		flag.Project(),
	)

	return
}

func run(ctx context.Context) error {
	resolved, err := link.EnsureLink(ctx)
	if err != nil {
		return err
	}

	io := iostreams.FromContext(ctx)
	fmt.Fprintf(io.Out, "%s is linked to %s/%s\n",
		link.Dir, resolved.Org.Slug, resolved.Project.Name)

	return nil
}
