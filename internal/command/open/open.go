// Package open implements the open command: it offers the dashboard pages of
// the linked project in a picker and launches the browser on the choice.
package open

import (
	"context"
	"errors"
	"fmt"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/cmderr"
	"github.com/vercel/cli/internal/command"
	"github.com/vercel/cli/internal/flag"
	"github.com/vercel/cli/internal/link"
	"github.com/vercel/cli/internal/prompt"
	"github.com/vercel/cli/iostreams"
)

// notFound marks a menu entry whose URL could not be resolved.
const notFound = "not_found"

func New() (cmd *cobra.Command) {
	const (
		long = `Open the linked project in the browser: its dashboard page, the
inspector of its latest deployment, or the latest preview or production
deployment itself.
`
		short = "Open the project dashboard or its latest deployments"

		usage = "open"
	)

	cmd = command.New(usage, short, long, run,
		command.RequireSession,
		command.RequireLink,
	)

	cmd.Args = cobra.NoArgs

	flag.Add(cmd,
		flag.Yes(),
		flag.Project(),
	)

	return
}

var errNoDeployments = cmderr.SuggestError{
	Err:     errors.New("No deployments found"),
	Suggest: "Deploy your project first, then try again.",
}

func run(ctx context.Context) error {
	choices := buildChoices(ctx, link.FromContext(ctx))

	options := make([]string, 0, len(choices))
	for _, c := range choices {
		options = append(options, c.label)
	}

	var index int
	switch err := prompt.Select(ctx, &index, "What do you want to open?", "", options...); {
	case err == nil:
		break
	case prompt.IsAborted(err):
		// backing out of the picker is not an error
		return cmderr.ErrAbort
	default:
		return err
	}

	return openChoice(ctx, choices[index])
}

func openChoice(ctx context.Context, selected choice) error {
	if selected.url == notFound {
		return errNoDeployments
	}

	io := iostreams.FromContext(ctx)

	fmt.Fprintf(io.Out, "Opening %s ...\n", selected.url)
	if err := open.Run(selected.url); err != nil {
		return fmt.Errorf("failed opening %s: %w", selected.url, err)
	}

	return nil
}
