// Package version implements the version command.
package version

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/buildinfo"
	"github.com/vercel/cli/internal/command"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/render"
	"github.com/vercel/cli/iostreams"
)

func New() *cobra.Command {
	const (
		long = `Show version information for the vercel command itself.
`
		short = "Show version information"
	)

	return command.New("version", short, long, run)
}

func run(ctx context.Context) error {
	var (
		io   = iostreams.FromContext(ctx)
		info = buildinfo.Current()
	)

	if config.FromContext(ctx).JSONOutput {
		return render.JSON(io.Out, map[string]string{
			"version": info.Version.String(),
			"commit":  info.Commit,
		})
	}

	fmt.Fprintln(io.Out, info)

	return nil
}
