// Package cli implements the command line interface.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/cmderr"
	"github.com/vercel/cli/internal/command/root"
	"github.com/vercel/cli/internal/logger"
	"github.com/vercel/cli/iostreams"
)

// Run runs the command line interface with the given arguments and reports
// the exit code the application should exit with: 0 on success or when the
// user aborts an interactive prompt, 1 on error, 2 when help was shown.
func Run(ctx context.Context, io *iostreams.IOStreams, args ...string) int {
	return run(ctx, io, root.New(), args)
}

func run(ctx context.Context, io *iostreams.IOStreams, cmd *cobra.Command, args []string) int {
	ctx = iostreams.NewContext(ctx, io)
	ctx = logger.NewContext(ctx, logger.FromEnv(io.ErrOut))

	cmd.SetOut(io.Out)
	cmd.SetErr(io.ErrOut)
	cmd.SetArgs(args)

	cs := io.ColorScheme()

	switch executed, err := cmd.ExecuteContextC(ctx); {
	case err == nil:
		if helpRequested(executed) {
			return 2
		}

		return 0
	case cmderr.IsCancelledError(err), errors.Is(err, terminal.InterruptErr):
		// user backed out; not an error
		return 0
	default:
		printError(io.ErrOut, cs, err)

		return 1
	}
}

// helpRequested reports whether the executed command only printed its help
// text. Cobra reports no error for -h/--help, so the flag is inspected
// directly.
func helpRequested(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	help := cmd.Flags().Lookup("help")

	return help != nil && help.Changed
}

func printError(w io.Writer, cs *iostreams.ColorScheme, err error) {
	var b bytes.Buffer

	fmt.Fprintln(&b, cs.Red("Error:"), err)

	description := cmderr.GetErrorDescription(err)
	if description != "" {
		fmt.Fprintf(&b, "\n%s\n", description)
	}

	suggestion := cmderr.GetErrorSuggestion(err)
	if suggestion != "" {
		fmt.Fprintf(&b, "\n%s\n", suggestion)
	}

	_, _ = b.WriteTo(w)
}
