package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/vercel/cli/internal/cmderr"
	"github.com/vercel/cli/iostreams"
)

func testCommand(runE func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:           "test",
		RunE:          runE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func fail(err error) func(*cobra.Command, []string) error {
	return func(*cobra.Command, []string) error { return err }
}

func TestRunMapsInterruptToSuccess(t *testing.T) {
	streams, _, _, errOut := iostreams.Test()

	code := run(context.Background(), streams, testCommand(fail(terminal.InterruptErr)), []string{})

	assert.Zero(t, code)
	assert.Empty(t, errOut.String())
}

func TestRunMapsAbortToSuccess(t *testing.T) {
	streams, _, _, errOut := iostreams.Test()

	code := run(context.Background(), streams, testCommand(fail(cmderr.ErrAbort)), []string{})

	assert.Zero(t, code)
	assert.Empty(t, errOut.String())
}

func TestRunMapsContextCancellationToSuccess(t *testing.T) {
	streams, _, _, _ := iostreams.Test()

	code := run(context.Background(), streams, testCommand(fail(context.Canceled)), []string{})

	assert.Zero(t, code)
}

func TestRunMapsErrorToFailure(t *testing.T) {
	streams, _, _, errOut := iostreams.Test()

	err := cmderr.SuggestError{
		Err:     errors.New("boom"),
		Suggest: "try turning it off and on again",
	}

	code := run(context.Background(), streams, testCommand(fail(err)), []string{})

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "Error: boom")
	assert.Contains(t, errOut.String(), "try turning it off and on again")
}

func TestRunHelpExitsTwo(t *testing.T) {
	streams, _, out, _ := iostreams.Test()

	code := Run(context.Background(), streams, "--help")

	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRunSuccessExitsZero(t *testing.T) {
	streams, _, _, _ := iostreams.Test()

	code := run(context.Background(), streams, testCommand(fail(nil)), []string{})

	assert.Zero(t, code)
}

func TestRunUnknownFlagPrintsErrorOnce(t *testing.T) {
	streams, _, _, errOut := iostreams.Test()

	code := Run(context.Background(), streams, "--no-such-flag")

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, strings.Count(errOut.String(), "Error:"))
}
