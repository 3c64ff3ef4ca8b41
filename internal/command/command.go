// Package command implements helpers useful for when building cobra commands.
package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vercel/cli/internal/api"
	"github.com/vercel/cli/internal/cmderr"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/flag"
	"github.com/vercel/cli/internal/link"
	"github.com/vercel/cli/internal/logger"
	"github.com/vercel/cli/internal/state"
)

type (
	Preparer func(context.Context) (context.Context, error)

	Runner func(context.Context) error
)

func New(usage, short, long string, fn Runner, p ...Preparer) *cobra.Command {
	return &cobra.Command{
		Use:   usage,
		Short: short,
		Long:  long,
		RunE:  newRunE(fn, p...),
	}
}

var commonPreparers = []Preparer{
	determineWorkingDir,
	determineUserHomeDir,
	determineConfigDir,
	loadConfig,
	initClient,
}

func newRunE(fn Runner, preparers ...Preparer) func(*cobra.Command, []string) error {
	if fn == nil {
		return nil
	}

	return func(cmd *cobra.Command, _ []string) (err error) {
		ctx := cmd.Context()
		ctx = NewContext(ctx, cmd)
		ctx = flag.NewContext(ctx, cmd.Flags())

		// run the common preparers
		if ctx, err = prepare(ctx, commonPreparers...); err != nil {
			return
		}

		// run the preparers specific to the command
		if ctx, err = prepare(ctx, preparers...); err != nil {
			return
		}

		return fn(ctx)
	}
}

func prepare(parent context.Context, preparers ...Preparer) (ctx context.Context, err error) {
	ctx = parent

	for _, p := range preparers {
		if ctx, err = p(ctx); err != nil {
			break
		}
	}

	return
}

func determineWorkingDir(ctx context.Context) (context.Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed determining working directory: %w", err)
	}

	logger.FromContext(ctx).
		Debugf("determined working directory: %q", wd)

	return state.WithWorkingDirectory(ctx, wd), nil
}

func determineUserHomeDir(ctx context.Context) (context.Context, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed determining user home directory: %w", err)
	}

	logger.FromContext(ctx).
		Debugf("determined user home directory: %q", home)

	return state.WithUserHomeDirectory(ctx, home), nil
}

func determineConfigDir(ctx context.Context) (context.Context, error) {
	dir := filepath.Join(state.UserHomeDirectory(ctx), ".vercel")

	logger.FromContext(ctx).
		Debugf("determined config directory: %q", dir)

	return state.WithConfigDirectory(ctx, dir), nil
}

// LoadConfig runs the config preparer chain outside of a command; tests use
// it.
func LoadConfig(ctx context.Context) (context.Context, error) {
	return loadConfig(ctx)
}

func loadConfig(ctx context.Context) (context.Context, error) {
	log := logger.FromContext(ctx)

	cfg := config.New()

	// Apply config from the config file, if it exists
	path := filepath.Join(state.ConfigDirectory(ctx), config.FileName)
	switch err := cfg.ApplyFile(path); {
	case err == nil:
		// config file loaded
	case errors.Is(err, fs.ErrNotExist):
		log.Debugf("no config file found at %s", path)
	default:
		return nil, err
	}

	// Apply config from the environment, overriding anything from the file
	cfg.ApplyEnv()

	// Finally, apply command line options, overriding any previous setting
	cfg.ApplyFlags(flag.FromContext(ctx))

	log.Debug("config initialized.")

	return config.NewContext(ctx, cfg), nil
}

func initClient(ctx context.Context) (context.Context, error) {
	cfg := config.FromContext(ctx)

	c := api.NewWithOptions(api.NewClientOpts{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.AccessToken,
		Logger:  logger.FromContext(ctx),
	})

	logger.FromContext(ctx).Debug("client initialized.")

	return api.NewContext(ctx, c), nil
}

// ErrNoAccessToken is returned by RequireSession when no token could be
// resolved.
var ErrNoAccessToken = cmderr.SuggestError{
	Err:     errors.New("no access token available"),
	Suggest: "Run `vercel login` to authenticate first.",
}

// RequireSession is a Preparer which makes sure an access token is present.
func RequireSession(ctx context.Context) (context.Context, error) {
	if !api.FromContext(ctx).Authenticated() {
		return nil, ErrNoAccessToken
	}

	return ctx, nil
}

// RequireLink is a Preparer which makes sure the working directory is linked
// to a project, offering to link it when run interactively.
func RequireLink(ctx context.Context) (context.Context, error) {
	resolved, err := link.EnsureLink(ctx)
	if err != nil {
		if errors.Is(err, link.ErrNotLinked) {
			return nil, cmderr.SuggestError{
				Err:     err,
				Suggest: "Run `vercel link` to link this directory to a project.",
			}
		}

		return nil, err
	}

	return link.NewContext(ctx, resolved), nil
}
