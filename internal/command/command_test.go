package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vercel/cli/internal/api"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/flag"
	"github.com/vercel/cli/internal/flag/flagnames"
	"github.com/vercel/cli/internal/logger"
	"github.com/vercel/cli/internal/state"
)

func newTestContext(tb testing.TB, configDir string, fs *pflag.FlagSet) context.Context {
	tb.Helper()

	if fs == nil {
		fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String(flagnames.AccessToken, "", "")
		fs.String(flagnames.Scope, "", "")
		fs.Bool(flagnames.Verbose, false, "")
		fs.Bool(flagnames.JSONOutput, false, "")
	}

	ctx := context.Background()
	ctx = logger.NewContext(ctx, logger.New(&bytes.Buffer{}, logger.Error))
	ctx = state.WithConfigDirectory(ctx, configDir)
	ctx = flag.NewContext(ctx, fs)

	return ctx
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("access_token: tok_file\nteam: acme\n"), 0o600))

	ctx, err := LoadConfig(newTestContext(t, dir, nil))
	require.NoError(t, err)

	cfg := config.FromContext(ctx)
	assert.Equal(t, "tok_file", cfg.AccessToken)
	assert.Equal(t, "acme", cfg.Team)
}

func TestLoadConfigMissingFile(t *testing.T) {
	ctx, err := LoadConfig(newTestContext(t, t.TempDir(), nil))
	require.NoError(t, err)

	cfg := config.FromContext(ctx)
	assert.Empty(t, cfg.AccessToken)
}

func TestLoadConfigFlagOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("access_token: tok_file\n"), 0o600))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(flagnames.AccessToken, "", "")
	fs.String(flagnames.Scope, "", "")
	fs.Bool(flagnames.Verbose, false, "")
	fs.Bool(flagnames.JSONOutput, false, "")
	require.NoError(t, fs.Set(flagnames.AccessToken, "tok_flag"))

	ctx, err := LoadConfig(newTestContext(t, dir, fs))
	require.NoError(t, err)

	assert.Equal(t, "tok_flag", config.FromContext(ctx).AccessToken)
}

func TestRequireSession(t *testing.T) {
	anonymous := api.NewContext(context.Background(), api.NewWithOptions(api.NewClientOpts{}))
	_, err := RequireSession(anonymous)
	assert.ErrorIs(t, err, ErrNoAccessToken)

	authenticated := api.NewContext(context.Background(), api.NewWithOptions(api.NewClientOpts{Token: "tok_1"}))
	_, err = RequireSession(authenticated)
	assert.NoError(t, err)
}
