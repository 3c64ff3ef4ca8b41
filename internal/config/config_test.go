package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "https://api.vercel.com", cfg.APIBaseURL)
	assert.Equal(t, "https://vercel.com", cfg.DashboardBaseURL)
	assert.False(t, cfg.Authenticated())
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := []byte("access_token: tok_123\nteam: acme\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg := New()
	require.NoError(t, cfg.ApplyFile(path))

	assert.Equal(t, "tok_123", cfg.AccessToken)
	assert.Equal(t, "acme", cfg.Team)
	assert.True(t, cfg.Authenticated())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(AccessTokenEnvKey, "tok_env")
	t.Setenv(teamEnvKey, "env-team")

	cfg := New()
	cfg.ApplyEnv()

	assert.Equal(t, "tok_env", cfg.AccessToken)
	assert.Equal(t, "env-team", cfg.Team)
}

func TestApplyFlagsOverrides(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("token", "", "")
	fs.String("scope", "", "")
	fs.Bool("json", false, "")
	fs.Bool("verbose", false, "")
	require.NoError(t, fs.Set("token", "tok_flag"))
	require.NoError(t, fs.Set("json", "true"))

	cfg := New()
	cfg.AccessToken = "tok_file"
	cfg.ApplyFlags(fs)

	assert.Equal(t, "tok_flag", cfg.AccessToken)
	assert.True(t, cfg.JSONOutput)
	assert.False(t, cfg.VerboseOutput)
}

func TestSetAndClearFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	require.NoError(t, SetAccessToken(path, "tok_abc"))
	require.NoError(t, SetTeam(path, "acme"))

	cfg := New()
	require.NoError(t, cfg.ApplyFile(path))
	assert.Equal(t, "tok_abc", cfg.AccessToken)
	assert.Equal(t, "acme", cfg.Team)

	require.NoError(t, Clear(path))

	cfg = New()
	require.NoError(t, cfg.ApplyFile(path))
	assert.Empty(t, cfg.AccessToken)
	assert.Empty(t, cfg.Team)
}
