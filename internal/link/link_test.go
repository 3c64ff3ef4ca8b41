package link

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNotLinked(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrNotLinked)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	in := &Link{ProjectID: "prj_1", OrgID: "team_1"}
	require.NoError(t, Save(dir, in))

	out, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadRejectsPartialFile(t *testing.T) {
	dir := t.TempDir()
	folder := filepath.Join(dir, Dir)
	require.NoError(t, os.MkdirAll(folder, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(folder, FileName), []byte(`{"projectId":"prj_1"}`), 0o644))

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrNotLinked)
}

func TestLoadRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	folder := filepath.Join(dir, Dir)
	require.NoError(t, os.MkdirAll(folder, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(folder, FileName), []byte("not json"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotLinked)
}
