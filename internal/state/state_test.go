package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vercel/cli/internal/config"
)

func TestConfigFile(t *testing.T) {
	dir := filepath.Join("home", ".vercel")
	ctx := WithConfigDirectory(context.Background(), dir)

	assert.Equal(t, filepath.Join(dir, config.FileName), ConfigFile(ctx))
}
