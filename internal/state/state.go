// Package state implements getters and setters for command Contexts.
package state

import (
	"context"
	"path/filepath"

	"github.com/vercel/cli/internal/config"
)

type contextKeyType int

const (
	_ contextKeyType = iota
	workDirKey
	userHomeDirKey
	configDirKey
)

// WithWorkingDirectory derives a Context from ctx that carries wd.
func WithWorkingDirectory(ctx context.Context, wd string) context.Context {
	return context.WithValue(ctx, workDirKey, wd)
}

// WorkingDirectory returns the working directory ctx carries.
//
// WorkingDirectory panics in case ctx carries no working directory.
func WorkingDirectory(ctx context.Context) string {
	return ctx.Value(workDirKey).(string)
}

// WithUserHomeDirectory derives a Context from ctx that carries home.
func WithUserHomeDirectory(ctx context.Context, home string) context.Context {
	return context.WithValue(ctx, userHomeDirKey, home)
}

// UserHomeDirectory returns the user home directory ctx carries.
//
// UserHomeDirectory panics in case ctx carries no user home directory.
func UserHomeDirectory(ctx context.Context) string {
	return ctx.Value(userHomeDirKey).(string)
}

// WithConfigDirectory derives a Context from ctx that carries dir.
func WithConfigDirectory(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, configDirKey, dir)
}

// ConfigDirectory returns the config directory ctx carries.
//
// ConfigDirectory panics in case ctx carries no config directory.
func ConfigDirectory(ctx context.Context) string {
	return ctx.Value(configDirKey).(string)
}

// ConfigFile returns the path of the config file within the config directory
// ctx carries.
func ConfigFile(ctx context.Context) string {
	return filepath.Join(ConfigDirectory(ctx), config.FileName)
}
