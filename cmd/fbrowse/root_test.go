package main

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kk-code-lab/fbrowse/internal/config"
)

func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
}

func TestRootRejectsExtraArguments(t *testing.T) {
	isolateHome(t)
	cmd := NewRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"a", "b"})

	assert.Error(t, cmd.Execute())
}

func TestRootFailsOnMissingConfigFile(t *testing.T) {
	isolateHome(t)
	cmd := NewRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	isolateHome(t)
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--show-hidden=false",
		"--tick", "2s",
		"--watch=false",
		"--style", "dracula",
		"--max-preview-bytes", "512",
		"--log-level", "warn",
	}))

	cfg, err := loadConfig(cmd, "")
	require.NoError(t, err)
	assert.False(t, cfg.ShowHidden)
	assert.Equal(t, 2*time.Second, cfg.TickRate)
	assert.False(t, cfg.Watch)
	assert.Equal(t, "dracula", cfg.Preview.Style)
	assert.Equal(t, int64(512), cfg.Preview.MaxBytes)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestResolveStartDir(t *testing.T) {
	cfg := &config.Config{StartDir: "/from/config"}

	dir, err := resolveStartDir(cfg, []string{"/from/args"})
	require.NoError(t, err)
	assert.Equal(t, "/from/args", dir)

	dir, err = resolveStartDir(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "/from/config", dir)

	dir, err = resolveStartDir(&config.Config{}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, dir)
	assert.True(t, filepath.IsAbs(dir))
}
