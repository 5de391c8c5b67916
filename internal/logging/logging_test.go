package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, closer, err := New(Options{})

	require.NoError(t, err)
	assert.Equal(t, io.Discard, logger.Out)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fbrowse.log")

	logger, closer, err := New(Options{File: path, Level: "warn"})
	require.NoError(t, err)
	logger.WithField("path", "/tmp").Warn("cannot read directory")
	logger.Info("dropped")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=warning")
	assert.Contains(t, string(data), `msg="cannot read directory"`)
	assert.Contains(t, string(data), "path=/tmp")
	assert.NotContains(t, string(data), "dropped")
}

func TestNewDebugOverridesLevel(t *testing.T) {
	logger, _, err := New(Options{Level: "error", Debug: true})

	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})

	assert.Error(t, err)
}
