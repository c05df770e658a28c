package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestNew_DevelopmentConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Development: true}, &buf)
	require.NoError(t, err)

	logger.Debug("demo started")
	require.NoError(t, logger.Sync())

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "demo started")
	assert.NotContains(t, buf.String(), `"msg"`)
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNew_FileSink(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "solid.log")
	logger, err := New(Options{Level: "info", File: path}, &bytes.Buffer{})
	require.NoError(t, err)

	logger.Info("demo finished")
	require.NoError(t, logger.Sync())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"demo finished"`)
}
