package logging_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/hscells/classy/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	l, err := logging.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, logging.LevelWarn, l)

	_, err = logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := logging.DefaultConfig(&buf)
	c.Level = logging.LevelWarn

	logger, err := logging.NewSugaredLogger("classy", c)
	require.NoError(t, err)
	logger.Infow("hidden")
	logger.Warnw("shown", "folds", 5)
	require.NoError(t, logger.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "classy")
	assert.Contains(t, buf.String(), `"folds": 5`)
}

func TestRotatedFile(t *testing.T) {
	c := logging.DefaultConfig(nil)
	c.Path = filepath.Join(t.TempDir(), "classy.log")

	logger, err := logging.NewSugaredLogger("classy", c)
	require.NoError(t, err)
	logger.Info("written")
	require.NoError(t, logger.Sync())

	files, err := filepath.Glob(c.Path + ".*")
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestNop(t *testing.T) {
	logger, err := logging.NewSugaredLogger("classy", logging.DefaultConfig(nil))
	require.NoError(t, err)
	logger.Info("nowhere")
}
