package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/wailsba22/arabic-explainer/internal/config"
)

func TestConfigureLevelAndFormat(t *testing.T) {
	logger := logrus.New()
	Configure(logger, config.LoggingConfig{Level: "debug", Format: "JSON", Output: "stderr"})

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	assert.Equal(t, os.Stderr, logger.Out)
}

func TestConfigureInvalidLevel(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	Configure(logger, config.LoggingConfig{Level: "loud"})

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	assert.Equal(t, os.Stdout, logger.Out)
}

func TestConfigureFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explainer.log")
	logger := logrus.New()
	Configure(logger, config.LoggingConfig{Level: "info", Format: "json", Output: path})

	rotating, ok := logger.Out.(*lumberjack.Logger)
	require.True(t, ok)
	t.Cleanup(func() { _ = rotating.Close() })

	logger.WithField("language", "python").Info("explain request")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"explain request"`)
	assert.Contains(t, string(data), `"language":"python"`)
}
