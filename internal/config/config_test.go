package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SOUNDS_OUTPUT_DIR", "")
	t.Setenv("SOUNDS_SAMPLE_RATE", "")
	t.Setenv("SOUNDS_AMPLITUDE", "")
	t.Setenv("SOUNDS_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultOutputDir, cfg.OutputDir)
	require.Equal(t, 44100, cfg.SampleRate)
	require.Equal(t, 0.5, cfg.Amplitude)
	require.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SOUNDS_OUTPUT_DIR", "/tmp/sounds")
	t.Setenv("SOUNDS_SAMPLE_RATE", "48000")
	t.Setenv("SOUNDS_AMPLITUDE", "0.8")
	t.Setenv("SOUNDS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/sounds", cfg.OutputDir)
	require.Equal(t, 48000, cfg.SampleRate)
	require.Equal(t, 0.8, cfg.Amplitude)
	require.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("SOUNDS_OUTPUT_DIR", "")
	t.Setenv("SOUNDS_SAMPLE_RATE", "-1")
	t.Setenv("SOUNDS_AMPLITUDE", "1.5")
	t.Setenv("SOUNDS_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "SOUNDS_SAMPLE_RATE")
	require.Contains(t, err.Error(), "SOUNDS_AMPLITUDE")
	require.Contains(t, err.Error(), "SOUNDS_LOG_LEVEL")
}

func TestLoadUnparsable(t *testing.T) {
	t.Setenv("SOUNDS_SAMPLE_RATE", "fast")
	t.Setenv("SOUNDS_AMPLITUDE", "")
	t.Setenv("SOUNDS_LOG_LEVEL", "")

	_, err := Load()
	require.ErrorContains(t, err, "SOUNDS_SAMPLE_RATE")
}
