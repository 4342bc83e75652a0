package config

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"

	"github.com/pikachu0310/metronome-sounds/internal/audio"
)

// DefaultOutputDir is where the sound files are written unless overridden.
const DefaultOutputDir = "frontend/public/sounds"

// Config represents runtime configuration from environment variables.
type Config struct {
	OutputDir  string
	SampleRate int
	Amplitude  float64
	LogLevel   zapcore.Level
}

// Load reads configuration from environment variables and validates it.
func Load() (Config, error) {
	cfg := Config{
		OutputDir:  os.Getenv("SOUNDS_OUTPUT_DIR"),
		SampleRate: audio.DefaultSampleRate,
		Amplitude:  audio.DefaultAmplitude,
		LogLevel:   zapcore.InfoLevel,
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	var invalid []string
	if v := os.Getenv("SOUNDS_SAMPLE_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil || rate <= 0 {
			invalid = append(invalid, "SOUNDS_SAMPLE_RATE")
		} else {
			cfg.SampleRate = rate
		}
	}
	if v := os.Getenv("SOUNDS_AMPLITUDE"); v != "" {
		amp, err := strconv.ParseFloat(v, 64)
		if err != nil || !(amp >= 0 && amp <= 1) {
			invalid = append(invalid, "SOUNDS_AMPLITUDE")
		} else {
			cfg.Amplitude = amp
		}
	}
	if v := os.Getenv("SOUNDS_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			invalid = append(invalid, "SOUNDS_LOG_LEVEL")
		}
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %v", invalid)
	}

	return cfg, nil
}
