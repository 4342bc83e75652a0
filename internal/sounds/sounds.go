package sounds

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pikachu0310/metronome-sounds/internal/audio"
)

// Channels is the channel count of every generated file.
const Channels = 1

// Tone names a sound file and the sine tone it contains.
type Tone struct {
	Name        string
	File        string
	FrequencyHz float64
	DurationSec float64
}

// Result describes a written sound file.
type Result struct {
	Tone    Tone
	Path    string
	Samples int
}

// DefaultTones returns the metronome sound set.
func DefaultTones() []Tone {
	return []Tone{
		{Name: "click", File: "click.wav", FrequencyHz: 1000, DurationSec: 0.05},
		{Name: "beep", File: "beep.wav", FrequencyHz: 880, DurationSec: 0.08}, // A5
		{Name: "drum", File: "drum.wav", FrequencyHz: 150, DurationSec: 0.12},
		{Name: "snap", File: "snap.wav", FrequencyHz: 2000, DurationSec: 0.04},
		{Name: "woodblock", File: "woodblock.wav", FrequencyHz: 600, DurationSec: 0.06},
	}
}

// Generator writes tones as WAV files into an existing directory.
type Generator struct {
	outputDir  string
	sampleRate int
	amplitude  float64
	logger     *zap.Logger
}

// NewGenerator returns a Generator. A nil logger discards output.
func NewGenerator(outputDir string, sampleRate int, amplitude float64, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		outputDir:  outputDir,
		sampleRate: sampleRate,
		amplitude:  amplitude,
		logger:     logger,
	}
}

// Generate synthesizes and writes each tone in order, stopping at the first failure.
func (g *Generator) Generate(tones []Tone) ([]Result, error) {
	info, err := os.Stat(g.outputDir)
	if err != nil {
		return nil, fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output directory %s is not a directory", g.outputDir)
	}

	g.logger.Info("generating metronome sound files", zap.Int("count", len(tones)))

	results := make([]Result, 0, len(tones))
	files := make([]string, 0, len(tones))
	for _, tone := range tones {
		res, err := g.generate(tone)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", tone.Name, err)
		}
		g.logger.Info("created",
			zap.String("file", res.Path),
			zap.Float64("frequencyHz", tone.FrequencyHz),
			zap.Float64("durationMs", tone.DurationSec*1000),
			zap.Int("samples", res.Samples),
		)
		results = append(results, res)
		files = append(files, tone.File)
	}

	g.logger.Info("all metronome sound files created",
		zap.String("dir", g.outputDir),
		zap.Strings("files", files),
	)
	return results, nil
}

func (g *Generator) generate(tone Tone) (Result, error) {
	samples, err := audio.Synthesize(audio.ToneParams{
		FrequencyHz: tone.FrequencyHz,
		DurationSec: tone.DurationSec,
		SampleRate:  g.sampleRate,
		Amplitude:   g.amplitude,
	})
	if err != nil {
		return Result{}, err
	}

	path := filepath.Join(g.outputDir, tone.File)
	if err := audio.WritePCM16ToWAV(path, samples, g.sampleRate, Channels); err != nil {
		return Result{}, err
	}
	return Result{Tone: tone, Path: path, Samples: len(samples)}, nil
}
