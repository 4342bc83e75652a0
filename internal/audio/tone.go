package audio

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultSampleRate is the sample rate used for generated tones.
	DefaultSampleRate = 44100
	// DefaultAmplitude is the peak level of generated tones, relative to full scale.
	DefaultAmplitude = 0.5

	fadeDuration = 0.005 // 5ms
	maxPCM16     = 32767

	// MaxSamples bounds a tone so its buffer can be allocated and its WAV
	// data length fits the 32-bit header field.
	MaxSamples = math.MaxInt32 / 2
)

// ErrInvalidParameter is returned when tone or container parameters are out of range.
var ErrInvalidParameter = errors.New("invalid parameter")

// ToneParams describes a single sine tone.
type ToneParams struct {
	FrequencyHz float64
	DurationSec float64
	SampleRate  int
	Amplitude   float64
}

// Validate reports whether the parameters can be synthesized.
func (p ToneParams) Validate() error {
	switch {
	case !(p.FrequencyHz > 0) || math.IsInf(p.FrequencyHz, 0):
		return fmt.Errorf("%w: frequency %v Hz must be positive", ErrInvalidParameter, p.FrequencyHz)
	case !(p.DurationSec > 0) || math.IsInf(p.DurationSec, 0):
		return fmt.Errorf("%w: duration %v s must be positive", ErrInvalidParameter, p.DurationSec)
	case p.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidParameter, p.SampleRate)
	case !(p.Amplitude >= 0 && p.Amplitude <= 1):
		return fmt.Errorf("%w: amplitude %v must be within [0, 1]", ErrInvalidParameter, p.Amplitude)
	case math.Round(float64(p.SampleRate)*p.DurationSec) > MaxSamples:
		return fmt.Errorf("%w: %v s at %d Hz exceeds %d samples", ErrInvalidParameter, p.DurationSec, p.SampleRate, MaxSamples)
	}
	return nil
}

// NumSamples returns the buffer length for the parameters.
func (p ToneParams) NumSamples() int {
	return int(math.Round(float64(p.SampleRate) * p.DurationSec))
}

// FadeSamples returns the length of the fade-in and fade-out ramps.
func FadeSamples(sampleRate int) int {
	return int(float64(sampleRate) * fadeDuration)
}

// Synthesize produces a mono sine tone as signed 16-bit PCM with linear fades at both ends.
func Synthesize(p ToneParams) ([]int16, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	numSamples := p.NumSamples()
	fade := FadeSamples(p.SampleRate)
	rate := float64(p.SampleRate)

	samples := make([]int16, numSamples)
	for i := range samples {
		t := float64(i) / rate
		sample := p.Amplitude * math.Sin(2*math.Pi*p.FrequencyHz*t)
		samples[i] = Quantize(sample * Envelope(i, numSamples, fade))
	}
	return samples, nil
}

// Envelope returns the gain applied to sample i of n.
//
// The fade-out only starts after index n-fade, so the sample at n-fade keeps
// full gain. Fade-in takes precedence, which means tones shorter than two
// fades never ramp down.
func Envelope(i, n, fade int) float64 {
	if fade <= 0 {
		return 1
	}
	if i < fade {
		return float64(i) / float64(fade)
	} else if i > n-fade {
		return float64(n-i) / float64(fade)
	}
	return 1
}

// Quantize converts a sample in [-1, 1] to 16-bit PCM, truncating toward zero.
// Out of range input is clamped instead of wrapping.
func Quantize(sample float64) int16 {
	v := sample * maxPCM16
	if v > maxPCM16 {
		v = maxPCM16
	} else if v < -maxPCM16 {
		v = -maxPCM16
	} else if math.IsNaN(v) {
		v = 0
	}
	return int16(v)
}
