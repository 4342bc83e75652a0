package audio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/multierr"
)

const (
	bitsPerSample = 16
	bytesPerPCM16 = bitsPerSample / 8
	// WAVHeaderSize is the size of the canonical PCM RIFF/WAVE header.
	WAVHeaderSize = 44
)

// wavHeader is the canonical 44-byte RIFF/WAVE header for PCM data.
type wavHeader struct {
	RIFF          [4]byte
	ChunkSize     uint32 // 36 + DataLen
	WAVE          [4]byte
	Fmt           [4]byte
	FmtSize       uint32 // 16 for PCM
	AudioFormat   uint16 // 1 = PCM
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * BlockAlign
	BlockAlign    uint16 // Channels * bytes per sample
	BitsPerSample uint16
	Data          [4]byte
	DataLen       uint32
}

// newPCM16Header builds the header for numSamples interleaved 16-bit samples.
// Every field is checked against its width so the header never wraps.
func newPCM16Header(numSamples, sampleRate, channels int) (wavHeader, error) {
	switch {
	case channels <= 0:
		return wavHeader{}, fmt.Errorf("%w: channels must be positive", ErrInvalidParameter)
	case sampleRate <= 0:
		return wavHeader{}, fmt.Errorf("%w: sample rate must be positive", ErrInvalidParameter)
	case numSamples < 0:
		return wavHeader{}, fmt.Errorf("%w: negative sample count", ErrInvalidParameter)
	case numSamples%channels != 0:
		return wavHeader{}, fmt.Errorf("%w: %d samples do not divide into %d channels", ErrInvalidParameter, numSamples, channels)
	}

	blockAlign := uint64(channels) * bytesPerPCM16
	byteRate := uint64(sampleRate) * blockAlign
	dataLen := uint64(numSamples) * bytesPerPCM16
	chunkSize := WAVHeaderSize - 8 + dataLen

	switch {
	case blockAlign > math.MaxUint16:
		return wavHeader{}, fmt.Errorf("%w: %d channels do not fit a wav header", ErrInvalidParameter, channels)
	case uint64(sampleRate) > math.MaxUint32:
		return wavHeader{}, fmt.Errorf("%w: sample rate %d does not fit a wav header", ErrInvalidParameter, sampleRate)
	case byteRate > math.MaxUint32:
		return wavHeader{}, fmt.Errorf("%w: byte rate %d does not fit a wav header", ErrInvalidParameter, byteRate)
	case chunkSize > math.MaxUint32:
		return wavHeader{}, fmt.Errorf("%w: %d data bytes do not fit a wav header", ErrInvalidParameter, dataLen)
	}

	return wavHeader{
		RIFF:          [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     uint32(chunkSize),
		WAVE:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   1,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(byteRate),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: bitsPerSample,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataLen:       uint32(dataLen),
	}, nil
}

// EncodePCM16WAV writes interleaved signed 16-bit samples to w as a PCM WAV stream.
func EncodePCM16WAV(w io.Writer, samples []int16, sampleRate, channels int) error {
	header, err := newPCM16Header(len(samples), sampleRate, channels)
	if err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}
	if len(samples) == 0 {
		return nil
	}
	if err := binary.Write(w, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}

	return nil
}

// WritePCM16ToWAV writes the provided PCM samples into a signed 16-bit mono/stereo WAV file.
// An existing file at path is truncated.
func WritePCM16ToWAV(path string, samples []int16, sampleRate, channels int) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("close wav file: %w", cerr))
		}
	}()

	buf := bufio.NewWriter(file)
	if err := EncodePCM16WAV(buf, samples, sampleRate, channels); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flush wav file: %w", err)
	}

	return nil
}
