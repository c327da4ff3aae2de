// Package wavio encodes mono float32 sample streams into complete,
// self-describing 16-bit PCM WAV byte buffers, entirely in memory. The
// buffers exist only to be handed to an upload call; nothing here touches
// the filesystem.
package wavio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/orcaman/writerseeker"
)

const (
	numChannels = 1
	bitDepth    = 16
	pcmFormat   = 1
)

// Encode converts samples (one mono channel, nominally in [-1, 1]) into a
// finalized WAV container at the given sample rate. Every sample becomes
// exactly one 16-bit signed integer via [SampleToInt16].
func Encode(samples []float32, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(SampleToInt16(s))
	}

	ws := &writerseeker.WriterSeeker{}
	encoder := wav.NewEncoder(ws, sampleRate, bitDepth, numChannels, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to write WAV samples: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize WAV file: %w", err)
	}

	out, err := io.ReadAll(ws.Reader())
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV buffer: %w", err)
	}
	return out, nil
}

// SampleToInt16 scales a float sample by the maximum 16-bit signed value
// and rounds to the nearest integer. Out-of-range input saturates at the
// int16 bounds; wrapping would turn a slightly hot signal into full-scale
// noise, which is never what a transcription backend should receive.
func SampleToInt16(s float32) int16 {
	v := math.Round(float64(s) * math.MaxInt16)
	if math.IsNaN(v) {
		return 0
	}
	if v >= math.MaxInt16 {
		return math.MaxInt16
	}
	if v <= math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// Info describes a decoded WAV stream.
type Info struct {
	NumChannels int
	SampleRate  int
	BitDepth    int
	Samples     []int
}

// Decode parses a WAV byte buffer produced by [Encode] (or any PCM WAV
// file) back into its format description and integer samples.
func Decode(b []byte) (*Info, error) {
	decoder := wav.NewDecoder(bytes.NewReader(b))
	if !decoder.IsValidFile() {
		return nil, errors.New("not a valid WAV file")
	}
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}
	return &Info{
		NumChannels: int(decoder.NumChans),
		SampleRate:  int(decoder.SampleRate),
		BitDepth:    int(decoder.BitDepth),
		Samples:     buf.Data,
	}, nil
}

// ToFloat32 converts decoded 16-bit integer samples back to the float range
// used by the rest of the pipeline.
func ToFloat32(samples []int) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = float32(s) / math.MaxInt16
	}
	return out
}
