package wavio

import (
	"math"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// One second of a 440 Hz tone at 16 kHz.
	const sampleRate = 16000
	samples := make([]float32, sampleRate)
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/sampleRate))
	}

	b, err := Encode(samples, sampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) == 0 {
		t.Fatal("expected a non-empty WAV buffer")
	}

	info, err := Decode(b)
	if err != nil {
		t.Fatalf("encoded buffer did not decode: %v", err)
	}
	if info.NumChannels != 1 {
		t.Errorf("expected mono, got %d channels", info.NumChannels)
	}
	if info.SampleRate != sampleRate {
		t.Errorf("expected %d Hz, got %d", sampleRate, info.SampleRate)
	}
	if info.BitDepth != 16 {
		t.Errorf("expected 16-bit, got %d", info.BitDepth)
	}
	if len(info.Samples) != len(samples) {
		t.Fatalf("expected %d samples back, got %d", len(samples), len(info.Samples))
	}

	// Each decoded sample must match the saturating conversion exactly.
	for i, s := range samples {
		if got, want := info.Samples[i], int(SampleToInt16(s)); got != want {
			t.Fatalf("sample %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	b, err := Encode(nil, 16000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := Decode(b)
	if err != nil {
		t.Fatalf("empty stream should still be a valid container: %v", err)
	}
	if len(info.Samples) != 0 {
		t.Errorf("expected zero samples, got %d", len(info.Samples))
	}
}

func TestEncodeRejectsBadSampleRate(t *testing.T) {
	if _, err := Encode([]float32{0}, 0); err == nil {
		t.Error("expected an error for sample rate 0")
	}
	if _, err := Encode([]float32{0}, -16000); err == nil {
		t.Error("expected an error for a negative sample rate")
	}
}

func TestSampleToInt16Saturates(t *testing.T) {
	cases := []struct {
		in   float32
		want int16
	}{
		{0, 0},
		{1.0, math.MaxInt16},
		{-1.0, -math.MaxInt16},
		{2.0, math.MaxInt16},
		{-2.0, math.MinInt16},
		{float32(math.Inf(1)), math.MaxInt16},
		{float32(math.Inf(-1)), math.MinInt16},
		{0.5, 16384}, // round(0.5 * 32767) = round(16383.5)
		{-0.5, -16384},
	}
	for _, c := range cases {
		if got := SampleToInt16(c.in); got != c.want {
			t.Errorf("SampleToInt16(%v): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestToFloat32Inverse(t *testing.T) {
	in := []float32{0, 0.25, -0.25, 0.99, -0.99}
	ints := make([]int, len(in))
	for i, s := range in {
		ints[i] = int(SampleToInt16(s))
	}
	out := ToFloat32(ints)
	for i := range in {
		if diff := math.Abs(float64(out[i] - in[i])); diff > 1.0/math.MaxInt16 {
			t.Errorf("sample %d: round trip drifted by %v", i, diff)
		}
	}
}
