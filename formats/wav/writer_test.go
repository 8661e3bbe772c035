// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func encodeToFile(t *testing.T, samples []float64, sampleRate, channels, bitDepth int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if err := Encode(f, samples, sampleRate, channels, bitDepth); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	return path
}

func TestEncode_Roundtrip16(t *testing.T) {
	t.Parallel()

	in := []float64{0.0, 0.5, -0.5, 1.0, -1.0, 0.25}
	path := encodeToFile(t, in, 44100, 2, 16)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Fatalf("header = %d Hz / %d ch, want 44100 / 2", src.SampleRate(), src.Channels())
	}

	out := make([]float64, len(in))
	n, err := src.ReadSamples(out)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != len(in) {
		t.Fatalf("read %d samples, want %d", n, len(in))
	}

	// One 16-bit quantization step of tolerance.
	for i := range in {
		if math.Abs(out[i]-in[i]) > 1.0/32767.0 {
			t.Errorf("out[%d] = %v, want ~%v", i, out[i], in[i])
		}
	}
}

func TestEncode_Roundtrip24(t *testing.T) {
	t.Parallel()

	in := []float64{0.0, 0.5, -0.5, 0.125}
	path := encodeToFile(t, in, 48000, 1, 24)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	out := make([]float64, len(in))
	if _, err := src.ReadSamples(out); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for i := range in {
		if math.Abs(out[i]-in[i]) > 1.0/8388607.0 {
			t.Errorf("out[%d] = %v, want ~%v", i, out[i], in[i])
		}
	}
}

func TestEncode_InvalidBitDepth(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if err := Encode(f, []float64{0}, 44100, 1, 12); !errors.Is(err, ErrInvalidBitDepth) {
		t.Errorf("Encode() error = %v, want ErrInvalidBitDepth", err)
	}
}

func TestQuantize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sample   float64
		bitDepth int
		want     int
	}{
		{1.0, 8, 255},
		{-1.0, 8, 0},
		{0.0, 8, 127},
		{1.0, 16, 32767},
		{-1.0, 16, -32767},
		{0.0, 16, 0},
		{1.0, 24, 8388607},
		{-1.0, 24, -8388608},
		{1.0, 32, 2147483647},
		{-1.0, 32, -2147483647},
	}

	for _, tt := range tests {
		if got := quantize(tt.sample, tt.bitDepth); got != tt.want {
			t.Errorf("quantize(%v, %d) = %d, want %d", tt.sample, tt.bitDepth, got, tt.want)
		}
	}
}
