// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatF32},
		{"f32", FormatF32},
		{"u8", FormatU8},
		{"s16", FormatS16},
		{"s24", FormatS24},
		{"s32", FormatS32},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}

		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFormat("pcm"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(\"pcm\") error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormat_SampleBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f    Format
		want int
	}{
		{FormatU8, 1},
		{FormatS16, 2},
		{FormatS24, 3},
		{FormatS32, 4},
		{FormatF32, 4},
	}

	for _, tt := range tests {
		if got := tt.f.SampleBytes(); got != tt.want {
			t.Errorf("%v.SampleBytes() = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestWriteSamples_S16(t *testing.T) {
	t.Parallel()

	src := []float64{0, 1, -1, 0.5}
	dst := make([]byte, len(src)*2)
	writeSamples(dst, src, FormatS16)

	want := []byte{
		0x00, 0x00, // 0
		0xff, 0x7f, // 32767
		0x01, 0x80, // -32767
		0xff, 0x3f, // 16383
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("writeSamples s16 = % x, want % x", dst, want)
	}
}

func TestWriteSamples_U8(t *testing.T) {
	t.Parallel()

	src := []float64{-1, 0, 1}
	dst := make([]byte, len(src))
	writeSamples(dst, src, FormatU8)

	want := []byte{0, 127, 255}
	if !bytes.Equal(dst, want) {
		t.Errorf("writeSamples u8 = %v, want %v", dst, want)
	}
}

func TestWriteSamples_S24(t *testing.T) {
	t.Parallel()

	src := []float64{1, -1}
	dst := make([]byte, len(src)*3)
	writeSamples(dst, src, FormatS24)

	// 2147483647>>8 = 8388607, -2147483647>>8 = -8388608
	want := []byte{
		0xff, 0xff, 0x7f,
		0x00, 0x00, 0x80,
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("writeSamples s24 = % x, want % x", dst, want)
	}
}

func TestWriteSamples_S32(t *testing.T) {
	t.Parallel()

	src := []float64{1}
	dst := make([]byte, 4)
	writeSamples(dst, src, FormatS32)

	want := []byte{0xff, 0xff, 0xff, 0x7f}
	if !bytes.Equal(dst, want) {
		t.Errorf("writeSamples s32 = % x, want % x", dst, want)
	}
}

func TestWriteReadF32_Roundtrip(t *testing.T) {
	t.Parallel()

	src := []float64{0, 0.5, -0.5, 1, -1, 0.123456}
	raw := make([]byte, len(src)*4)
	writeSamples(raw, src, FormatF32)

	out := make([]float64, len(src))
	readF32Samples(out, raw)

	for i, want := range src {
		if math.Abs(out[i]-want) > 1e-6 {
			t.Errorf("roundtrip[%d] = %v, want ~%v", i, out[i], want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := Config{SampleRate: 0, Channels: 2}
	if err := cfg.validate(); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("validate() error = %v, want ErrInvalidSampleRate", err)
	}

	cfg = Config{SampleRate: 44100, Channels: 0}
	if err := cfg.validate(); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("validate() error = %v, want ErrInvalidChannels", err)
	}

	cfg = Config{SampleRate: 44100, Channels: 2}
	if err := cfg.validate(); err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	if cfg.PeriodMs != 10 {
		t.Errorf("PeriodMs defaulted to %d, want 10", cfg.PeriodMs)
	}
}
