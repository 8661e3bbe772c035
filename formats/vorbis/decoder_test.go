// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// mockOggReader stands in for oggvorbis.Reader.
type mockOggReader struct {
	samples []float32
	offset  int
}

func (m *mockOggReader) SampleRate() int { return 48000 }
func (m *mockOggReader) Channels() int   { return 2 }

func (m *mockOggReader) Read(p []float32) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(p, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestSource_PassthroughWithClamp(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{samples: []float32{0.5, -0.25, 1.5, -2.0}},
		sampleRate: 48000,
		channels:   2,
		buf:        make([]float32, 8),
	}

	dst := make([]float64, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 4 {
		t.Fatalf("ReadSamples() = %d, want 4", n)
	}

	want := []float64{0.5, -0.25, 1.0, -1.0}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

func TestSource_EOFAfterDrain(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{samples: []float32{0.1, 0.2}},
		sampleRate: 48000,
		channels:   2,
		buf:        make([]float32, 8),
	}

	dst := make([]float64, 8)
	if n, _ := src.ReadSamples(dst); n != 2 {
		t.Fatalf("first ReadSamples() = %d, want 2", n)
	}

	n, err := src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:      &mockOggReader{samples: []float32{0.1}},
		channels: 2,
		buf:      make([]float32, 8),
	}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an ogg stream")))
	if err == nil {
		t.Error("Decode() should fail on invalid data")
	}
}
