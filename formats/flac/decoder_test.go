// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"testing"

	"github.com/mewkiz/flac/frame"

	"github.com/Kakha01/zari/utils"
)

func TestInterleaveSubframes_Stereo16(t *testing.T) {
	t.Parallel()

	subframes := []*frame.Subframe{
		{Samples: []int32{32767, 0, -32768}},
		{Samples: []int32{-32767, 16384, 0}},
	}

	out := interleaveSubframes(nil, subframes, 2, utils.ScaleI16)

	if len(out) != 6 {
		t.Fatalf("len(out) = %d, want 6", len(out))
	}

	// L and R alternate per frame, peaks land on exactly +-1.
	if out[0] != 1.0 || out[1] != -1.0 {
		t.Errorf("frame 0 = [%v %v], want [1 -1]", out[0], out[1])
	}

	if out[2] != 0.0 || out[4] != -1.0 || out[5] != 0.0 {
		t.Errorf("out = %v", out)
	}
}

func TestInterleaveSubframes_Mono24(t *testing.T) {
	t.Parallel()

	subframes := []*frame.Subframe{
		{Samples: []int32{8388607, -8388608, 0}},
	}

	out := interleaveSubframes(nil, subframes, 1, utils.ScaleI24)

	want := []float64{1.0, -1.0, 0.0}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("out[%d] = %v, want exactly %v", i, out[i], w)
		}
	}
}

func TestInterleaveSubframes_ReusesBuffer(t *testing.T) {
	t.Parallel()

	buf := make([]float64, 16)
	subframes := []*frame.Subframe{{Samples: []int32{100, 200}}}

	out := interleaveSubframes(buf, subframes, 1, utils.ScaleI16)

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}

	if &out[0] != &buf[0] {
		t.Error("interleaveSubframes should reuse the passed buffer's storage")
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not a flac stream")))
	if err == nil {
		t.Error("Decode() should fail on invalid data")
	}
}
