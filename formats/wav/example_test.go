// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Kakha01/zari/formats/wav"
)

// Example_decode decodes a small in-memory 16-bit WAV stream.
func Example_decode() {
	data := new(bytes.Buffer)
	data.WriteString("RIFF")
	binary.Write(data, binary.LittleEndian, uint32(36+8))
	data.WriteString("WAVEfmt ")
	binary.Write(data, binary.LittleEndian, uint32(16))
	binary.Write(data, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(data, binary.LittleEndian, uint16(1))
	binary.Write(data, binary.LittleEndian, uint32(8000))
	binary.Write(data, binary.LittleEndian, uint32(16000))
	binary.Write(data, binary.LittleEndian, uint16(2))
	binary.Write(data, binary.LittleEndian, uint16(16))
	data.WriteString("data")
	binary.Write(data, binary.LittleEndian, uint32(8))
	for _, s := range []int16{32767, -32768, 0, 100} {
		binary.Write(data, binary.LittleEndian, s)
	}

	src, err := wav.Decoder{}.Decode(data)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	buf := make([]float64, 4)
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Read %d samples\n", n)
	fmt.Printf("Peaks: %.1f %.1f\n", buf[0], buf[1])
	// Output:
	// Sample rate: 8000 Hz
	// Read 4 samples
	// Peaks: 1.0 -1.0
}

// Example_errorHandling shows the sentinel errors the decoder returns.
func Example_errorHandling() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("definitely not a wav stream")))

	if errors.Is(err, wav.ErrNotWav) {
		fmt.Println("Not a valid WAV file")
	}
	// Output: Not a valid WAV file
}
