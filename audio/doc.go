// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core audio processing building blocks:
//   - Source interface for decoded audio input
//   - Sinc resampler for sample rate conversion
//   - MonoMixer for channel folding
//   - BufferSource for in-memory material
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Resampling
//
// The Sinc resampler changes the sample rate of whole buffers using an
// oversampled windowed-sinc filter bank:
//
//	out, err := audio.Resample(samples, 2, 44100, 48000)
//
// Resampling works for both upsampling and downsampling; when downsampling
// the filter cutoff follows the output Nyquist frequency, so aliasing is
// suppressed.
//
// # Channel Folding
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float64, 4096)
//	n, err := mono.ReadSamples(buf)
//
// Sources wider than stereo are folded before they are placed on a track.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This is how file extensions are routed to their container parsers.
//
// # Sample Format
//
// Audio samples are represented as float64 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to mix material of different bit
// depths and keeps intermediate processing free of clipping artifacts.
//
// # Error Handling
//
// Audio processing functions return io.EOF when no more data is available.
// Other errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
