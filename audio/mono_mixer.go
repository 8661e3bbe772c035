package audio

import "fmt"

// MonoMixer folds a multichannel source down to mono by averaging the
// channels of each frame. Mono sources pass through untouched.
type MonoMixer struct {
	src Source
	tmp []float64
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float64, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *MonoMixer) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels

	// Grow tmp when needed, never shrink.
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float64, samplesNeeded)
	} else if len(m.tmp) < samplesNeeded {
		m.tmp = m.tmp[:samplesNeeded]
	}

	n, err := m.src.ReadSamples(m.tmp[:samplesNeeded])
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	invChannels := 1.0 / float64(channels)

	switch channels {
	case 2:
		for f := range frames {
			idx := f * 2
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	case 4:
		for f := range frames {
			idx := f * 4
			sum := m.tmp[idx] + m.tmp[idx+1] + m.tmp[idx+2] + m.tmp[idx+3]
			dst[f] = sum * 0.25
		}
	default:
		for f := range frames {
			var sum float64
			base := f * channels
			for c := range channels {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * invChannels
		}
	}

	return frames, err
}
