// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/sirupsen/logrus"

	"github.com/Kakha01/zari/timeline"
)

// Config describes the device binding for an Engine.
type Config struct {
	// SampleRate of the session and both devices, in Hz.
	SampleRate int

	// Channels of the output device (1=mono, 2=stereo).
	Channels int

	// Format is the output device's sample encoding. Defaults to f32.
	Format Format

	// PeriodMs is the device callback period in milliseconds. 0 picks 10.
	PeriodMs uint32

	// Timeline carries the solo-policy options for the owned timeline.
	Timeline timeline.Options
}

func (c *Config) validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, c.SampleRate)
	}

	if c.Channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, c.Channels)
	}

	if c.PeriodMs == 0 {
		c.PeriodMs = 10
	}

	return nil
}

// Engine binds a Timeline to the system audio devices via malgo. One
// mutex serializes the control surface and the device callbacks; all
// decoding and resampling happens on the control side, so the callback
// only renders and converts.
type Engine struct {
	cfg Config
	ctx *malgo.AllocatedContext
	log *logrus.Entry

	mu sync.Mutex
	tl *timeline.Timeline

	playback *malgo.Device
	capture  *malgo.Device

	// scratch is the render buffer reused across callbacks; it grows to
	// the largest block seen and is never reallocated in steady state.
	scratch []float64

	// take accumulates normalized samples while recording.
	take []float64

	closed bool
}

// New creates an engine with its own timeline at cfg.SampleRate.
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log := logrus.WithField("component", "engine")

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		log.Debug(message)
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &Engine{
		cfg: cfg,
		ctx: ctx,
		log: log,
		tl:  timeline.NewWithOptions(cfg.SampleRate, cfg.Timeline),
	}, nil
}

// WithTimeline runs fn with exclusive access to the timeline. This is the
// control surface entry point; it blocks the render callback for the
// duration of fn, so keep slow work (decoding files) outside where
// possible.
func (e *Engine) WithTimeline(fn func(*timeline.Timeline) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	return fn(e.tl)
}

// Play opens the output device and starts rendering the timeline from
// the current playhead. Calling Play while playing is a no-op.
func (e *Engine) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	if e.playback != nil {
		return nil
	}

	devCfg := malgo.DefaultDeviceConfig(malgo.Playback)
	devCfg.Playback.Format = e.cfg.Format.malgoFormat()
	devCfg.Playback.Channels = uint32(e.cfg.Channels)
	devCfg.SampleRate = uint32(e.cfg.SampleRate)
	devCfg.PeriodSizeInMilliseconds = e.cfg.PeriodMs

	onFrames := func(pOutput, pInput []byte, frameCount uint32) {
		n := int(frameCount) * e.cfg.Channels

		e.mu.Lock()
		if cap(e.scratch) < n {
			e.scratch = make([]float64, n)
		}
		buf := e.scratch[:n]
		e.tl.Render(buf, e.cfg.Channels)
		e.mu.Unlock()

		writeSamples(pOutput, buf, e.cfg.Format)
	}

	device, err := malgo.InitDevice(e.ctx.Context, devCfg, malgo.DeviceCallbacks{Data: onFrames})
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		return fmt.Errorf("%w", err)
	}

	e.playback = device
	e.log.WithFields(logrus.Fields{
		"sample_rate": e.cfg.SampleRate,
		"channels":    e.cfg.Channels,
		"format":      e.cfg.Format.String(),
		"period_ms":   e.cfg.PeriodMs,
	}).Info("Playback started")

	return nil
}

// Stop releases the output device and resets the playhead. An in-flight
// callback completes; no new one is invoked afterwards.
func (e *Engine) Stop() {
	e.mu.Lock()
	device := e.playback
	e.playback = nil
	e.mu.Unlock()

	if device == nil {
		return
	}

	// Uninit outside the lock: it blocks until the device thread is done,
	// and the callback takes the same lock.
	device.Uninit()

	e.mu.Lock()
	e.tl.ResetPlayhead()
	e.mu.Unlock()

	e.log.Info("Playback stopped")
}

// IsPlaying reports whether the output device is open.
func (e *Engine) IsPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.playback != nil
}

// StartRecording opens the input device and accumulates normalized
// samples until StopRecording.
func (e *Engine) StartRecording() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	if e.capture != nil {
		return nil
	}

	devCfg := malgo.DefaultDeviceConfig(malgo.Capture)
	devCfg.Capture.Format = malgo.FormatF32
	devCfg.Capture.Channels = uint32(e.cfg.Channels)
	devCfg.SampleRate = uint32(e.cfg.SampleRate)
	devCfg.PeriodSizeInMilliseconds = e.cfg.PeriodMs

	onFrames := func(pOutput, pInput []byte, frameCount uint32) {
		n := int(frameCount) * e.cfg.Channels

		e.mu.Lock()
		start := len(e.take)
		e.take = append(e.take, make([]float64, n)...)
		readF32Samples(e.take[start:], pInput)
		e.mu.Unlock()
	}

	device, err := malgo.InitDevice(e.ctx.Context, devCfg, malgo.DeviceCallbacks{Data: onFrames})
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		return fmt.Errorf("%w", err)
	}

	e.take = e.take[:0]
	e.capture = device
	e.log.WithFields(logrus.Fields{
		"sample_rate": e.cfg.SampleRate,
		"channels":    e.cfg.Channels,
	}).Info("Recording started")

	return nil
}

// StopRecording releases the input device, resets the playhead and
// returns the recorded take as normalized interleaved samples at the
// session rate. The take can be attached as a clip via
// audio.NewBufferSource.
func (e *Engine) StopRecording() []float64 {
	e.mu.Lock()
	device := e.capture
	e.capture = nil
	e.mu.Unlock()

	if device == nil {
		return nil
	}

	device.Uninit()

	e.mu.Lock()
	take := make([]float64, len(e.take))
	copy(take, e.take)
	e.take = e.take[:0]
	e.tl.ResetPlayhead()
	e.mu.Unlock()

	e.log.WithField("samples", len(take)).Info("Recording stopped")

	return take
}

// IsRecording reports whether the input device is open.
func (e *Engine) IsRecording() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.capture != nil
}

// Close stops both devices and frees the audio context. The engine is
// unusable afterwards.
func (e *Engine) Close() {
	e.Stop()
	e.StopRecording()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true

	if e.ctx != nil {
		_ = e.ctx.Uninit()
		e.ctx.Free()
		e.ctx = nil
	}
}
