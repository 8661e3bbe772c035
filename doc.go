// SPDX-License-Identifier: EPL-2.0

// Package zari is a multitrack mixing engine. It decodes audio files of
// heterogeneous formats, bit depths and sample rates into a canonical
// normalized float64 representation, places them as clips on tracks, and
// renders the timeline sample-accurately for a real-time output device or
// an offline bounce.
//
// # Supported formats
//
//   - WAV (PCM 8/16/24/32-bit and 32-bit float) via formats/wav
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//
// # Quick start
//
// Build a session and bounce it to disk:
//
//	tl := timeline.New(44100)
//	drums := tl.NewTrack()
//	bass := tl.NewTrack()
//
//	zari.AddClipFile(tl, drums, "drums.wav")
//	zari.AddClipFile(tl, bass, "bass.flac")
//	tl.SetVolume(bass, 80)
//
//	out, _ := os.Create("mix.wav")
//	zari.Bounce(tl, out, 2, 16)
//
// For live playback, the engine package binds the timeline to an output
// device and renders it inside the hardware callback:
//
//	eng, _ := engine.New(engine.Config{SampleRate: 44100, Channels: 2})
//	eng.WithTimeline(func(tl *timeline.Timeline) error {
//	    id := tl.NewTrack()
//	    return zari.AddClipFile(tl, id, "drums.wav")
//	})
//	eng.Play()
//
// # Packages
//
//   - timeline: clips, tracks, mute/solo policy and the render loop
//   - audio: the Source interface, decoder registry, sinc resampler and
//     channel tools
//   - utils: sample normalization scales and interleave helpers
//   - formats/...: per-container decoders behind audio.Source
//   - engine: malgo-backed playback and capture
//   - config: TOML session descriptions
package zari
