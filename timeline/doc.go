// SPDX-License-Identifier: EPL-2.0

// Package timeline implements the multitrack mixing model: clips anchored
// at sample positions, tracks with volume and mute/solo state, and a
// timeline that renders all audible tracks into interleaved float64 output.
//
// # Model
//
// A Clip is an immutable normalized buffer placed at a frame position. A
// Track owns an append-only sequence of non-overlapping clips plus its
// playback state. The Timeline owns the tracks, the transport playhead and
// the cross-track mute/solo policy.
//
//	tl := timeline.New(44100)
//	id := tl.NewTrack()
//	tl.AddClip(id, src)
//
//	out := make([]float64, 512*2)
//	tl.Render(out, 2) // 512 stereo frames, playhead advances by 512
//
// # Mute and solo
//
// Soloing a track is exclusive: every other track loses its solo flag and
// is muted. Muting a track drops its own solo flag. When any track is
// soloed only that track renders; otherwise every unmuted track renders.
// Unsolo does not undo the mutes that solo forced onto the other tracks
// unless Options.RestoreMutesOnUnsolo is set.
//
// # Concurrency
//
// The Timeline is not safe for concurrent use on its own. The engine
// package serializes the control surface and the device callback behind a
// single mutex; Render itself never fails and never allocates.
package timeline
