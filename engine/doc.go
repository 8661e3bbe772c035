// SPDX-License-Identifier: EPL-2.0

// Package engine drives a timeline through the system audio devices.
//
// An Engine owns one Timeline and up to two malgo devices, playback and
// capture. The device callback renders directly from the timeline under
// the engine mutex and converts the float64 mix into the configured
// device format. Control operations go through WithTimeline, which takes
// the same mutex, so edits are frame-accurate with respect to playback.
package engine
