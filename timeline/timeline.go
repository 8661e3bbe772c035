// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"fmt"

	"github.com/Kakha01/zari/audio"
)

// Options pins down the two solo-policy questions that have no single right
// answer. Both default to off, which keeps the historical behavior: unsolo
// leaves the mutes that solo forced onto the other tracks, and tracks
// created during a solo start unmuted.
type Options struct {
	// RestoreMutesOnUnsolo re-applies the mute flags captured when the solo
	// began once it is released.
	RestoreMutesOnUnsolo bool

	// MuteNewTracksDuringSolo starts tracks created while a solo is active
	// in the muted state, keeping them out of the mix until the solo ends.
	MuteNewTracksDuringSolo bool
}

// Timeline owns the tracks, the transport playhead and the mute/solo
// resolution across tracks. It is not safe for concurrent use by itself;
// the engine serializes control and render access behind one mutex.
type Timeline struct {
	sampleRate int
	tracks     []*Track
	playhead   uint64

	// audible caches the mute/solo resolution: exactly the soloed track
	// when one exists, otherwise every unmuted track.
	audible map[TrackID]bool
	soloed  TrackID

	// mute flags captured when a solo began, for RestoreMutesOnUnsolo
	savedMutes map[TrackID]bool

	opts Options
}

// New creates an empty timeline with a fixed sample rate for the session.
func New(sampleRate int) *Timeline {
	return NewWithOptions(sampleRate, Options{})
}

func NewWithOptions(sampleRate int, opts Options) *Timeline {
	return &Timeline{
		sampleRate: sampleRate,
		audible:    make(map[TrackID]bool),
		savedMutes: make(map[TrackID]bool),
		opts:       opts,
	}
}

func (tl *Timeline) SampleRate() int { return tl.sampleRate }
func (tl *Timeline) TrackCount() int { return len(tl.tracks) }

func (tl *Timeline) TrackIDs() []TrackID {
	ids := make([]TrackID, 0, len(tl.tracks))
	for _, tr := range tl.tracks {
		ids = append(ids, tr.id)
	}

	return ids
}

// Track exposes a track for inspection. Mutating the returned track directly
// bypasses the audible cache; use the Timeline operations instead.
func (tl *Timeline) Track(id TrackID) (*Track, bool) {
	for _, tr := range tl.tracks {
		if tr.id == id {
			return tr, true
		}
	}

	return nil, false
}

func (tl *Timeline) findTrack(id TrackID) (*Track, error) {
	for _, tr := range tl.tracks {
		if tr.id == id {
			return tr, nil
		}
	}

	return nil, fmt.Errorf("%w: %d", ErrTrackNotFound, id)
}

// NewTrack appends a track and returns its id. IDs start at 1 and grow by
// one per creation.
func (tl *Timeline) NewTrack() TrackID {
	id := TrackID(1)
	if len(tl.tracks) > 0 {
		id = tl.tracks[len(tl.tracks)-1].id + 1
	}

	tr := newTrack(id, fmt.Sprintf("Track %d", id))
	if tl.opts.MuteNewTracksDuringSolo && tl.soloed != 0 {
		tr.muted = true
	}

	tl.tracks = append(tl.tracks, tr)
	tl.refreshAudible()

	return id
}

// AddClip decodes src and appends it to the given track. Decode and
// resample failures abort the attach and leave the track unchanged.
func (tl *Timeline) AddClip(id TrackID, src audio.Source) error {
	tr, err := tl.findTrack(id)
	if err != nil {
		return err
	}

	return tr.AddClip(src, tl.sampleRate)
}

func (tl *Timeline) SetVolume(id TrackID, percent float64) error {
	tr, err := tl.findTrack(id)
	if err != nil {
		return err
	}

	return tr.SetVolumePercent(percent)
}

func (tl *Timeline) SetTrackName(id TrackID, name string) error {
	tr, err := tl.findTrack(id)
	if err != nil {
		return err
	}

	tr.SetName(name)

	return nil
}

func (tl *Timeline) Mute(id TrackID) error {
	tr, err := tl.findTrack(id)
	if err != nil {
		return err
	}

	tr.Mute()
	tl.refreshAudible()

	return nil
}

func (tl *Timeline) Unmute(id TrackID) error {
	tr, err := tl.findTrack(id)
	if err != nil {
		return err
	}

	tr.Unmute()
	tl.refreshAudible()

	return nil
}

// Solo makes the given track the only audible one: every other track loses
// its solo flag and is muted. The soloed track's own mute flag is untouched;
// solo precedence keeps it audible regardless.
func (tl *Timeline) Solo(id TrackID) error {
	tr, err := tl.findTrack(id)
	if err != nil {
		return err
	}

	if tl.opts.RestoreMutesOnUnsolo && tl.soloed == 0 {
		clear(tl.savedMutes)
		for _, t := range tl.tracks {
			tl.savedMutes[t.id] = t.muted
		}
	}

	tr.Solo()
	for _, other := range tl.tracks {
		if other.id == id {
			continue
		}

		other.Unsolo()
		other.Mute()
	}

	tl.refreshAudible()

	return nil
}

// Unsolo drops the track's solo flag. The mutes that Solo forced onto the
// other tracks stay in place unless RestoreMutesOnUnsolo is set.
func (tl *Timeline) Unsolo(id TrackID) error {
	tr, err := tl.findTrack(id)
	if err != nil {
		return err
	}

	wasSoloed := tr.soloed
	tr.Unsolo()

	if tl.opts.RestoreMutesOnUnsolo && wasSoloed {
		for _, t := range tl.tracks {
			if saved, ok := tl.savedMutes[t.id]; ok {
				t.muted = saved
			}
		}

		clear(tl.savedMutes)
	}

	tl.refreshAudible()

	return nil
}

func (tl *Timeline) ToggleMute(id TrackID) error {
	tr, err := tl.findTrack(id)
	if err != nil {
		return err
	}

	if tr.muted {
		return tl.Unmute(id)
	}

	return tl.Mute(id)
}

func (tl *Timeline) ToggleSolo(id TrackID) error {
	tr, err := tl.findTrack(id)
	if err != nil {
		return err
	}

	if tr.soloed {
		return tl.Unsolo(id)
	}

	return tl.Solo(id)
}

func (tl *Timeline) IsMuted(id TrackID) (bool, error) {
	tr, err := tl.findTrack(id)
	if err != nil {
		return false, err
	}

	return tr.muted, nil
}

func (tl *Timeline) IsSoloed(id TrackID) (bool, error) {
	tr, err := tl.findTrack(id)
	if err != nil {
		return false, err
	}

	return tr.soloed, nil
}

// refreshAudible rebuilds the cached audible set after a state change.
func (tl *Timeline) refreshAudible() {
	clear(tl.audible)
	tl.soloed = 0

	for _, tr := range tl.tracks {
		if tr.soloed {
			tl.soloed = tr.id
		}
	}

	if tl.soloed != 0 {
		tl.audible[tl.soloed] = true
		return
	}

	for _, tr := range tl.tracks {
		if !tr.muted {
			tl.audible[tr.id] = true
		}
	}
}

// DurationFrames is the furthest clip end across all tracks.
func (tl *Timeline) DurationFrames() uint64 {
	var max uint64
	for _, tr := range tl.tracks {
		if d := tr.DurationFrames(); d > max {
			max = d
		}
	}

	return max
}

func (tl *Timeline) DurationSeconds() float64 {
	return float64(tl.DurationFrames()) / float64(tl.sampleRate)
}

func (tl *Timeline) Playhead() uint64 { return tl.playhead }

func (tl *Timeline) PlayheadSeconds() float64 {
	return float64(tl.playhead) / float64(tl.sampleRate)
}

// SetPlayheadSeconds seeks the transport, truncating to a whole frame.
// Negative (and NaN) positions clamp to zero.
func (tl *Timeline) SetPlayheadSeconds(seconds float64) {
	if seconds <= 0 || seconds != seconds {
		tl.playhead = 0
		return
	}

	tl.playhead = uint64(seconds * float64(tl.sampleRate))
}

func (tl *Timeline) ResetPlayhead() {
	tl.playhead = 0
}

// Render fills dst with len(dst)/outChannels frames of mixed output and
// advances the playhead by that many frames. dst is zeroed before
// accumulation; missing tracks and clip gaps simply stay silent. Render
// cannot fail and does not allocate.
func (tl *Timeline) Render(dst []float64, outChannels int) {
	if outChannels <= 0 || len(dst) == 0 {
		return
	}

	clear(dst)

	frames := len(dst) / outChannels
	for f := range frames {
		frame := dst[f*outChannels : (f+1)*outChannels]

		for _, tr := range tl.tracks {
			if !tl.audible[tr.id] {
				continue
			}

			clip := tr.FindClipAt(tl.playhead)
			if clip == nil {
				continue
			}

			clip.Contribute(frame, tr.volume, outChannels, tl.playhead)
		}

		tl.playhead++
	}
}
