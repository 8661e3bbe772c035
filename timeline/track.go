// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"fmt"

	"github.com/Kakha01/zari/audio"
)

// TrackID is an opaque handle for a track, handed out on creation. IDs grow
// monotonically within a session and are never reused.
type TrackID uint32

// Track is an ordered run of non-overlapping clips plus playback state.
// Clips only ever append, each starting one frame past the previous clip's
// end, so at most one clip is active at any playhead frame.
type Track struct {
	id     TrackID
	name   string
	volume float64
	muted  bool
	soloed bool
	clips  []*Clip
}

func newTrack(id TrackID, name string) *Track {
	return &Track{
		id:     id,
		name:   name,
		volume: 1.0,
	}
}

func (t *Track) ID() TrackID      { return t.id }
func (t *Track) Name() string     { return t.name }
func (t *Track) SetName(n string) { t.name = n }

func (t *Track) Volume() float64        { return t.volume }
func (t *Track) VolumePercent() float64 { return t.volume * 100.0 }

func (t *Track) IsMuted() bool  { return t.muted }
func (t *Track) IsSoloed() bool { return t.soloed }

func (t *Track) ClipCount() int { return len(t.clips) }
func (t *Track) IsEmpty() bool  { return len(t.clips) == 0 }

// Mute silences the track. Muting also drops the track's own solo flag;
// mute wins over solo on the same track.
func (t *Track) Mute() {
	t.muted = true
	t.soloed = false
}

// Unmute lifts the mute flag only. A solo flag is untouched.
func (t *Track) Unmute() {
	t.muted = false
}

// Solo raises the track's solo flag. The cross-track policy (dropping and
// muting every other track's solo) lives on Timeline, which owns the
// exclusivity invariant.
func (t *Track) Solo() {
	t.soloed = true
}

// Unsolo drops the solo flag only. It never restores what soloing did to
// other tracks.
func (t *Track) Unsolo() {
	t.soloed = false
}

func (t *Track) ToggleMute() {
	if t.muted {
		t.Unmute()
	} else {
		t.Mute()
	}
}

func (t *Track) ToggleSolo() {
	if t.soloed {
		t.Unsolo()
	} else {
		t.Solo()
	}
}

// SetVolumePercent stores percent/100 as the track gain.
func (t *Track) SetVolumePercent(percent float64) error {
	volume := percent / 100.0
	if !(volume >= 0.0 && volume <= 1.0) {
		return fmt.Errorf("%w: %v", ErrInvalidVolume, volume)
	}

	t.volume = volume

	return nil
}

// AddClip appends a clip decoded from src. The clip starts one frame past
// the previous clip's end, or at frame 0 on an empty track. A failed decode
// or resample leaves the track unchanged.
func (t *Track) AddClip(src audio.Source, timelineRate int) error {
	var start uint64
	if len(t.clips) > 0 {
		start = t.clips[len(t.clips)-1].End() + 1
	}

	clip, err := NewClipFromSource(src, start, timelineRate)
	if err != nil {
		return err
	}

	t.clips = append(t.clips, clip)

	return nil
}

// FindClipAt returns the clip whose [start, end) range covers frame, or nil.
// Uniqueness is guaranteed by the non-overlap invariant.
func (t *Track) FindClipAt(frame uint64) *Clip {
	for _, c := range t.clips {
		if frame < c.start {
			return nil
		}
		if frame < c.End() {
			return c
		}
	}

	return nil
}

// DurationFrames is the end of the last clip, or 0 for an empty track.
func (t *Track) DurationFrames() uint64 {
	if len(t.clips) == 0 {
		return 0
	}

	return t.clips[len(t.clips)-1].End()
}
