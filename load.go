// SPDX-License-Identifier: EPL-2.0

package zari

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Kakha01/zari/audio"
	"github.com/Kakha01/zari/formats/aiff"
	"github.com/Kakha01/zari/formats/flac"
	"github.com/Kakha01/zari/formats/mp3"
	"github.com/Kakha01/zari/formats/vorbis"
	"github.com/Kakha01/zari/formats/wav"
	"github.com/Kakha01/zari/timeline"
)

var ErrUnknownFormat = errors.New("unknown audio format")

var registry = audio.NewRegistry()

func init() {
	registry.Register("wav", wav.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("aif", aiff.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
	registry.Register("flac", flac.Decoder{})
}

// Decoders is the registry consulted by Open, keyed by file extension.
// Applications can register additional formats.
func Decoders() *audio.Registry {
	return registry
}

// fileSource keeps the backing file open until the source is closed.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}

	return err
}

// Open decodes an audio file, picking the decoder by extension. The
// returned source streams from the file; close it when drained.
func Open(path string) (audio.Source, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	dec, ok := registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &fileSource{Source: src, f: f}, nil
}

// Conform adapts a source for clip attachment: anything beyond stereo is
// folded down to mono, mono and stereo pass through.
func Conform(src audio.Source) audio.Source {
	if src.Channels() > 2 {
		return audio.NewMonoMixer(src)
	}

	return src
}

// AddClipFile decodes path and appends it as a clip on the given track.
// Surround material is downmixed to mono first; decode and resample
// failures leave the track unchanged.
func AddClipFile(tl *timeline.Timeline, id timeline.TrackID, path string) error {
	src, err := Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	return tl.AddClip(id, Conform(src))
}
