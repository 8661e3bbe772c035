// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kakha01/zari"
	"github.com/Kakha01/zari/config"
	"github.com/Kakha01/zari/engine"
	"github.com/Kakha01/zari/timeline"
)

func main() {
	configPath := flag.String("config", "./session.toml", "session configuration file")
	bounce := flag.Bool("bounce", false, "render the session to the configured WAV file instead of playing it")
	flag.Parse()

	logger := logrus.StandardLogger()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("Error loading configuration")
	}

	applyLogging(logger, cfg.Logging)

	format, err := engine.ParseFormat(cfg.Audio.Format)
	if err != nil {
		logger.WithError(err).Fatal("Error in audio configuration")
	}

	eng, err := engine.New(engine.Config{
		SampleRate: cfg.Audio.SampleRate,
		Channels:   cfg.Audio.Channels,
		Format:     format,
		PeriodMs:   uint32(cfg.Audio.PeriodMs),
	})
	if err != nil {
		logger.WithError(err).Fatal("Error creating audio engine")
	}
	defer eng.Close()

	if err := eng.WithTimeline(func(tl *timeline.Timeline) error {
		return buildSession(tl, cfg, logger)
	}); err != nil {
		logger.WithError(err).Fatal("Error building session")
	}

	if *bounce {
		if err := bounceSession(eng, cfg); err != nil {
			logger.WithError(err).Fatal("Error bouncing session")
		}
		logger.WithField("path", cfg.Bounce.Path).Info("Bounce complete")
		return
	}

	var duration time.Duration
	eng.WithTimeline(func(tl *timeline.Timeline) error {
		duration = time.Duration(tl.DurationSeconds() * float64(time.Second))
		return nil
	})

	if duration == 0 {
		logger.Warn("Session has no clips, nothing to play")
		return
	}

	if err := eng.Play(); err != nil {
		logger.WithError(err).Fatal("Error starting playback")
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case <-c:
		logger.Info("Received shutdown signal")
	case <-time.After(duration + 500*time.Millisecond):
	}

	eng.Stop()
}

// buildSession creates the configured tracks and attaches their clips in
// declaration order. Mute and solo flags apply after all tracks exist, so
// a configured solo mutes every other track the same way a live solo
// would.
func buildSession(tl *timeline.Timeline, cfg *config.Config, logger *logrus.Logger) error {
	ids := make([]timeline.TrackID, len(cfg.Tracks))

	for i, tc := range cfg.Tracks {
		id := tl.NewTrack()
		ids[i] = id

		if tc.Name != "" {
			if err := tl.SetTrackName(id, tc.Name); err != nil {
				return err
			}
		}

		// An omitted volume decodes as 0; play those at full scale.
		volume := tc.Volume
		if volume == 0 {
			volume = 100
		}
		if err := tl.SetVolume(id, volume); err != nil {
			return err
		}

		for _, path := range tc.Clips {
			if err := zari.AddClipFile(tl, id, path); err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{
				"track": tc.Name,
				"clip":  path,
			}).Debug("Clip attached")
		}
	}

	for i, tc := range cfg.Tracks {
		if tc.Muted {
			if err := tl.Mute(ids[i]); err != nil {
				return err
			}
		}
	}

	for i, tc := range cfg.Tracks {
		if tc.Soloed {
			if err := tl.Solo(ids[i]); err != nil {
				return err
			}
		}
	}

	logger.WithFields(logrus.Fields{
		"tracks":   tl.TrackCount(),
		"duration": tl.DurationSeconds(),
	}).Info("Session loaded")

	return nil
}

func bounceSession(eng *engine.Engine, cfg *config.Config) error {
	f, err := os.Create(cfg.Bounce.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	return eng.WithTimeline(func(tl *timeline.Timeline) error {
		return zari.Bounce(tl, f, cfg.Bounce.Channels, cfg.Bounce.BitDepth)
	})
}

func applyLogging(logger *logrus.Logger, lc config.LoggingConfig) {
	if level, err := logrus.ParseLevel(lc.Level); err == nil {
		logger.SetLevel(level)
	}

	if lc.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
}
