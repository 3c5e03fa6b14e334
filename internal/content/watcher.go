package content

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Watch calls reload after files below dir change, at most once per debounce
// window. It runs until ctx is done; the returned channel is closed then.
func Watch(ctx context.Context, dir string, debounce time.Duration, reload func() error) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create content watcher")
	}

	for _, d := range []string{dir, filepath.Join(dir, filepath.Dir(PostsGlob))} {
		if info, statErr := os.Stat(d); statErr != nil || !info.IsDir() {
			continue
		}

		if err = watcher.Add(d); err != nil {
			_ = watcher.Close()

			return nil, errors.Wrapf(err, "failed to watch %s", d)
		}
	}

	done := make(chan struct{})

	go func() {
		defer close(done)
		defer watcher.Close()

		var (
			timer  *time.Timer
			timerC <-chan time.Time
		)

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}

				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}

				log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("content changed")

				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}

				timerC = timer.C
			case <-timerC:
				timerC = nil

				if err := reload(); err != nil {
					log.Error().Err(err).Msg("content reload failed")
				} else {
					log.Info().Str("dir", dir).Msg("content reloaded")
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				log.Warn().Err(err).Msg("content watcher error")
			}
		}
	}()

	return done, nil
}
