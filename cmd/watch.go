package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/darrylcauldwell/meWeb/internal/config"
)

const debounceDuration = 500 * time.Millisecond

// watch runs the check once, then again after each burst of changes under
// the content directory, until ctx is cancelled or the process is
// interrupted.
func watch(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runCheck(cfg, log); err != nil {
		log.Error().Err(err).Msg("Initial check failed")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addTree(watcher, cfg.ContentDir, log); err != nil {
		return err
	}
	log.Info().Str("dir", cfg.ContentDir).Msg("Watching for changes, press Ctrl+C to stop")

	recheck := make(chan struct{}, 1)
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("Change detected")

			// New subdirectories are not watched automatically.
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := addTree(watcher, event.Name, log); err != nil {
					log.Warn().Err(err).Str("path", event.Name).Msg("Failed to watch new directory")
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDuration, func() {
				select {
				case recheck <- struct{}{}:
				default:
				}
			})

		case <-recheck:
			log.Info().Msg("Re-checking content")
			if err := runCheck(cfg, log); err != nil {
				log.Error().Err(err).Msg("Check failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("Watcher error")
		}
	}
}

func addTree(w *fsnotify.Watcher, root string, log zerolog.Logger) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return fmt.Errorf("content directory '%s' not found", root)
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking directory")
			return nil
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Failed to watch directory")
			}
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
