package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/NickyBoy89/ifacereport/config"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// watchReport prints the report once, and then again every time the source
// file is written to, until the context is cancelled
//
// The directory is watched instead of the file itself, since many editors save
// by writing a new file and renaming it over the old one
func watchReport(ctx context.Context, conf config.Config, out io.Writer) error {
	target, err := filepath.Abs(conf.Source)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	rerun := func() {
		if err := runReport(ctx, conf, out); err != nil {
			log.WithError(err).Error("Report failed")
		}
	}

	rerun()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if changesSource(event, target) {
				log.WithField("event", event.Op.String()).Debug("Source file changed")
				rerun()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("Watcher error")
		}
	}
}

// changesSource reports whether the event modifies the watched source file
func changesSource(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
