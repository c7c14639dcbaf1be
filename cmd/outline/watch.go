// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"cogentcore.org/outline/base/errors"
)

// watchDelay is how long to wait after a change to the watched file
// before rendering, so that the several events of one save are merged.
var watchDelay = 100 * time.Millisecond

// watch calls render whenever the given file is written or created,
// until the context is done. The directory of the file is watched
// rather than the file itself, so that editors that save by replacing
// the file are handled. Errors from render are logged.
func watch(ctx context.Context, file string, render func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Info("watching", "file", file)

	timer := time.NewTimer(watchDelay)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("file changed", "file", file, "op", event.Op)
				timer.Reset(watchDelay)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching file", "file", file, "err", err)
		case <-timer.C:
			errors.Log(render())
		}
	}
}
