// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formula

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long a file must stay unchanged before it is
// imported again, so that a save made of several writes runs once.
var Debounce = 100 * time.Millisecond

// Watch calls fun once, and then again after every change of the given
// file, until ctx is done. Calls never overlap. Errors returned by fun
// are logged and do not stop the watch.
func Watch(ctx context.Context, fname string, fun func() error) error {
	abs, err := filepath.Abs(fname)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// editors often save by replacing the file, so the directory is watched
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	run := func() {
		if err := fun(); err != nil {
			slog.Error("import failed", "file", fname, "err", err)
			return
		}
		slog.Info("imported", "file", fname)
	}
	run()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.Debug("file changed", "file", ev.Name, "op", ev.Op)
			if timer == nil {
				timer = time.NewTimer(Debounce)
			} else {
				timer.Reset(Debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			run()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "file", fname, "err", err)
		}
	}
}
