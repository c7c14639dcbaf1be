// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "outline.json")
	require.NoError(t, os.WriteFile(fn, []byte(`{"headings":[],"items":[]}`), 0666))

	ctx, cancel := context.WithCancel(context.Background())
	rendered := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, fn, func() error {
			rendered <- struct{}{}
			return nil
		})
	}()

	// the watcher starts asynchronously, so keep writing until it is seen
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(3 * watchDelay)
	defer tick.Stop()
loop:
	for {
		select {
		case <-rendered:
			break loop
		case <-tick.C:
			require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0666))
			require.NoError(t, os.WriteFile(fn, []byte(`{"headings":["A"],"items":[]}`), 0666))
		case <-deadline:
			t.Fatal("file change was not seen")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := watch(context.Background(), filepath.Join(t.TempDir(), "no", "such.json"), func() error { return nil })
	assert.Error(t, err)
}
