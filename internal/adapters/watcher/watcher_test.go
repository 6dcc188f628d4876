package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/scriptmerge/internal/adapters/watcher"
	"go.trai.ch/scriptmerge/internal/core/ports"
	"go.trai.ch/scriptmerge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsChanges(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "scripts"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "dep"), 0o750))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	defer func() { _ = w.Stop() }()

	target := filepath.Join(root, "src", "scripts", "Foo.js")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
		close(events)
	}()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream ended early")
			if ev.Path == target {
				return
			}
		case <-deadline:
			t.Fatal("no event for written file")
		}
	}
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background(), t.TempDir()))
	require.NoError(t, w.Stop())

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events did not end after Stop")
	}
}
