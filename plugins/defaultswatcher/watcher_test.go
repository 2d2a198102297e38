package defaultswatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphoma/kaminari/internal/cliconfig"
	"github.com/cyphoma/kaminari/pkg/window"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	t.Cleanup(window.ResetDefaults)

	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "window = 2\n")

	reloaded := make(chan window.Defaults, 10)
	w := New(Config{
		Path:          path,
		Load:          cliconfig.LoadDefaults,
		DebounceDelay: 10 * time.Millisecond,
		OnReload: func(d window.Defaults) {
			select {
			case reloaded <- d:
			default:
			}
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Shutdown(context.Background())

	writeConfig(t, path, "window = 7\ndecade = 1\n")

	select {
	case d := <-reloaded:
		assert.Equal(t, 7, d.Window)
		assert.Equal(t, 1, d.Decade)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	assert.Equal(t, 7, window.CurrentDefaults().Window)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	t.Cleanup(window.ResetDefaults)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, "window = 2\n")

	reloaded := make(chan window.Defaults, 10)
	w := New(Config{
		Path:          path,
		Load:          cliconfig.LoadDefaults,
		DebounceDelay: 10 * time.Millisecond,
		OnReload:      func(d window.Defaults) { reloaded <- d },
	})
	require.NoError(t, w.Start(context.Background()))
	defer w.Shutdown(context.Background())

	writeConfig(t, filepath.Join(dir, "other.toml"), "window = 9\n")

	select {
	case d := <-reloaded:
		t.Errorf("unexpected reload: %+v", d)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_ReloadKeepsDefaultsOnError(t *testing.T) {
	t.Cleanup(window.ResetDefaults)

	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "left = -1\n")

	called := false
	w := New(Config{
		Path:     path,
		Load:     cliconfig.LoadDefaults,
		OnReload: func(window.Defaults) { called = true },
	})

	before := window.CurrentDefaults()
	err := w.Reload()
	assert.ErrorIs(t, err, window.ErrInvalidConfiguration)
	assert.Equal(t, before, window.CurrentDefaults())
	assert.False(t, called, "OnReload called after a failed reload")
}

func TestWatcher_ShutdownWaitsForReload(t *testing.T) {
	t.Cleanup(window.ResetDefaults)

	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "window = 2\n")

	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	w := New(Config{
		Path:          path,
		Load:          cliconfig.LoadDefaults,
		DebounceDelay: 10 * time.Millisecond,
		OnReload: func(window.Defaults) {
			select {
			case entered <- struct{}{}:
			default:
			}
			<-release
		},
	})
	require.NoError(t, w.Start(context.Background()))

	writeConfig(t, path, "window = 3\n")
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		close(release)
		w.Shutdown(context.Background())
		t.Fatal("timed out waiting for reload")
	}

	done := make(chan error, 1)
	go func() { done <- w.Shutdown(context.Background()) }()

	select {
	case err := <-done:
		close(release)
		t.Fatalf("Shutdown returned while a reload was running (err=%v)", err)
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Shutdown did not return after reload finished")
	}
}

func TestWatcher_Start(t *testing.T) {
	t.Run("requires path and loader", func(t *testing.T) {
		assert.Error(t, New(Config{}).Start(context.Background()))
	})

	t.Run("rejects second start", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		w := New(Config{Path: path, Load: cliconfig.LoadDefaults})
		require.NoError(t, w.Start(context.Background()))
		defer w.Shutdown(context.Background())

		assert.ErrorIs(t, w.Start(context.Background()), ErrAlreadyRunning)
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent", "config.toml")
		w := New(Config{Path: path, Load: cliconfig.LoadDefaults})
		if err := w.Start(context.Background()); err == nil {
			w.Shutdown(context.Background())
			t.Error("Start() expected error for missing directory")
		}
	})

	t.Run("shutdown without start", func(t *testing.T) {
		assert.NoError(t, New(Config{}).Shutdown(context.Background()))
	})
}
