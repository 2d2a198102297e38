// Package defaultswatcher keeps the process-wide window defaults in sync
// with a TOML config file. When the file is written, the watcher reloads it,
// installs the new defaults with window.SetDefaults, and notifies a callback.
package defaultswatcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cyphoma/kaminari/pkg/log"
	"github.com/cyphoma/kaminari/pkg/window"
)

// ErrAlreadyRunning is returned when Start is called twice.
var ErrAlreadyRunning = errors.New("defaultswatcher: already running")

// Loader reads window defaults from the file at path.
type Loader func(path string) (window.Defaults, error)

// Config holds configuration options for the watcher.
type Config struct {
	// Path is the config file to watch. Required.
	Path string

	// Load parses the file. Required.
	Load Loader

	// OnReload is called after new defaults were installed. Optional.
	OnReload func(window.Defaults)

	// DebounceDelay is the delay to wait after a file change before reloading.
	// Default: 100 milliseconds
	DebounceDelay time.Duration

	// Logger receives reload and error messages. Default: no-op.
	Logger log.Logger
}

// Watcher reloads window defaults when its file changes.
type Watcher struct {
	mu sync.Mutex

	path          string
	load          Loader
	onReload      func(window.Defaults)
	debounceDelay time.Duration
	logger        log.Logger

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
}

// New creates a watcher. It does not touch the file system until Start.
func New(cfg Config) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:          cfg.Path,
		load:          cfg.Load,
		onReload:      cfg.OnReload,
		debounceDelay: cfg.DebounceDelay,
		logger:        cfg.Logger,
	}
}

// Start begins watching. The directory containing Path is watched rather
// than the file itself so that editors replacing the file are noticed.
func (w *Watcher) Start(ctx context.Context) error {
	if w.path == "" || w.load == nil {
		return fmt.Errorf("defaultswatcher: path and loader are required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return ErrAlreadyRunning
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.logger.Info("defaults watcher started", log.String("path", w.path))

	w.wg.Add(1)
	go w.watchLoop(watchCtx, fsw)
	return nil
}

// Shutdown stops the watcher and waits for its goroutine and any reload in
// progress to finish. No reload starts after Shutdown returns.
func (w *Watcher) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Watcher) watchLoop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("defaults watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) debounceReload(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		// Registered under mu so that Shutdown either sees this reload in the
		// WaitGroup or has already cleared cancel.
		w.mu.Lock()
		if w.cancel == nil || ctx.Err() != nil {
			w.mu.Unlock()
			return
		}
		w.wg.Add(1)
		w.mu.Unlock()

		defer w.wg.Done()
		w.Reload()
	})
}

// Reload loads the file once and installs its defaults. A file that fails
// to load or validate leaves the current defaults in place.
func (w *Watcher) Reload() error {
	d, err := w.load(w.path)
	if err != nil {
		w.logger.Warn("defaults reload failed; keeping previous defaults",
			log.String("path", w.path), log.Err(err))
		return err
	}
	if err := window.SetDefaults(d); err != nil {
		w.logger.Warn("defaults rejected; keeping previous defaults",
			log.String("path", w.path), log.Err(err))
		return err
	}

	w.logger.Info("defaults reloaded",
		log.String("path", w.path),
		log.Int("window", d.Window),
		log.Int("outer_window", d.OuterWindow),
		log.Int("decade", d.Decade),
	)
	if w.onReload != nil {
		w.onReload(d)
	}
	return nil
}
