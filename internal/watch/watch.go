// Package watch re-renders a preset whenever its file changes. A change that
// settles while a render is still running cancels that render, so the last
// write always wins.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"flavor-gradient/internal/logger"
	"flavor-gradient/internal/preset"
)

// DefaultDebounce coalesces the burst of events most editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// RenderFunc renders one preset. It must return promptly once ctx is done.
type RenderFunc func(ctx context.Context, p preset.Preset) error

// Options configures a Watcher.
type Options struct {
	Debounce time.Duration
	Logger   *logger.Logger
}

// Watcher follows a single preset file.
type Watcher struct {
	path     string
	render   RenderFunc
	debounce time.Duration
	log      *logger.Logger

	mu      sync.Mutex
	running bool
}

// New creates a watcher for the preset at path.
func New(path string, render RenderFunc, opts Options) (*Watcher, error) {
	if render == nil {
		return nil, errors.New("watch: nil render func")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve preset path: %w", err)
	}
	if _, err := preset.FormatFor(abs); err != nil {
		return nil, err
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Watcher{
		path:     abs,
		render:   render,
		debounce: debounce,
		log:      log.WithFields(map[string]any{"preset": abs}),
	}, nil
}

// Path is the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run renders the preset once and then again after every settled change,
// until ctx is done. The in-flight render is cancelled and awaited before
// Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return errors.New("watch: already running")
	}
	w.running = true
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the directory: editors often replace the file instead of
	// writing it in place, which drops a watch on the file itself.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	settled := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	current := w.start(ctx, nil)
	defer func() { current.stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug(fmt.Sprintf("preset event %s", event.Op))
			if timer == nil {
				timer = time.AfterFunc(w.debounce, func() {
					select {
					case settled <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "file watcher error")

		case <-settled:
			current = w.start(ctx, current)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}

// job is one render in flight.
type job struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// stop cancels the job and waits for it to exit. Safe on nil.
func (j *job) stop() {
	if j == nil {
		return
	}
	j.cancel()
	<-j.done
}

// start loads the preset and, if it is usable, replaces prev with a render
// of it. A preset that fails to load leaves prev running.
func (w *Watcher) start(ctx context.Context, prev *job) *job {
	p, err := preset.Load(w.path)
	if err != nil {
		w.log.Error(err, "preset reload failed")
		return prev
	}
	for _, note := range p.Adjustments() {
		w.log.Warn("clamped " + note)
	}

	prev.stop()

	renderCtx, cancel := context.WithCancel(ctx)
	j := &job{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(j.done)
		defer cancel()

		began := time.Now()
		err := w.render(renderCtx, p)
		switch {
		case errors.Is(err, context.Canceled):
			w.log.Debug("render superseded")
		case err != nil:
			w.log.Error(err, "render failed")
		default:
			w.log.WithFields(map[string]any{"elapsed": time.Since(began).String()}).Info("render complete")
		}
	}()
	return j
}
