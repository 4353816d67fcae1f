// Package watch regenerates distribution headers when the manifest or
// build profile changes on disk. Filesystem events feed a debounce
// window so editor write bursts collapse into a single regeneration
// pass, and a rate limiter caps pass frequency if something rewrites
// the watched files in a loop.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lumenworks/visgen/errors"
)

const (
	// DefaultDebounce is how long after the last change an engine waits
	// before running a pass.
	DefaultDebounce = 500 * time.Millisecond

	// DefaultPassesPerMinute caps regeneration frequency. Passes beyond
	// the cap are dropped, not queued.
	DefaultPassesPerMinute = 30
)

// PassFunc runs one regeneration pass. The run ID ties log lines from
// the same pass together. A returned error is logged and the engine
// keeps watching.
type PassFunc func(runID string) error

// Engine watches a set of files and triggers regeneration passes.
type Engine struct {
	run     PassFunc
	logger  *zap.SugaredLogger
	watcher *fsnotify.Watcher
	limiter *rate.Limiter

	paths   []string
	targets map[string]struct{}

	debouncePeriod time.Duration

	mu     sync.Mutex
	passes int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine builds an engine watching the given files. The parent
// directory of each file is registered with fsnotify so atomic saves
// (write to temp, rename over) still produce events, and events for
// unrelated files in those directories are filtered out.
func NewEngine(paths []string, run PassFunc, logger *zap.SugaredLogger) (*Engine, error) {
	if len(paths) == 0 {
		return nil, errors.New("no files to watch")
	}
	if run == nil {
		return nil, errors.New("nil pass function")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating filesystem watcher")
	}

	targets := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "resolving %s", path)
		}
		targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "watching %s", dir)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Engine{
		run:            run,
		logger:         logger,
		watcher:        watcher,
		limiter:        rate.NewLimiter(rate.Limit(float64(DefaultPassesPerMinute)/60.0), 1),
		paths:          paths,
		targets:        targets,
		debouncePeriod: DefaultDebounce,
		ctx:            ctx,
		cancel:         cancel,
	}, nil
}

// Start begins watching. It returns immediately; passes run on the
// engine's own goroutine.
func (e *Engine) Start() {
	e.wg.Add(1)
	go e.loop()
	e.logger.Infow("Watch engine started",
		"files", e.paths,
		"debounce", e.debouncePeriod)
}

// Stop shuts the engine down and waits for any in-flight pass.
func (e *Engine) Stop() error {
	e.cancel()
	e.wg.Wait()
	err := e.watcher.Close()
	e.logger.Info("Watch engine stopped")
	return err
}

// PassCount reports how many passes have run.
func (e *Engine) PassCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.passes
}

// loop handles filesystem events and fires debounced passes. Running
// passes on the loop goroutine keeps Stop simple: cancel, then wait.
func (e *Engine) loop() {
	defer e.wg.Done()

	debounce := time.NewTimer(e.debouncePeriod)
	if !debounce.Stop() {
		<-debounce.C
	}
	trigger := ""

	for {
		select {
		case <-e.ctx.Done():
			return

		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			if !e.relevant(event) {
				continue
			}
			e.logger.Infow("Configuration change detected",
				"file", event.Name,
				"op", event.Op.String())
			trigger = event.Name
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(e.debouncePeriod)

		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			e.logger.Warnw("Watch error", "error", err)

		case <-debounce.C:
			e.pass(trigger)
		}
	}
}

// relevant reports whether an event is a write or create on one of the
// watched files.
func (e *Engine) relevant(event fsnotify.Event) bool {
	if event.Op&fsnotify.Write != fsnotify.Write && event.Op&fsnotify.Create != fsnotify.Create {
		return false
	}
	_, ok := e.targets[filepath.Clean(event.Name)]
	return ok
}

func (e *Engine) pass(trigger string) {
	if !e.limiter.Allow() {
		e.logger.Warnw("Regeneration pass rate limited", "trigger", trigger)
		return
	}

	e.mu.Lock()
	e.passes++
	e.mu.Unlock()

	runID := uuid.New().String()
	start := time.Now()
	e.logger.Infow("Regeneration pass starting",
		"run_id", runID,
		"trigger", trigger)

	if err := e.run(runID); err != nil {
		e.logger.Errorw("Regeneration pass failed",
			"run_id", runID,
			"error", err,
			"duration", time.Since(start))
		return
	}

	e.logger.Infow("Regeneration pass complete",
		"run_id", runID,
		"duration", time.Since(start))
}
