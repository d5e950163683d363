package inbox

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config configures a Watcher.
type Config struct {
	// Dir is the directory where census files are dropped.
	Dir string

	// Extensions selects which files are validated (default: .txt).
	Extensions []string

	// Debounce is how long a file must stay quiet before it is validated,
	// so that files still being copied are not read half-written
	// (default: 500ms).
	Debounce time.Duration

	// ScanExisting validates files already present when the watcher starts.
	ScanExisting bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dir:        "inbox",
		Extensions: []string{".txt"},
		Debounce:   500 * time.Millisecond,
	}
}

// Handler is called once per settled file.
type Handler func(ctx context.Context, path string) error

// Watcher validates files dropped into a directory.
type Watcher struct {
	watcher  *fsnotify.Watcher
	config   *Config
	debounce *debouncer
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher for config.Dir.
func NewWatcher(config *Config, logger *slog.Logger) (*Watcher, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if len(config.Extensions) == 0 {
		config.Extensions = []string{".txt"}
	}
	if config.Debounce <= 0 {
		config.Debounce = 500 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default().With("component", "inbox.watcher")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	return &Watcher{
		watcher:  fw,
		config:   config,
		debounce: newDebouncer(config.Debounce),
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Watch blocks until ctx is cancelled or Stop is called, calling handle for
// every matching file that is created or rewritten.
func (w *Watcher) Watch(ctx context.Context, handle Handler) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	if err := w.watcher.Add(w.config.Dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", w.config.Dir, err)
	}
	w.logger.Info("inbox watcher started", "dir", w.config.Dir, "debounce_ms", w.config.Debounce.Milliseconds())

	if w.config.ScanExisting {
		if err := w.scan(ctx, handle); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("inbox watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("inbox watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.accepts(event) {
				continue
			}
			path := event.Name
			w.logger.Debug("inbox event", "path", path, "op", event.Op.String())
			w.debounce.trigger(path, func() { w.run(ctx, handle, path) })

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("inbox watcher error", "error", err)
		}
	}
}

// Stop stops a running watcher and releases it.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	running := w.running
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	w.debounce.stop()
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

func (w *Watcher) scan(ctx context.Context, handle Handler) error {
	entries, err := os.ReadDir(w.config.Dir)
	if err != nil {
		return fmt.Errorf("failed to scan %q: %w", w.config.Dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !w.matches(e.Name()) {
			continue
		}
		w.run(ctx, handle, filepath.Join(w.config.Dir, e.Name()))
	}
	return nil
}

func (w *Watcher) run(ctx context.Context, handle Handler, path string) {
	if _, err := os.Stat(path); err != nil {
		// removed or renamed before it settled
		return
	}
	if err := handle(ctx, path); err != nil {
		w.logger.Error("inbox file failed", "path", path, "error", err)
	}
}

func (w *Watcher) accepts(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	return w.matches(filepath.Base(event.Name))
}

func (w *Watcher) matches(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ReportSuffix) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range w.config.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// debouncer delays a callback per key until events for that key stop.
type debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timers   map[string]*time.Timer
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval, timers: make(map[string]*time.Timer)}
}

func (d *debouncer) trigger(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.timers[key] = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		if d.stopped {
			d.mu.Unlock()
			return
		}
		delete(d.timers, key)
		d.mu.Unlock()
		fn()
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
}
