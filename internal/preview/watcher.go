package preview

import (
	"context"
	"os"
	"sync"
	"time"
)

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the files to watch.
	Paths []string

	// Interval is the polling interval.
	Interval time.Duration
}

type fileState struct {
	modTime time.Time
	size    int64
	exists  bool
}

// Watcher polls a fixed set of files for changes.
type Watcher struct {
	config   WatcherConfig
	onChange func(path string)
	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	states   map[string]fileState
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval <= 0 {
		config.Interval = 300 * time.Millisecond
	}
	w := &Watcher{
		config: config,
		states: make(map[string]fileState, len(config.Paths)),
	}
	for _, p := range config.Paths {
		w.states[p] = stat(p)
	}
	return w
}

// OnChange sets the callback for file changes. It is called once per
// changed file per poll.
func (w *Watcher) OnChange(fn func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.mu.Unlock()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			w.poll()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// poll compares every path with its last known state and reports the
// ones that differ, including files that appeared or disappeared.
func (w *Watcher) poll() []string {
	w.mu.Lock()
	var changed []string
	for _, p := range w.config.Paths {
		now := stat(p)
		if !now.equal(w.states[p]) {
			w.states[p] = now
			changed = append(changed, p)
		}
	}
	callback := w.onChange
	w.mu.Unlock()

	if callback != nil {
		for _, p := range changed {
			callback(p)
		}
	}
	return changed
}

func (s fileState) equal(o fileState) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

func stat(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{modTime: info.ModTime(), size: info.Size(), exists: true}
}
