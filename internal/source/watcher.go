package source

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Watcher holds the latest snapshot of the results file and reloads it
// when the file changes on disk.
type Watcher struct {
	loader   *Loader
	interval time.Duration
	log      *slog.Logger
	stats    *LoadStats

	mu          sync.RWMutex
	current     Snapshot
	lastModTime time.Time
	lastSize    int64

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher and performs the initial synchronous
// load, so Current is valid before Start.
func NewWatcher(loader *Loader, interval time.Duration, log *slog.Logger) *Watcher {
	w := &Watcher{
		loader:   loader,
		interval: interval,
		log:      log,
		stats:    NewLoadStats(time.Hour),
	}
	w.reload()
	return w
}

// Start launches the background refresh loop.
func (w *Watcher) Start(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				if w.changed() {
					w.reload()
				}
			}
		}
	}()
}

// Stop shuts down the refresh loop.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

// Current returns the latest snapshot.
func (w *Watcher) Current() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Stats returns load-latency statistics.
func (w *Watcher) Stats() StatsSnapshot {
	return w.stats.Snapshot()
}

func (w *Watcher) changed() bool {
	info, err := os.Stat(w.loader.path)

	w.mu.RLock()
	defer w.mu.RUnlock()

	if err != nil {
		// File gone; reload once to surface the warning.
		return w.current.Status == StatusOK
	}
	return !info.ModTime().Equal(w.lastModTime) || info.Size() != w.lastSize
}

func (w *Watcher) reload() {
	start := time.Now()
	snap := w.loader.Load()
	w.stats.Record(time.Since(start), snap.Status)

	var modTime time.Time
	var size int64
	if info, err := os.Stat(w.loader.path); err == nil {
		modTime = info.ModTime()
		size = info.Size()
	}

	w.mu.Lock()
	w.current = snap
	w.lastModTime = modTime
	w.lastSize = size
	w.mu.Unlock()

	switch snap.Status {
	case StatusOK:
		w.log.Info("results loaded",
			"path", snap.Path,
			"sections", len(snap.Report.Sections),
			"distributions", len(snap.Report.Distributions),
		)
	case StatusMissing:
		w.log.Warn("results file missing", "path", snap.Path)
	default:
		w.log.Error("results load failed", "path", snap.Path, "message", snap.Message)
	}
}
