// Package watch re-runs enumeration whenever the analysis snapshot file
// changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/airvair/STAMPWebTool-sub001/internal/engine"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
	"github.com/airvair/STAMPWebTool-sub001/internal/snapshot"
)

// debounceDefault absorbs editor write bursts; most editors fire several
// events per save.
const debounceDefault = 250 * time.Millisecond

// Watcher re-enumerates a snapshot file on change and hands each result
// to the handler.
type Watcher struct {
	path     string
	enum     *engine.Enumerator
	handler  func(*model.EnumerationResult)
	log      *zap.Logger
	debounce time.Duration
}

// New creates a watcher over a snapshot file.
func New(path string, enum *engine.Enumerator, handler func(*model.EnumerationResult), log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		path:     path,
		enum:     enum,
		handler:  handler,
		log:      log,
		debounce: debounceDefault,
	}
}

// Run enumerates once immediately, then blocks watching the snapshot
// file until ctx is cancelled. Snapshot or enumeration errors are logged
// and the watch continues; the next valid save recovers.
func (w *Watcher) Run(ctx context.Context) error {
	w.refresh(ctx)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = fsw.Close() }()

	// Watch the directory: editors replace files by rename, which drops
	// a watch registered on the file itself.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-pending:
			w.refresh(ctx)
		}
	}
}

func (w *Watcher) refresh(ctx context.Context) {
	ac, err := snapshot.Load(w.path)
	if err != nil {
		w.log.Warn("snapshot load failed", zap.String("path", w.path), zap.Error(err))
		return
	}

	res, err := w.enum.Enumerate(ctx, ac)
	if err != nil {
		w.log.Warn("enumeration failed", zap.String("path", w.path), zap.Error(err))
		return
	}

	w.log.Info("enumeration complete",
		zap.String("path", w.path),
		zap.Int("candidates", res.Stats.Total),
		zap.Int("high_risk", res.Stats.HighRisk),
		zap.Duration("took", res.Duration),
	)
	if w.handler != nil {
		w.handler(res)
	}
}
