// Package watch implements the directory-watch automation surface:
// whenever a batch file appears or changes in an operations directory, it
// is applied to a configured target document and the result written back
// atomically. Adapted from internal/beancore/watcher.go's debounce-and-
// fan-out pattern over fsnotify, collapsed to a single target document
// instead of a whole tracked corpus.
package watch

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/mdsplice/mdsplice/internal/atomicfile"
	"github.com/mdsplice/mdsplice/internal/docsplice"
	"github.com/mdsplice/mdsplice/internal/transaction"
)

// debounceDelay matches the teacher's own debounce window for batching
// rapid-fire filesystem events into one apply.
const debounceDelay = 100 * time.Millisecond

// Watcher applies batch files dropped into a directory to a single target
// Markdown document.
type Watcher struct {
	TargetPath string
	OpsDir     string
	Log        *slog.Logger

	done chan struct{}
}

// New constructs a Watcher. log may be nil, in which case slog.Default()
// is used.
func New(targetPath, opsDir string, log *slog.Logger) *Watcher {
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{TargetPath: targetPath, OpsDir: opsDir, Log: log, done: make(chan struct{})}
}

// Run watches w.OpsDir until stopped, applying each batch file it sees to
// w.TargetPath. Blocks until Stop is called or the watcher errors.
func (w *Watcher) Run() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.OpsDir); err != nil {
		return fmt.Errorf("watching %s: %w", w.OpsDir, err)
	}

	var debounceTimer *time.Timer
	var pendingMu sync.Mutex
	pending := make(map[string]struct{})

	flush := func() {
		pendingMu.Lock()
		paths := pending
		pending = make(map[string]struct{})
		pendingMu.Unlock()

		for path := range paths {
			if err := w.applyFile(path); err != nil {
				w.Log.Error("apply failed", "path", path, "error", err)
				continue
			}
			w.Log.Info("applied batch", "path", path, "target", w.TargetPath)
		}
	}

	for {
		select {
		case <-w.done:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isBatchFile(event.Name) {
				continue
			}
			relevant := event.Op&fsnotify.Create != 0 || event.Op&fsnotify.Write != 0
			if !relevant {
				continue
			}

			pendingMu.Lock()
			pending[event.Name] = struct{}{}
			pendingMu.Unlock()

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, flush)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.Log.Error("watcher error", "error", err)
		}
	}
}

// Stop ends the watch loop.
func (w *Watcher) Stop() {
	close(w.done)
}

func isBatchFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml" || ext == ".json"
}

func (w *Watcher) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var ops []transaction.Operation
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &ops)
	} else {
		err = yaml.Unmarshal(data, &ops)
	}
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	src, err := os.ReadFile(w.TargetPath)
	if err != nil {
		return fmt.Errorf("reading target %s: %w", w.TargetPath, err)
	}

	doc, err := docsplice.Parse(string(src))
	if err != nil {
		return fmt.Errorf("parsing target: %w", err)
	}

	ambiguous, err := doc.Apply(ops)
	if err != nil {
		return fmt.Errorf("applying %s: %w", path, err)
	}
	if ambiguous {
		w.Log.Warn("ambiguous match while applying batch", "path", path)
	}

	rendered, err := doc.Render()
	if err != nil {
		return fmt.Errorf("rendering target: %w", err)
	}

	info, err := os.Stat(w.TargetPath)
	perm := os.FileMode(0o644)
	if err == nil {
		perm = info.Mode().Perm()
	}
	return atomicfile.Write(w.TargetPath, []byte(rendered), perm)
}
