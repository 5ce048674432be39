package server

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for changes to settle.
const DefaultDebounce = 300 * time.Millisecond

// Watcher calls OnChange after relevant files below Root change. Bursts of
// events within Debounce collapse into one call, and calls never overlap.
type Watcher struct {
	Root  string
	Match func(path string) bool
	// Files are watched in addition to Root and always count as relevant,
	// e.g. a config file kept outside the input tree.
	Files    []string
	OnChange func(ctx context.Context) error
	Debounce time.Duration
	Logger   *log.Logger

	mu sync.Mutex
}

// MatchSources selects snippet files and the config file.
func MatchSources(configName string) func(string) bool {
	return func(path string) bool {
		base := filepath.Base(path)
		return strings.HasSuffix(base, ".code-snippets") || base == configName
	}
}

// Run watches until ctx is cancelled. New subdirectories are picked up as
// they appear.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := w.addTree(fw, w.Root); err != nil {
		return err
	}
	extra, err := w.addFiles(fw)
	if err != nil {
		return err
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addTree(fw, ev.Name); err != nil {
						w.Logger.Warn("watch new directory", "path", ev.Name, "err", err)
					}
					continue
				}
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !extra[filepath.Clean(ev.Name)] && w.Match != nil && !w.Match(ev.Name) {
				continue
			}
			w.Logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			pending = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Error("watcher error", "err", err)

		case <-pending:
			pending = nil
			w.fire(ctx)
		}
	}
}

func (w *Watcher) fire(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.OnChange(ctx); err != nil {
		w.Logger.Error("rebuild failed", "err", err)
	}
}

// addFiles watches the directory of each extra file, since editors often
// replace a file instead of writing it. It returns the cleaned paths.
func (w *Watcher) addFiles(fw *fsnotify.Watcher) (map[string]bool, error) {
	files := make(map[string]bool, len(w.Files))
	for _, f := range w.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, err
		}
		files[abs] = true
		if err := fw.Add(filepath.Dir(abs)); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// addTree adds dir and all its subdirectories. Hidden directories are skipped.
func (w *Watcher) addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}
