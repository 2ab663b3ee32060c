package serve

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nurdun/ionic-cli/internal/ui"
)

// debounce coalesces bursts of filesystem events into one reload.
const debounce = 200 * time.Millisecond

// watch broadcasts a reload whenever the asset root changes. fsnotify is
// not recursive, so every subdirectory is registered up front and new
// directories are added as they appear.
func (s *Server) watch(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		ui.Warn("file watching unavailable: " + err.Error())
		return
	}
	defer watcher.Close()

	root := s.project.AssetDir()
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			_ = watcher.Add(path)
		}
		return nil
	})

	var pending *time.Timer
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = watcher.Add(ev.Name)
				}
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename) {
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(debounce, s.Broadcast)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			ui.Warn("watch: " + err.Error())
		}
	}
}
