package quality

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/agentworks/agentctl/internal/config"
)

// watchDebounce batches filesystem events so a save-all doesn't
// trigger a run per file.
const watchDebounce = 500 * time.Millisecond

// Watch re-runs onChange whenever a file under the targets' source
// directories changes. It blocks until ctx is cancelled.
//
// Editor temp files and dotfiles are ignored. Events are debounced so
// bursts of writes produce a single run.
//
// Parameters:
//   - ctx: Context; cancellation stops the watcher
//   - cfg: The workspace configuration
//   - root: The workspace root directory
//   - targets: Config service keys to watch (empty = all)
//   - onChange: Called after each debounced change batch
//
// Returns:
//   - error: If the watcher cannot be created or no directories exist
func Watch(ctx context.Context, cfg *config.WorkspaceConfig, root string, targets []string, onChange func()) error {
	dirs, err := watchDirs(cfg, root, targets)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, dir := range dirs {
		if err := addRecursive(watcher, dir); err != nil {
			return err
		}
		log.Debug("watching", "dir", dir)
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ignoredPath(event.Name) {
				continue
			}
			// Watch newly created directories too
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addRecursive(watcher, event.Name)
				}
			}
			log.Debug("change detected", "path", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Debug("watch error", "err", err)

		case <-pending:
			onChange()
		}
	}
}

// watchDirs resolves the source directories to watch for the given
// targets, dropping directories that do not exist.
func watchDirs(cfg *config.WorkspaceConfig, root string, targets []string) ([]string, error) {
	if len(targets) == 0 {
		for name := range cfg.Services {
			targets = append(targets, name)
		}
	}

	var dirs []string
	for _, target := range targets {
		svc, ok := cfg.Services[target]
		if !ok {
			return nil, fmt.Errorf("service %q is not configured", target)
		}
		for _, dir := range svc.SourceDirs {
			abs := filepath.Join(root, dir)
			if info, err := os.Stat(abs); err == nil && info.IsDir() {
				dirs = append(dirs, abs)
			}
		}
	}

	if len(dirs) == 0 {
		return nil, fmt.Errorf("no existing source directories to watch; set source_dirs in %s/%s", config.DirName, config.FileName)
	}
	return dirs, nil
}

// addRecursive watches dir and every subdirectory under it.
func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, skip
		}
		if !d.IsDir() {
			return nil
		}
		if ignoredPath(path) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// ignoredPath filters editor noise and dependency trees out of watch
// events.
func ignoredPath(path string) bool {
	base := filepath.Base(path)
	if len(base) > 0 && base[0] == '.' && base != "." {
		return true
	}
	switch base {
	case "node_modules", "__pycache__", "dist", "build":
		return true
	}
	// Editor temp/backup files
	if len(base) > 0 && (base[len(base)-1] == '~' || filepath.Ext(base) == ".swp") {
		return true
	}
	return false
}
