package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch はグロブにマッチするファイルが変更されるたびにtaskを実行するタスクを返す
// 返されたタスクはctxがキャンセルされるまで戻らない
func (e *Engine) Watch(globs []string, task Task) Task {
	return TaskFunc(func(ctx context.Context) error {
		set, err := compileGlobSet(globs)
		if err != nil {
			return fmt.Errorf("invalid glob: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer watcher.Close()

		for _, g := range set.include {
			if err := e.addRecursive(watcher, filepath.Join(e.baseDir, filepath.FromSlash(g.base))); err != nil {
				return err
			}
		}
		e.logger.Info("Watching files", "globs", globs)

		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e.handleEvent(ctx, watcher, set, task, event)
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				e.logger.Warn("Watcher error", "error", err)
			}
		}
	})
}

func (e *Engine) handleEvent(ctx context.Context, watcher *fsnotify.Watcher, set *globSet, task Task, event fsnotify.Event) {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return
	}

	// 新しく作成されたディレクトリも監視対象に加える
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := e.addRecursive(watcher, event.Name); err != nil {
				e.logger.Warn("Failed to watch directory", "dir", event.Name, "error", err)
			}
			return
		}
	}

	rel, err := e.relative(event.Name)
	if err != nil {
		return
	}
	if _, ok := set.match(rel); !ok {
		return
	}

	e.logger.Debug("File changed", "file", rel, "op", event.Op.String())
	// エラーが発生しても監視は継続する
	if err := task.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		e.logger.Error("Watch task failed", "file", rel, "error", err)
	}
}

func (e *Engine) addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}
