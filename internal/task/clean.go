package task

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/douhashi/buildutils/internal/pipeline"
	"github.com/douhashi/buildutils/internal/project"
)

// CleanName はcleanタスクの名前
const CleanName = "clean"

// cleanDirs はcleanタスクが削除するディレクトリ
var cleanDirs = []string{"dist", "coverage", ".tscache"}

func init() {
	register(CleanName, NewCleanTaskBuilder)
}

// CleanTaskBuilder はビルド成果物を削除するタスクを作る
type CleanTaskBuilder struct {
	opts Options
}

// NewCleanTaskBuilder はCleanTaskBuilderを作成する
func NewCleanTaskBuilder(opts Options) Builder {
	return &CleanTaskBuilder{opts: opts}
}

func (b *CleanTaskBuilder) Name() string { return CleanName }

func (b *CleanTaskBuilder) Description() string {
	return "Removes build, coverage and cache directories"
}

func (b *CleanTaskBuilder) BuildTask(def *project.Definition) (pipeline.Task, error) {
	out := consoleOf(b.opts)
	workDir := b.opts.WorkDir
	return pipeline.TaskFunc(func(ctx context.Context) error {
		for _, dir := range cleanDirs {
			if err := ctx.Err(); err != nil {
				return err
			}
			target := filepath.Join(workDir, dir)
			out.Info("Cleaning", target)
			if err := os.RemoveAll(target); err != nil {
				return fmt.Errorf("failed to remove %s: %w", target, err)
			}
		}
		return nil
	}), nil
}
