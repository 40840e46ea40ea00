package task

import (
	"fmt"

	"github.com/douhashi/buildutils/internal/pipeline"
	"github.com/douhashi/buildutils/internal/project"
)

// WatchName はwatchタスクの名前
const WatchName = "watch"

// watchGlobs はwatchタスクが監視するファイル
var watchGlobs = []string{"src/**/*"}

func init() {
	register(WatchName, NewWatchTaskBuilder)
}

// WatchTaskBuilder はsrcの変更時にChildrenのタスクを順番に実行するタスクを作る
type WatchTaskBuilder struct {
	opts Options
}

// NewWatchTaskBuilder はWatchTaskBuilderを作成する
func NewWatchTaskBuilder(opts Options) Builder {
	return &WatchTaskBuilder{opts: opts}
}

func (b *WatchTaskBuilder) Name() string { return WatchName }

func (b *WatchTaskBuilder) Description() string {
	return "Rebuilds when source files change"
}

func (b *WatchTaskBuilder) BuildTask(def *project.Definition) (pipeline.Task, error) {
	if err := requireOrchestrator(WatchName, b.opts); err != nil {
		return nil, err
	}

	tasks := make([]pipeline.Task, 0, len(b.opts.Children))
	for _, child := range b.opts.Children {
		t, err := child.BuildTask(def)
		if err != nil {
			return nil, fmt.Errorf("watch: %s: %w", child.Name(), err)
		}
		tasks = append(tasks, t)
	}

	orchestrator := b.opts.Orchestrator
	return orchestrator.Watch(watchGlobs, orchestrator.Series(tasks...)), nil
}
