// Package taskfactory generates the named build tasks for a project. The
// task builders it uses are resolved as modules, so callers can replace any
// of them through module.Dependencies.
package taskfactory

import (
	"context"
	"errors"
	"fmt"

	"github.com/douhashi/buildutils/internal/module"
	"github.com/douhashi/buildutils/internal/pipeline"
	"github.com/douhashi/buildutils/internal/project"
	"github.com/douhashi/buildutils/internal/task"
)

const (
	// ModulePath はタスクファクトリモジュールのパス
	ModulePath = "src/task-factory"
	// ExportName はモジュールが公開するConstructorの名前
	ExportName = "TaskFactory"
)

// ErrUnknownTask は存在しないタスク名が指定された場合のエラー
var ErrUnknownTask = errors.New("unknown task")

// builderNames はファクトリが使うBuilder
var builderNames = []string{
	task.CleanName,
	task.BuildName,
	task.CopyFilesName,
	task.PackageName,
	task.DeployName,
	task.WatchName,
}

func init() {
	module.Register(ModulePath, Load)
}

// NamedTask は名前付きのタスク
type NamedTask struct {
	Name        string
	Description string
	Task        pipeline.Task
}

// Constructor はTaskFactoryを生成する関数
type Constructor func(opts task.Options) *TaskFactory

// TaskFactory はプロジェクト定義からタスクを生成する
type TaskFactory struct {
	opts  task.Options
	ctors map[string]task.Constructor
}

// Load はBuilderモジュールを依存関係から解決してTaskFactoryのConstructorを公開する
func Load(ctx context.Context, deps module.Dependencies) (module.Exports, error) {
	ctors := make(map[string]task.Constructor, len(builderNames))
	for _, name := range builderNames {
		var fallback module.Exports
		if real, ok := task.Lookup(name); ok {
			fallback = task.Exports(name, real)
		}
		exports, err := deps.Exports(task.ModulePath(name), fallback)
		if err != nil {
			return nil, err
		}
		ctor, err := task.ConstructorFrom(name, exports)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", task.ModulePath(name), err)
		}
		ctors[name] = ctor
	}

	return module.Exports{
		ExportName: Constructor(func(opts task.Options) *TaskFactory {
			return &TaskFactory{opts: opts, ctors: ctors}
		}),
	}, nil
}

// New は実際のBuilderを使うTaskFactoryを作成する
func New(ctx context.Context, opts task.Options) (*TaskFactory, error) {
	exports, err := module.Load(ctx, ModulePath, nil)
	if err != nil {
		return nil, err
	}
	member, err := exports.Member(ExportName)
	if err != nil {
		return nil, err
	}
	return member.(Constructor)(opts), nil
}

// Generate はプロジェクトの種類に応じたタスクを順番に生成する
//
//	全種類: clean, build, copy-files, watch
//	container, aws-microservice: コンテナターゲットごとのpackage
//	aws-microservice: deploy
func (f *TaskFactory) Generate(def *project.Definition) ([]NamedTask, error) {
	var tasks []NamedTask
	add := func(name string, b task.Builder) error {
		t, err := b.BuildTask(def)
		if err != nil {
			return fmt.Errorf("failed to build %s task: %w", name, err)
		}
		tasks = append(tasks, NamedTask{Name: name, Description: b.Description(), Task: t})
		return nil
	}

	build := f.ctors[task.BuildName](f.opts)
	copyFiles := f.ctors[task.CopyFilesName](f.opts)

	if err := add(task.CleanName, f.ctors[task.CleanName](f.opts)); err != nil {
		return nil, err
	}
	if err := add(task.BuildName, build); err != nil {
		return nil, err
	}
	if err := add(task.CopyFilesName, copyFiles); err != nil {
		return nil, err
	}

	if def.HasContainers() {
		for _, target := range def.ContainerTargets() {
			opts := f.opts
			opts.Target = target
			if err := add(packageTaskName(target), f.ctors[task.PackageName](opts)); err != nil {
				return nil, err
			}
		}
	}

	if def.IsAWSMicroservice() {
		if err := add(task.DeployName, f.ctors[task.DeployName](f.opts)); err != nil {
			return nil, err
		}
	}

	watchOpts := f.opts
	watchOpts.Children = []task.Builder{build, copyFiles}
	if err := add(task.WatchName, f.ctors[task.WatchName](watchOpts)); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Select は名前で指定したタスクを指定順に返す
func (f *TaskFactory) Select(def *project.Definition, names ...string) ([]NamedTask, error) {
	all, err := f.Generate(def)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]NamedTask, len(all))
	for _, t := range all {
		byName[t.Name] = t
	}

	selected := make([]NamedTask, 0, len(names))
	for _, name := range names {
		t, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTask, name)
		}
		selected = append(selected, t)
	}
	return selected, nil
}

// Run は名前で指定したタスクを順番に実行する
func (f *TaskFactory) Run(ctx context.Context, def *project.Definition, names ...string) error {
	selected, err := f.Select(def, names...)
	if err != nil {
		return err
	}
	tasks := make([]pipeline.Task, 0, len(selected))
	for _, t := range selected {
		tasks = append(tasks, t.Task)
	}

	if f.opts.Orchestrator != nil {
		return f.opts.Orchestrator.Series(tasks...).Run(ctx)
	}
	for _, t := range tasks {
		if err := t.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

func packageTaskName(target string) string {
	if target == task.DefaultTarget {
		return task.PackageName
	}
	return task.PackageName + "-" + target
}
