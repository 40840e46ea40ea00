// Package task holds the task builders. A task builder turns a project
// definition into a runnable pipeline task. Every builder is published as a
// module under src/task-builders/<name>-task-builder so the task factory can
// receive it (or a replacement) through module.Dependencies.
package task

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/douhashi/buildutils/internal/command"
	"github.com/douhashi/buildutils/internal/console"
	"github.com/douhashi/buildutils/internal/module"
	"github.com/douhashi/buildutils/internal/pipeline"
	"github.com/douhashi/buildutils/internal/project"
)

var (
	// ErrUnsupportedLanguage はビルドできない言語が指定された場合のエラー
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrUnknownTarget はコンテナターゲットが定義されていない場合のエラー
	ErrUnknownTarget = errors.New("unknown container target")
	// ErrMissingCollaborator はOptionsに必要な依存が設定されていない場合のエラー
	ErrMissingCollaborator = errors.New("missing collaborator")
)

// Builder はプロジェクト定義からタスクを組み立てる
type Builder interface {
	Name() string
	Description() string
	BuildTask(def *project.Definition) (pipeline.Task, error)
}

// Options はBuilderの生成に使う依存と設定
type Options struct {
	Orchestrator pipeline.Orchestrator
	Runner       command.Runner
	Console      console.Console
	// WorkDir はプロジェクトのルートディレクトリ
	WorkDir string
	// Target はpackageタスクのコンテナターゲット
	Target string
	// Children はwatchタスクが変更時に実行するBuilder
	Children []Builder
}

// Constructor はBuilderを生成する関数
type Constructor func(opts Options) Builder

var (
	catalogMu sync.RWMutex
	catalog   = map[string]Constructor{}
)

// register はBuilderをカタログとモジュールレジストリに登録する
func register(name string, ctor Constructor) {
	catalogMu.Lock()
	catalog[name] = ctor
	catalogMu.Unlock()

	exports := Exports(name, ctor)
	module.Register(ModulePath(name), func(ctx context.Context, deps module.Dependencies) (module.Exports, error) {
		return exports, nil
	})
}

// Exports はBuilderモジュールが公開する値（クラス名 -> Constructor）
func Exports(name string, ctor Constructor) module.Exports {
	return module.Exports{ClassName(name): ctor}
}

// Names は登録済みのBuilder名をソートして返す
func Names() []string {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup は登録済みのConstructorを返す
func Lookup(name string) (Constructor, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	ctor, ok := catalog[name]
	return ctor, ok
}

// ConstructorFrom はモジュールのExportsからConstructorを取り出す
func ConstructorFrom(name string, exports module.Exports) (Constructor, error) {
	member, err := exports.Member(ClassName(name))
	if err != nil {
		return nil, err
	}
	switch ctor := member.(type) {
	case Constructor:
		return ctor, nil
	case func(Options) Builder:
		return ctor, nil
	default:
		return nil, fmt.Errorf("%s: expected task.Constructor, got %T", ClassName(name), member)
	}
}

func requireOrchestrator(name string, opts Options) error {
	if opts.Orchestrator == nil {
		return fmt.Errorf("%w: %s task needs an orchestrator", ErrMissingCollaborator, name)
	}
	return nil
}

func requireRunner(name string, opts Options) error {
	if opts.Runner == nil {
		return fmt.Errorf("%w: %s task needs a command runner", ErrMissingCollaborator, name)
	}
	return nil
}

// consoleOf はOptionsのConsoleを返す。未設定なら標準出力
func consoleOf(opts Options) console.Console {
	if opts.Console == nil {
		return console.Default()
	}
	return opts.Console
}
