package task

import (
	"context"
	"fmt"

	"github.com/douhashi/buildutils/internal/command"
	"github.com/douhashi/buildutils/internal/pipeline"
	"github.com/douhashi/buildutils/internal/project"
)

// BuildName はbuildタスクの名前
const BuildName = "build"

func init() {
	register(BuildName, NewBuildTaskBuilder)
}

// BuildTaskBuilder はソースをコンパイルするタスクを作る
type BuildTaskBuilder struct {
	opts Options
}

// NewBuildTaskBuilder はBuildTaskBuilderを作成する
func NewBuildTaskBuilder(opts Options) Builder {
	return &BuildTaskBuilder{opts: opts}
}

func (b *BuildTaskBuilder) Name() string { return BuildName }

func (b *BuildTaskBuilder) Description() string {
	return "Compiles the project sources"
}

func (b *BuildTaskBuilder) BuildTask(def *project.Definition) (pipeline.Task, error) {
	out := consoleOf(b.opts)

	switch def.BuildMetadata.Language {
	case project.LanguageJS:
		// JavaScriptはコンパイル不要。静的ファイルと同様にcopy-filesで扱う
		return pipeline.TaskFunc(func(ctx context.Context) error {
			out.Info("Nothing to compile for", def.Name)
			return nil
		}), nil
	case project.LanguageTS:
		if err := requireRunner(BuildName, b.opts); err != nil {
			return nil, err
		}
		runner := b.opts.Runner
		cmd := command.Command{
			Executable: "tsc",
			Args:       []string{"--project", "tsconfig.json"},
			WorkDir:    b.opts.WorkDir,
		}
		return pipeline.TaskFunc(func(ctx context.Context) error {
			out.Info("Compiling", def.Name)
			output, err := runner.Run(ctx, cmd)
			if output != "" {
				out.Log(output)
			}
			return err
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, def.BuildMetadata.Language)
	}
}
