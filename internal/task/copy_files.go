package task

import (
	"context"
	"strings"

	"github.com/douhashi/buildutils/internal/pipeline"
	"github.com/douhashi/buildutils/internal/project"
)

// CopyFilesName はcopy-filesタスクの名前
const CopyFilesName = "copy-files"

const (
	sourceDir = "src"
	distDir   = "dist"
)

func init() {
	register(CopyFilesName, NewCopyFilesTaskBuilder)
}

// CopyFilesTaskBuilder はstaticFilePatternsにマッチするファイルをdistにコピーするタスクを作る
type CopyFilesTaskBuilder struct {
	opts Options
}

// NewCopyFilesTaskBuilder はCopyFilesTaskBuilderを作成する
func NewCopyFilesTaskBuilder(opts Options) Builder {
	return &CopyFilesTaskBuilder{opts: opts}
}

func (b *CopyFilesTaskBuilder) Name() string { return CopyFilesName }

func (b *CopyFilesTaskBuilder) Description() string {
	return "Copies static files from src to dist"
}

func (b *CopyFilesTaskBuilder) BuildTask(def *project.Definition) (pipeline.Task, error) {
	patterns := def.BuildMetadata.StaticFilePatterns
	if len(patterns) == 0 {
		return pipeline.TaskFunc(func(ctx context.Context) error { return nil }), nil
	}
	if err := requireOrchestrator(CopyFilesName, b.opts); err != nil {
		return nil, err
	}

	orchestrator := b.opts.Orchestrator
	return orchestrator.Src(sourceGlobs(patterns)...).Pipe(orchestrator.Dest(distDir)), nil
}

// sourceGlobs はパターンをsrc配下のグロブに変換する（否定パターンの!は保持）
func sourceGlobs(patterns []string) []string {
	globs := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if strings.HasPrefix(p, "!") {
			globs = append(globs, "!"+sourceDir+"/"+strings.TrimPrefix(p[1:], "./"))
			continue
		}
		globs = append(globs, sourceDir+"/"+strings.TrimPrefix(p, "./"))
	}
	return globs
}
