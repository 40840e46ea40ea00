package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/douhashi/buildutils/internal/logger"
)

// Engine はファイルシステム上で動作するOrchestrator実装
type Engine struct {
	baseDir string
	logger  logger.Logger
}

// New は新しいEngineを作成する。グロブとDestのパスはbaseDirからの相対パス
func New(baseDir string, log logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{
		baseDir: baseDir,
		logger:  log.WithFields("component", "pipeline"),
	}
}

// BaseDir はエンジンの基準ディレクトリを返す
func (e *Engine) BaseDir() string {
	return e.baseDir
}

// Series はタスクを順番に実行するタスクを返す。最初のエラーで停止する
func (e *Engine) Series(tasks ...Task) Task {
	return TaskFunc(func(ctx context.Context) error {
		for i, task := range tasks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if task == nil {
				return fmt.Errorf("series: task %d is nil", i)
			}
			if err := task.Run(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

// Src はグロブにマッチするファイルのストリームを返す
func (e *Engine) Src(globs ...string) Stream {
	return &stream{engine: e, globs: globs}
}

// Dest はファイルをdir配下に書き出すTransformを返す
func (e *Engine) Dest(dir string) Transform {
	return TransformFunc(func(ctx context.Context, files []File) ([]File, error) {
		outDir := filepath.Join(e.baseDir, dir)
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			target := filepath.Join(outDir, filepath.FromSlash(f.Path))
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return nil, fmt.Errorf("failed to create directory for %s: %w", target, err)
			}
			mode := f.Mode
			if mode == 0 {
				mode = 0644
			}
			if err := os.WriteFile(target, f.Contents, mode); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", target, err)
			}
		}
		e.logger.Debug("Wrote files", "dir", dir, "count", len(files))
		return files, nil
	})
}

// read はグロブにマッチするファイルを読み込む
func (e *Engine) read(ctx context.Context, patterns []string) ([]File, error) {
	set, err := compileGlobSet(patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid glob: %w", err)
	}

	seen := make(map[string]struct{})
	var files []File
	for _, g := range set.include {
		root := filepath.Join(e.baseDir, filepath.FromSlash(g.base))
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := e.relative(p)
			if err != nil {
				return err
			}
			if _, ok := seen[rel]; ok {
				return nil
			}
			matched, ok := set.match(rel)
			if !ok || matched != g {
				return nil
			}
			file, err := readFile(p, matched.base, rel)
			if err != nil {
				return err
			}
			seen[rel] = struct{}{}
			files = append(files, file)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return filepath.Join(files[i].Base, files[i].Path) < filepath.Join(files[j].Base, files[j].Path)
	})
	return files, nil
}

func (e *Engine) relative(p string) (string, error) {
	rel, err := filepath.Rel(e.baseDir, p)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

func readFile(p, base, rel string) (File, error) {
	info, err := os.Stat(p)
	if err != nil {
		return File{}, err
	}
	contents, err := os.ReadFile(p)
	if err != nil {
		return File{}, fmt.Errorf("failed to read %s: %w", p, err)
	}
	pathInBase := rel
	if base != "." {
		pathInBase, err = filepath.Rel(base, rel)
		if err != nil {
			return File{}, err
		}
	}
	return File{
		Base:     base,
		Path:     filepath.ToSlash(pathInBase),
		Contents: contents,
		Mode:     info.Mode().Perm(),
	}, nil
}

// stream は遅延評価のStream実装
type stream struct {
	engine     *Engine
	globs      []string
	transforms []Transform
}

// Pipe はTransformを追加した新しいストリームを返す
func (s *stream) Pipe(t Transform) Stream {
	transforms := make([]Transform, 0, len(s.transforms)+1)
	transforms = append(transforms, s.transforms...)
	transforms = append(transforms, t)
	return &stream{engine: s.engine, globs: s.globs, transforms: transforms}
}

// Run はファイルを読み込み、Transformを順番に適用する
func (s *stream) Run(ctx context.Context) error {
	files, err := s.engine.read(ctx, s.globs)
	if err != nil {
		return err
	}
	for _, t := range s.transforms {
		files, err = t.Apply(ctx, files)
		if err != nil {
			return err
		}
	}
	return nil
}

var _ Orchestrator = (*Engine)(nil)
