// Package pipeline is a small gulp-like task orchestrator: tasks run in
// series, file streams are read with globs, piped through transforms and
// written out with Dest.
package pipeline

import (
	"context"
	"io/fs"
)

// Task はオーケストレータが実行する単位
type Task interface {
	Run(ctx context.Context) error
}

// TaskFunc は関数をTaskとして扱うためのアダプタ
type TaskFunc func(ctx context.Context) error

// Run はTaskを実行する
func (f TaskFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// File はストリームを流れるファイル
// Pathはグロブのベースディレクトリからの相対パス
type File struct {
	Base     string
	Path     string
	Contents []byte
	Mode     fs.FileMode
}

// Transform はストリーム上のファイル群を変換する
type Transform interface {
	Apply(ctx context.Context, files []File) ([]File, error)
}

// TransformFunc は関数をTransformとして扱うためのアダプタ
type TransformFunc func(ctx context.Context, files []File) ([]File, error)

// Apply はTransformを適用する
func (f TransformFunc) Apply(ctx context.Context, files []File) ([]File, error) {
	return f(ctx, files)
}

// Stream は遅延評価されるファイルストリーム
// Runされた時点でファイルを読み込み、Pipeされた順にTransformを適用する
type Stream interface {
	Task
	Pipe(t Transform) Stream
}

// Orchestrator はビルドタスクを組み立てるAPI
type Orchestrator interface {
	Series(tasks ...Task) Task
	Src(globs ...string) Stream
	Dest(dir string) Transform
	Watch(globs []string, task Task) Task
}
