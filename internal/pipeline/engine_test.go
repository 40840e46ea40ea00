package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(contents), 0644))
}

func TestEngine_SrcPipeDest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/config.json", `{"a":1}`)
	writeFile(t, dir, "src/data/notes.txt", "notes")
	writeFile(t, dir, "src/index.ts", "export {}")

	engine := New(dir, nil)
	var seen []string
	collect := TransformFunc(func(ctx context.Context, files []File) ([]File, error) {
		for _, f := range files {
			seen = append(seen, f.Path)
		}
		return files, nil
	})

	task := engine.Src("src/**/*.json", "src/**/*.txt").Pipe(collect).Pipe(engine.Dest("dist"))
	require.NoError(t, task.Run(context.Background()))

	assert.Equal(t, []string{"config.json", "data/notes.txt"}, seen)

	body, err := os.ReadFile(filepath.Join(dir, "dist", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(body))
	assert.FileExists(t, filepath.Join(dir, "dist", "data", "notes.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "dist", "index.ts"))
}

func TestEngine_SrcMissingBaseIsEmpty(t *testing.T) {
	engine := New(t.TempDir(), nil)
	count := -1
	task := engine.Src("missing/**/*.json").Pipe(TransformFunc(func(ctx context.Context, files []File) ([]File, error) {
		count = len(files)
		return files, nil
	}))

	require.NoError(t, task.Run(context.Background()))
	assert.Equal(t, 0, count)
}

func TestEngine_PipeIsImmutable(t *testing.T) {
	engine := New(t.TempDir(), nil)
	base := engine.Src("**/*")
	failing := TransformFunc(func(ctx context.Context, files []File) ([]File, error) {
		return nil, errors.New("boom")
	})

	_ = base.Pipe(failing)
	assert.NoError(t, base.Run(context.Background()))
}

func TestEngine_TransformErrorStopsStream(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", "{}")
	engine := New(dir, nil)
	boom := errors.New("boom")

	task := engine.Src("*.json").
		Pipe(TransformFunc(func(ctx context.Context, files []File) ([]File, error) { return nil, boom })).
		Pipe(engine.Dest("out"))

	err := task.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestEngine_Series(t *testing.T) {
	engine := New(t.TempDir(), nil)

	t.Run("runs tasks in order", func(t *testing.T) {
		var order []string
		task := engine.Series(
			TaskFunc(func(ctx context.Context) error { order = append(order, "first"); return nil }),
			TaskFunc(func(ctx context.Context) error { order = append(order, "second"); return nil }),
		)
		require.NoError(t, task.Run(context.Background()))
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		boom := errors.New("boom")
		called := false
		task := engine.Series(
			TaskFunc(func(ctx context.Context) error { return boom }),
			TaskFunc(func(ctx context.Context) error { called = true; return nil }),
		)
		assert.ErrorIs(t, task.Run(context.Background()), boom)
		assert.False(t, called)
	})

	t.Run("rejects nil tasks", func(t *testing.T) {
		assert.Error(t, engine.Series(nil).Run(context.Background()))
	})

	t.Run("honors cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		task := engine.Series(TaskFunc(func(ctx context.Context) error { return nil }))
		assert.ErrorIs(t, task.Run(ctx), context.Canceled)
	})
}

func TestEngine_Watch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/a.json", "{}")
	engine := New(dir, nil)

	var runs int32
	task := engine.Watch([]string{"src/**/*.json"}, TaskFunc(func(ctx context.Context) error {
		atomic.AddInt32(&runs, 1)
		return errors.New("watch keeps going")
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- task.Run(ctx) }()

	assert.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(dir, "src", "a.json"), []byte(time.Now().String()), 0644)
		return atomic.LoadInt32(&runs) > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
