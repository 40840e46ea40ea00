// Package module is a registry of loadable modules and the dependency map
// handed to them. A module resolves its collaborators through Dependencies,
// so a caller can swap any of them (tests pass mocks) without touching the
// module's code.
package module

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// SourceRoot はプロジェクトのベースディレクトリから解決されるパスの接頭辞
const SourceRoot = "src/"

var (
	// ErrModuleNotFound はモジュールが登録されていない場合のエラー
	ErrModuleNotFound = errors.New("module not found")
	// ErrMemberNotFound はモジュールに指定したメンバーが存在しない場合のエラー
	ErrMemberNotFound = errors.New("module member not found")
)

// Exports はモジュールが公開する名前付きの値
type Exports map[string]interface{}

// Member は名前付きの値を返す
func (e Exports) Member(name string) (interface{}, error) {
	v, ok := e[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, name)
	}
	return v, nil
}

// Loader はモジュールを読み込んでExportsを返す
type Loader func(ctx context.Context, deps Dependencies) (Exports, error)

// Dependencies は解決済みのパスから差し替える値へのマップ
type Dependencies map[string]interface{}

// Resolve はpathに差し替えが登録されていればそれを、なければfallbackを返す
func (d Dependencies) Resolve(path string, fallback interface{}) interface{} {
	if v, ok := d[ResolvePath(path)]; ok {
		return v
	}
	return fallback
}

// Exports はpathの差し替えをExportsとして返す
// 差し替えがExports以外の型の場合はエラー
func (d Dependencies) Exports(path string, fallback Exports) (Exports, error) {
	v, ok := d[ResolvePath(path)]
	if !ok {
		return fallback, nil
	}
	switch exports := v.(type) {
	case Exports:
		return exports, nil
	case map[string]interface{}:
		return Exports(exports), nil
	default:
		return nil, fmt.Errorf("dependency %s: expected module exports, got %T", path, v)
	}
}

var baseDir = func() string {
	// internal/module/module.go から2階層上がプロジェクトのベース
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}()

// BaseDir はsrc/から始まるパスを解決する基準ディレクトリ
func BaseDir() string {
	return baseDir
}

// ResolvePath はsrc/で始まるパスをBaseDirからの絶対パスにする
// それ以外のパスはそのまま返す
func ResolvePath(path string) string {
	if strings.HasPrefix(path, SourceRoot) {
		return filepath.Join(baseDir, filepath.FromSlash(path))
	}
	return path
}

// Registry はモジュールパスからLoaderへのマップ
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
}

// NewRegistry は空のRegistryを作成する
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[string]Loader)}
}

// Register はモジュールを登録する。同じパスの登録は上書きする
func (r *Registry) Register(path string, loader Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[ResolvePath(path)] = loader
}

// Load はモジュールを依存関係を注入して読み込む
func (r *Registry) Load(ctx context.Context, path string, deps Dependencies) (Exports, error) {
	r.mu.RLock()
	loader, ok := r.loaders[ResolvePath(path)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, path)
	}
	if deps == nil {
		deps = Dependencies{}
	}
	return loader(ctx, deps)
}

// Paths は登録済みのモジュールパスを返す
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := make([]string, 0, len(r.loaders))
	for p := range r.loaders {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Default はパッケージのinitで登録されるモジュールのRegistry
var Default = NewRegistry()

// Register はDefaultにモジュールを登録する
func Register(path string, loader Loader) {
	Default.Register(path, loader)
}

// Load はDefaultからモジュールを読み込む
func Load(ctx context.Context, path string, deps Dependencies) (Exports, error) {
	return Default.Load(ctx, path, deps)
}
