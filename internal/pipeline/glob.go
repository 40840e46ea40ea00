package pipeline

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// glob はgulpスタイルのグロブ（**, *, ?, [...], {a,b}）
type glob struct {
	pattern string
	base    string
}

func compileGlob(pattern string) (*glob, error) {
	pattern = path.Clean(strings.TrimPrefix(pattern, "./"))
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %s", doublestar.ErrBadPattern, pattern)
	}
	base, _ := doublestar.SplitPattern(pattern)
	return &glob{
		pattern: pattern,
		base:    base,
	}, nil
}

// match はスラッシュ区切りの相対パスがパターンにマッチするか判定する
// パターンはcompileGlobで検証済みのためエラーは発生しない
func (g *glob) match(name string) bool {
	ok, _ := doublestar.Match(g.pattern, name)
	return ok
}

// globSet は肯定パターンと否定パターン（!で始まる）の組
type globSet struct {
	include []*glob
	exclude []*glob
}

func compileGlobSet(patterns []string) (*globSet, error) {
	set := &globSet{}
	for _, p := range patterns {
		if strings.HasPrefix(p, "!") {
			g, err := compileGlob(p[1:])
			if err != nil {
				return nil, err
			}
			set.exclude = append(set.exclude, g)
			continue
		}
		g, err := compileGlob(p)
		if err != nil {
			return nil, err
		}
		set.include = append(set.include, g)
	}
	return set, nil
}

// match は最初にマッチした肯定パターンを返す
func (s *globSet) match(name string) (*glob, bool) {
	for _, g := range s.exclude {
		if g.match(name) {
			return nil, false
		}
	}
	for _, g := range s.include {
		if g.match(name) {
			return g, true
		}
	}
	return nil, false
}
