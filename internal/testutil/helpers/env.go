package helpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/douhashi/buildutils/internal/project"
)

// EnvGuard manages environment variables during tests.
// It saves the original values and restores them when the test finishes.
type EnvGuard struct {
	t        testing.TB
	original map[string]*string
}

// NewEnvGuard creates a new EnvGuard. Restore is registered with t.Cleanup.
func NewEnvGuard(t testing.TB) *EnvGuard {
	t.Helper()
	g := &EnvGuard{
		t:        t,
		original: make(map[string]*string),
	}
	t.Cleanup(g.Restore)
	return g
}

// Set sets an environment variable and saves its original value.
func (g *EnvGuard) Set(key, value string) {
	g.t.Helper()
	g.save(key)
	if err := os.Setenv(key, value); err != nil {
		g.t.Fatalf("failed to set env var %s: %v", key, err)
	}
}

// Unset removes an environment variable and saves its original value.
func (g *EnvGuard) Unset(key string) {
	g.t.Helper()
	g.save(key)
	if err := os.Unsetenv(key); err != nil {
		g.t.Fatalf("failed to unset env var %s: %v", key, err)
	}
}

// Restore restores all environment variables to their original values.
// A variable that was not set before is unset again.
func (g *EnvGuard) Restore() {
	for key, value := range g.original {
		if value == nil {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, *value)
		}
	}
	g.original = make(map[string]*string)
}

func (g *EnvGuard) save(key string) {
	if _, saved := g.original[key]; saved {
		return
	}
	if value, ok := os.LookupEnv(key); ok {
		g.original[key] = &value
	} else {
		g.original[key] = nil
	}
}

// SetRequiredEnv sets every variable in def's requiredEnv to a placeholder
// value (<NAME>_value) and returns the guard that restores them.
func SetRequiredEnv(t testing.TB, def *project.Definition) *EnvGuard {
	t.Helper()
	g := NewEnvGuard(t)
	for _, name := range def.BuildMetadata.RequiredEnv {
		g.Set(name, strings.ToLower(name)+"_value")
	}
	return g
}

// UnsetRequiredEnv unsets every variable in def's requiredEnv
func UnsetRequiredEnv(t testing.TB, def *project.Definition) *EnvGuard {
	t.Helper()
	g := NewEnvGuard(t)
	for _, name := range def.BuildMetadata.RequiredEnv {
		g.Unset(name)
	}
	return g
}

// WriteEnvFile writes a .env file with the given lines into dir and returns its path
func WriteEnvFile(t testing.TB, dir string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
