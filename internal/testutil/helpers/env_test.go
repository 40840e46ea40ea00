package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/douhashi/buildutils/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvGuard(t *testing.T) {
	const testKey = "BUILDUTILS_TEST_ENV_GUARD_VAR"
	const originalValue = "original"

	os.Setenv(testKey, originalValue)
	defer os.Unsetenv(testKey)

	t.Run("Set and Restore", func(t *testing.T) {
		guard := NewEnvGuard(t)

		guard.Set(testKey, "new")
		assert.Equal(t, "new", os.Getenv(testKey))

		guard.Restore()
		assert.Equal(t, originalValue, os.Getenv(testKey))
	})

	t.Run("Unset and Restore", func(t *testing.T) {
		guard := NewEnvGuard(t)

		guard.Unset(testKey)
		_, ok := os.LookupEnv(testKey)
		assert.False(t, ok)

		guard.Restore()
		assert.Equal(t, originalValue, os.Getenv(testKey))
	})

	t.Run("keeps the first saved value", func(t *testing.T) {
		guard := NewEnvGuard(t)

		guard.Set(testKey, "first")
		guard.Set(testKey, "second")
		guard.Restore()

		assert.Equal(t, originalValue, os.Getenv(testKey))
	})

	t.Run("unsets variables that did not exist", func(t *testing.T) {
		const missingKey = "BUILDUTILS_TEST_ENV_GUARD_MISSING"
		guard := NewEnvGuard(t)

		guard.Set(missingKey, "value")
		guard.Restore()

		_, ok := os.LookupEnv(missingKey)
		assert.False(t, ok)
	})

	t.Run("restores on cleanup", func(t *testing.T) {
		t.Run("inner", func(t *testing.T) {
			NewEnvGuard(t).Set(testKey, "inner")
		})
		assert.Equal(t, originalValue, os.Getenv(testKey))
	})
}

func TestSetRequiredEnv(t *testing.T) {
	def := &project.Definition{BuildMetadata: project.BuildMetadata{
		RequiredEnv: []string{"BUILDUTILS_TEST_ENV_1", "BUILDUTILS_TEST_ENV_2"},
	}}

	t.Run("sets placeholders", func(t *testing.T) {
		SetRequiredEnv(t, def)

		assert.Equal(t, "buildutils_test_env_1_value", os.Getenv("BUILDUTILS_TEST_ENV_1"))
		assert.Equal(t, "buildutils_test_env_2_value", os.Getenv("BUILDUTILS_TEST_ENV_2"))
		require.NoError(t, project.CheckEnv(def, nil))
	})

	_, ok := os.LookupEnv("BUILDUTILS_TEST_ENV_1")
	assert.False(t, ok)

	t.Run("unsets", func(t *testing.T) {
		UnsetRequiredEnv(t, def)

		var missing *project.MissingEnvError
		require.ErrorAs(t, project.CheckEnv(def, nil), &missing)
		assert.Equal(t, def.BuildMetadata.RequiredEnv, missing.Names)
	})
}

func TestWriteEnvFile(t *testing.T) {
	dir := t.TempDir()

	path := WriteEnvFile(t, dir, "A=1", "B=two")

	assert.Equal(t, filepath.Join(dir, ".env"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A=1\nB=two\n", string(content))
}
