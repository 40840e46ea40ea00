package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Run(t *testing.T) {
	runner := NewRunner(nil)

	t.Run("returns trimmed stdout", func(t *testing.T) {
		out, err := runner.Run(context.Background(), Command{Executable: "echo", Args: []string{"hello"}})
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("runs in the work dir", func(t *testing.T) {
		dir := t.TempDir()
		out, err := runner.Run(context.Background(), Command{Executable: "pwd", WorkDir: dir})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out, dir[strings.LastIndex(dir, "/"):]))
	})

	t.Run("passes extra env", func(t *testing.T) {
		out, err := runner.Run(context.Background(), Command{
			Executable: "sh",
			Args:       []string{"-c", "echo $BUILDUTILS_TEST_VALUE"},
			Env:        map[string]string{"BUILDUTILS_TEST_VALUE": "42"},
		})
		require.NoError(t, err)
		assert.Equal(t, "42", out)
	})

	t.Run("includes stderr in errors", func(t *testing.T) {
		_, err := runner.Run(context.Background(), Command{
			Executable: "sh",
			Args:       []string{"-c", "echo broken >&2; exit 3"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("rejects an empty executable", func(t *testing.T) {
		_, err := runner.Run(context.Background(), Command{})
		assert.ErrorIs(t, err, ErrEmptyExecutable)
	})
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "docker build .", Command{Executable: "docker", Args: []string{"build", "."}}.String())
	assert.Equal(t, "tsc", Command{Executable: "tsc"}.String())
}

func TestTruncateOutput(t *testing.T) {
	assert.Equal(t, "short", truncateOutput("short", 10))
	assert.Equal(t, "0123456789... (truncated)", truncateOutput("0123456789abc", 10))

	long := strings.Repeat("line\n", 20)
	assert.Contains(t, truncateOutput(long, 10), "lines omitted")
}
