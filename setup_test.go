package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStructure(t *testing.T) {
	t.Run("go.modファイルが存在する", func(t *testing.T) {
		assert.FileExists(t, "go.mod")
	})

	t.Run("必要なディレクトリが存在する", func(t *testing.T) {
		for _, dir := range []string{"cmd", "internal", "internal/testutil"} {
			assert.DirExists(t, dir)
		}
	})

	t.Run("main.goファイルが存在する", func(t *testing.T) {
		assert.FileExists(t, "main.go")
	})
}

func TestGoModContent(t *testing.T) {
	t.Run("go.modにモジュール名が含まれている", func(t *testing.T) {
		content, err := os.ReadFile("go.mod")
		require.NoError(t, err)

		assert.True(t, strings.Contains(string(content), "module github.com/douhashi/buildutils"))
	})
}
