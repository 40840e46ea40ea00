package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Methods(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c Console)
		contains string
	}{
		{name: "log", call: func(c Console) { c.Log("Starting", "build") }, contains: "Starting build"},
		{name: "info", call: func(c Console) { c.Info("count:", 3) }, contains: "count: 3"},
		{name: "warn", call: func(c Console) { c.Warn("careful") }, contains: "careful"},
		{name: "error", call: func(c Console) { c.Error("failed") }, contains: "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.call(New(&buf))

			line := strings.TrimSpace(buf.String())
			assert.True(t, strings.HasPrefix(line, "["), "line should start with a timestamp: %q", line)
			assert.Contains(t, line, tt.contains)
		})
	}
}

func TestConsole_Dir(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Dir(map[string]interface{}{
		"name":  "sample",
		"files": []string{"a.json"},
	})

	out := buf.String()
	assert.Contains(t, out, "name: sample")
	assert.Contains(t, out, "- a.json")
}

func TestFormat(t *testing.T) {
	type target struct {
		Repo string `yaml:"repo"`
	}
	assert.Equal(t, "repo: my-repo", Format(target{Repo: "my-repo"}))

	// yamlにできない値はfmtで整形される
	ch := make(chan int)
	require.NotPanics(t, func() { Format(ch) })
}
