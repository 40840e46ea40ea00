package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("デフォルト設定でロガーを作成できる", func(t *testing.T) {
		logger, err := New()
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("無効なログレベルを指定するとエラーになる", func(t *testing.T) {
		_, err := New(WithLevel("invalid"))
		assert.Error(t, err)
	})

	t.Run("無効なフォーマットを指定するとエラーになる", func(t *testing.T) {
		_, err := New(WithFormat("xml"))
		assert.Error(t, err)
	})
}

func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		expectedLines int
	}{
		{name: "debug", level: "debug", expectedLines: 4},
		{name: "info", level: "info", expectedLines: 3},
		{name: "warn", level: "warn", expectedLines: 2},
		{name: "error", level: "error", expectedLines: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(WithLevel(tt.level), WithFormat("json"), WithOutput(&buf))
			require.NoError(t, err)

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")
			logger.Error("error message")

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			assert.Len(t, lines, tt.expectedLines)
			for _, line := range lines {
				var entry map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(line), &entry))
			}
		})
	}
}

func TestStructuredFieldsAreSanitized(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(WithFormat("json"), WithOutput(&buf))
	require.NoError(t, err)

	logger.WithFields("task", "package-default").Info("running",
		"AWS_SECRET_ACCESS_KEY", "abc123",
		"stack", "my-stack",
	)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "running", entry["msg"])
	assert.Equal(t, "package-default", entry["task"])
	assert.Equal(t, "my-stack", entry["stack"])
	assert.Equal(t, "***MASKED***", entry["AWS_SECRET_ACCESS_KEY"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		l := Nop()
		l.Info("ignored", "key", "value")
		l.WithFields("a", 1).Error("ignored")
	})
}

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level)

	_, err = parseLevel("verbose")
	assert.Error(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name       string
		envVars    map[string]string
		wantLevel  string
		wantFormat string
	}{
		{
			name:       "環境変数なし",
			envVars:    map[string]string{},
			wantLevel:  "info",
			wantFormat: "text",
		},
		{
			name:       "DEBUG=true",
			envVars:    map[string]string{"DEBUG": "true"},
			wantLevel:  "debug",
			wantFormat: "text",
		},
		{
			name:       "DEBUGとLOG_LEVELの両方指定（LOG_LEVELが優先）",
			envVars:    map[string]string{"DEBUG": "1", "LOG_LEVEL": "ERROR"},
			wantLevel:  "error",
			wantFormat: "text",
		},
		{
			name:       "LOG_FORMAT=json",
			envVars:    map[string]string{"LOG_FORMAT": "JSON"},
			wantLevel:  "info",
			wantFormat: "json",
		},
		{
			name:       "BUILDUTILS_LOG_LEVELがLOG_LEVELより優先",
			envVars:    map[string]string{"LOG_LEVEL": "error", "BUILDUTILS_LOG_LEVEL": "Warn"},
			wantLevel:  "warn",
			wantFormat: "text",
		},
		{
			name:       "BUILDUTILS_DEBUGとBUILDUTILS_LOG_FORMAT",
			envVars:    map[string]string{"BUILDUTILS_DEBUG": "yes", "BUILDUTILS_LOG_FORMAT": "json", "LOG_FORMAT": "text"},
			wantLevel:  "debug",
			wantFormat: "json",
		},
		{
			name:       "空のBUILDUTILS_LOG_LEVELはLOG_LEVELにフォールバック",
			envVars:    map[string]string{"BUILDUTILS_LOG_LEVEL": "", "LOG_LEVEL": "debug"},
			wantLevel:  "debug",
			wantFormat: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, name := range []string{"DEBUG", "LOG_LEVEL", "LOG_FORMAT"} {
				t.Setenv(name, "")
				t.Setenv("BUILDUTILS_"+name, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			config := ConfigFromEnv()

			assert.Equal(t, tt.wantLevel, config.Level)
			assert.Equal(t, tt.wantFormat, config.Format)
		})
	}
}

func TestNewFromEnv_InvalidLevel(t *testing.T) {
	t.Setenv("BUILDUTILS_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "invalid")
	_, err := NewFromEnv()
	assert.Error(t, err)
}
