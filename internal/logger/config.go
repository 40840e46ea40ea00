package logger

import (
	"os"
	"strings"
)

// envPrefix はbuildutilsの設定ファイルと共通の環境変数プレフィックス
const envPrefix = "BUILDUTILS_"

// ConfigFromEnv は環境変数から設定を読み込む
// BUILDUTILS_LOG_LEVEL のようなプレフィックス付きの名前を優先し、
// 未設定の場合はプレフィックスなしの名前（LOG_LEVEL）を参照する
func ConfigFromEnv() *Config {
	config := &Config{
		Level:  "info",
		Format: "text",
	}

	if isTrue(lookupEnv("DEBUG")) {
		config.Level = "debug"
	}

	// LOG_LEVELはDEBUGより優先
	if level := lookupEnv("LOG_LEVEL"); level != "" {
		config.Level = strings.ToLower(level)
	}

	if format := lookupEnv("LOG_FORMAT"); format != "" {
		config.Format = strings.ToLower(format)
	}

	return config
}

// NewFromEnv は環境変数から設定を読み込んでロガーを作成する
func NewFromEnv() (Logger, error) {
	config := ConfigFromEnv()
	return New(
		WithLevel(config.Level),
		WithFormat(config.Format),
	)
}

// lookupEnv はプレフィックス付き、プレフィックスなしの順に環境変数を参照する
func lookupEnv(name string) string {
	if v := os.Getenv(envPrefix + name); v != "" {
		return v
	}
	return os.Getenv(name)
}

// isTrue は文字列がtrueを表すかチェックする
func isTrue(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
