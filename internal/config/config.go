package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix は設定を上書きする環境変数の接頭辞（BUILDUTILS_PROJECT_FILEなど）
const EnvPrefix = "BUILDUTILS"

// Config はアプリケーション全体の設定
type Config struct {
	Project ProjectConfig `mapstructure:"project"`
	Env     EnvConfig     `mapstructure:"env"`
	Log     LogConfig     `mapstructure:"log"`
}

// ProjectConfig はビルド対象プロジェクトの設定
type ProjectConfig struct {
	// File はプロジェクト定義ファイル（package.jsonなど）
	File string `mapstructure:"file"`
	// WorkDir はタスクを実行するディレクトリ
	WorkDir string `mapstructure:"work_dir"`
}

// EnvConfig は.envファイルの設定
type EnvConfig struct {
	Files []string `mapstructure:"files"`
}

// LogConfig はログの設定
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewConfig は新しいConfigを作成する
func NewConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			File:    "package.json",
			WorkDir: ".",
		},
		Env: EnvConfig{
			Files: []string{".env"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()

	// 環境変数の設定
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// LOG_LEVEL, LOG_FORMATもサポート
	v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT")

	// デフォルト値の設定
	defaults := NewConfig()
	v.SetDefault("project.file", defaults.Project.File)
	v.SetDefault("project.work_dir", defaults.Project.WorkDir)
	v.SetDefault("env.files", defaults.Env.Files)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	return v
}

// Load は設定ファイルから設定を読み込む
func (c *Config) Load(configPath string) error {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	return v.Unmarshal(c)
}

// LoadOrDefault は設定ファイルを読み込み、ファイルがない場合はデフォルト値と環境変数を使用する
func (c *Config) LoadOrDefault(configPath string) error {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return c.Load(configPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access config file: %w", err)
		}
	}

	return newViper().Unmarshal(c)
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Project.File == "" {
		return errors.New("project file is required")
	}

	if c.Project.WorkDir == "" {
		c.Project.WorkDir = "."
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}

	return nil
}

// ProjectPath はWorkDirから解決したプロジェクト定義ファイルのパス
func (c *Config) ProjectPath() string {
	if filepath.IsAbs(c.Project.File) {
		return c.Project.File
	}
	return filepath.Join(c.Project.WorkDir, c.Project.File)
}

// EnvPaths はWorkDirから解決した.envファイルのパス
func (c *Config) EnvPaths() []string {
	paths := make([]string, 0, len(c.Env.Files))
	for _, f := range c.Env.Files {
		if filepath.IsAbs(f) {
			paths = append(paths, f)
			continue
		}
		paths = append(paths, filepath.Join(c.Project.WorkDir, f))
	}
	return paths
}

// DefaultPath は~/.config/buildutils/buildutils.yml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "buildutils", "buildutils.yml")
}
