package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/douhashi/buildutils/internal/config"
	"github.com/douhashi/buildutils/internal/logger"
	"github.com/douhashi/buildutils/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	projectFile string
	verbose     bool
	rootCmd     *cobra.Command
	appLog      logger.Logger
	appConfig   *config.Config
)

func init() {
	rootCmd = NewRootCmd()
}

// NewRootCmd creates a new root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newTasksCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newEnvCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buildutils",
		Short: "プロジェクト定義からビルドタスクを生成・実行するツール",
		Long: `buildutilsは、package.jsonのbuildMetadataに従って
clean, build, copy-files, package, deploy, watchのタスクを生成し、実行するCLIツールです。`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// 設定ファイルを先に読み込む
			if err := initConfig(cmd); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			// ロガーの初期化
			var err error
			appLog, err = newLogger(appConfig)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			appLog.Debug("Configuration loaded",
				"project", appConfig.ProjectPath(),
				"workDir", appConfig.Project.WorkDir,
				"envFiles", appConfig.EnvPaths(),
			)

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "設定ファイルのパス（デフォルト: ~/.config/buildutils/buildutils.yml）")
	cmd.PersistentFlags().StringVarP(&projectFile, "project", "p", "package.json", "プロジェクト定義ファイルのパス")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "詳細出力")

	viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg := config.NewConfig()
	if err := cfg.LoadOrDefault(path); err != nil {
		return err
	}

	// --projectが指定された場合はそのディレクトリを作業ディレクトリにする
	if cmd.Flags().Changed("project") {
		abs, err := filepath.Abs(projectFile)
		if err != nil {
			return fmt.Errorf("failed to resolve project file: %w", err)
		}
		cfg.Project.WorkDir = filepath.Dir(abs)
		cfg.Project.File = filepath.Base(abs)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	level := cfg.Log.Level
	// --verboseまたはDEBUG=trueの場合はdebugレベル
	if verbose || logger.ConfigFromEnv().Level == "debug" {
		level = "debug"
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(cfg.Log.Format),
	)
}
