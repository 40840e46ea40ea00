package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/douhashi/buildutils/internal/command"
	"github.com/douhashi/buildutils/internal/console"
	"github.com/douhashi/buildutils/internal/logger"
	"github.com/douhashi/buildutils/internal/pipeline"
	"github.com/douhashi/buildutils/internal/project"
	"github.com/douhashi/buildutils/internal/task"
	"github.com/douhashi/buildutils/internal/taskfactory"
)

// テスト用にモック可能な関数変数
var (
	newRunnerFunc = func(log logger.Logger) command.Runner {
		return command.NewRunner(log)
	}
	newOrchestratorFunc = func(baseDir string, log logger.Logger) pipeline.Orchestrator {
		return pipeline.New(baseDir, log)
	}
)

// loadEnvFiles は設定された.envファイルを読み込む
func loadEnvFiles() error {
	loaded, err := project.LoadEnv(appConfig.EnvPaths()...)
	if err != nil {
		return err
	}
	if len(loaded) > 0 {
		appLog.Debug("Loaded env files", "files", loaded)
	}
	return nil
}

// loadProject はプロジェクト定義を読み込む
func loadProject() (*project.Definition, error) {
	path := appConfig.ProjectPath()
	def, err := project.Load(path)
	if err != nil {
		return nil, err
	}
	appLog.Debug("Project loaded",
		"name", def.Name,
		"type", def.BuildMetadata.Type,
		"language", def.BuildMetadata.Language,
	)
	return def, nil
}

// newTaskFactory は実際のBuilderを使うTaskFactoryを作成する
func newTaskFactory(ctx context.Context, out io.Writer) (*taskfactory.TaskFactory, error) {
	workDir := appConfig.Project.WorkDir
	factory, err := taskfactory.New(ctx, task.Options{
		Orchestrator: newOrchestratorFunc(workDir, appLog),
		Runner:       newRunnerFunc(appLog),
		Console:      console.New(out),
		WorkDir:      workDir,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task factory: %w", err)
	}
	return factory, nil
}
