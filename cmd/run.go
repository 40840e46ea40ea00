package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <task>...",
		Short: "タスクを指定順に実行",
		Long: `指定したタスクを順番に実行します。
途中のタスクが失敗した場合、残りのタスクは実行しません。
watchタスクはCtrl+Cで停止するまで実行を続けます。`,
		Example: `  buildutils run clean build copy-files
  buildutils run watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args)
		},
	}

	return cmd
}

func runRun(cmd *cobra.Command, names []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loadEnvFiles(); err != nil {
		return err
	}
	def, err := loadProject()
	if err != nil {
		return err
	}

	factory, err := newTaskFactory(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	start := time.Now()
	appLog.Info("Running tasks", "project", def.Name, "tasks", names)
	if err := factory.Run(ctx, def, names...); err != nil {
		appLog.Error("Tasks failed", "tasks", names, "error", err)
		return err
	}
	appLog.Info("Tasks completed", "tasks", names, "duration", time.Since(start))
	return nil
}
