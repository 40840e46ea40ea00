package cmd

import (
	"fmt"

	"github.com/douhashi/buildutils/internal/logger"
	"github.com/douhashi/buildutils/internal/project"
	"github.com/spf13/cobra"
)

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "必須の環境変数を確認",
		Long: `.envファイルを読み込み、buildMetadata.requiredEnvに
列挙された環境変数がすべて設定されているか確認します。
シークレットと思われる値はマスクして表示します。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnv(cmd)
		},
	}

	return cmd
}

func runEnv(cmd *cobra.Command) error {
	if err := loadEnvFiles(); err != nil {
		return err
	}
	def, err := loadProject()
	if err != nil {
		return err
	}

	values := logger.SanitizeEnv(project.RequiredEnvValues(def, nil))
	out := cmd.OutOrStdout()
	for _, name := range def.BuildMetadata.RequiredEnv {
		value := values[name]
		if value == "" {
			fmt.Fprintf(out, "%s: (not set)\n", name)
			continue
		}
		fmt.Fprintf(out, "%s=%s\n", name, value)
	}

	if err := project.CheckEnv(def, nil); err != nil {
		appLog.Warn("Required environment variables are missing", "project", def.Name, "error", err)
		return err
	}
	appLog.Debug("Required environment variables are set", "project", def.Name, "count", len(values))
	return nil
}
