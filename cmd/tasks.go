package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type taskSummary struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func newTasksCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "プロジェクトで実行できるタスクを一覧表示",
		Long: `プロジェクト定義のbuildMetadataから生成されるタスクを
実行順に一覧表示します。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTasks(cmd, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "出力形式（text, yaml）")

	return cmd
}

func runTasks(cmd *cobra.Command, output string) error {
	def, err := loadProject()
	if err != nil {
		return err
	}

	factory, err := newTaskFactory(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	tasks, err := factory.Generate(def)
	if err != nil {
		return err
	}

	summaries := make([]taskSummary, 0, len(tasks))
	for _, t := range tasks {
		summaries = append(summaries, taskSummary{Name: t.Name, Description: t.Description})
	}

	out := cmd.OutOrStdout()
	switch output {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(summaries); err != nil {
			return fmt.Errorf("failed to encode tasks: %w", err)
		}
		return enc.Close()
	case "text":
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Tasks for %s (%s):\n", def.Name, def.BuildMetadata.Type)
		for _, s := range summaries {
			fmt.Fprintf(w, "  %s\t%s\n", s.Name, s.Description)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}
