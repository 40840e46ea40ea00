package task

import (
	"context"
	"fmt"

	"github.com/douhashi/buildutils/internal/command"
	"github.com/douhashi/buildutils/internal/pipeline"
	"github.com/douhashi/buildutils/internal/project"
)

// DeployName はdeployタスクの名前
const DeployName = "deploy"

func init() {
	register(DeployName, NewDeployTaskBuilder)
}

// DeployTaskBuilder はCDKでAWSスタックをデプロイするタスクを作る
type DeployTaskBuilder struct {
	opts Options
}

// NewDeployTaskBuilder はDeployTaskBuilderを作成する
func NewDeployTaskBuilder(opts Options) Builder {
	return &DeployTaskBuilder{opts: opts}
}

func (b *DeployTaskBuilder) Name() string { return DeployName }

func (b *DeployTaskBuilder) Description() string {
	return "Deploys the AWS stacks with cdk"
}

func (b *DeployTaskBuilder) BuildTask(def *project.Definition) (pipeline.Task, error) {
	if err := requireRunner(DeployName, b.opts); err != nil {
		return nil, err
	}

	out := consoleOf(b.opts)
	runner := b.opts.Runner
	stacks := make([]string, 0, len(def.BuildMetadata.AWS.Stacks))
	for _, key := range def.StackKeys() {
		stacks = append(stacks, def.BuildMetadata.AWS.Stacks[key])
	}

	return pipeline.TaskFunc(func(ctx context.Context) error {
		if err := project.CheckEnv(def, nil); err != nil {
			return err
		}
		if len(stacks) == 0 {
			out.Warn("No stacks defined for", def.Name)
			return nil
		}
		for _, stack := range stacks {
			out.Info("Deploying stack", stack)
			output, err := runner.Run(ctx, command.Command{
				Executable: "cdk",
				Args:       []string{"deploy", stack, "--require-approval", "never"},
				WorkDir:    b.opts.WorkDir,
			})
			if output != "" {
				out.Log(output)
			}
			if err != nil {
				return fmt.Errorf("failed to deploy stack %s: %w", stack, err)
			}
		}
		return nil
	}), nil
}
