package task

import (
	"context"
	"fmt"
	"sort"

	"github.com/douhashi/buildutils/internal/command"
	"github.com/douhashi/buildutils/internal/pipeline"
	"github.com/douhashi/buildutils/internal/project"
)

// PackageName はpackageタスクの名前
const PackageName = "package"

// DefaultTarget はターゲット未指定時のコンテナターゲット
const DefaultTarget = "default"

func init() {
	register(PackageName, NewPackageTaskBuilder)
}

// PackageTaskBuilder はコンテナイメージをビルドするタスクを作る
type PackageTaskBuilder struct {
	opts Options
}

// NewPackageTaskBuilder はPackageTaskBuilderを作成する
func NewPackageTaskBuilder(opts Options) Builder {
	if opts.Target == "" {
		opts.Target = DefaultTarget
	}
	return &PackageTaskBuilder{opts: opts}
}

// Name はdefaultターゲットなら"package"、それ以外は"package-<target>"
func (b *PackageTaskBuilder) Name() string {
	if b.opts.Target == DefaultTarget {
		return PackageName
	}
	return PackageName + "-" + b.opts.Target
}

func (b *PackageTaskBuilder) Description() string {
	return fmt.Sprintf("Builds the %s container image", b.opts.Target)
}

func (b *PackageTaskBuilder) BuildTask(def *project.Definition) (pipeline.Task, error) {
	target, ok := def.BuildMetadata.Container[b.opts.Target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, b.opts.Target)
	}
	if err := requireRunner(PackageName, b.opts); err != nil {
		return nil, err
	}

	out := consoleOf(b.opts)
	runner := b.opts.Runner
	cmd := command.Command{
		Executable: "docker",
		Args:       DockerBuildArgs(def, target),
		WorkDir:    b.opts.WorkDir,
	}
	return pipeline.TaskFunc(func(ctx context.Context) error {
		out.Info("Packaging", imageTag(def, target))
		output, err := runner.Run(ctx, cmd)
		if output != "" {
			out.Log(output)
		}
		return err
	}), nil
}

// DockerBuildArgs はdocker buildの引数を組み立てる
// APP_NAMEとAPP_VERSIONはbuildArgsで上書きできる
func DockerBuildArgs(def *project.Definition, target project.ContainerTarget) []string {
	buildFile := target.BuildFile
	if buildFile == "" {
		buildFile = "Dockerfile"
	}

	buildArgs := map[string]string{
		"APP_NAME":    def.Name,
		"APP_VERSION": def.Version,
	}
	for k, v := range target.BuildArgs {
		buildArgs[k] = v
	}
	keys := make([]string, 0, len(buildArgs))
	for k := range buildArgs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := []string{"build", "--rm", "--file", buildFile, "--tag", imageTag(def, target)}
	for _, k := range keys {
		args = append(args, "--build-arg", k+"="+buildArgs[k])
	}
	return append(args, ".")
}

func imageTag(def *project.Definition, target project.ContainerTarget) string {
	return target.Repo + ":" + def.Version
}
