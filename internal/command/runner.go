package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/douhashi/buildutils/internal/logger"
)

// ErrEmptyExecutable は実行ファイルが指定されていない場合のエラー
var ErrEmptyExecutable = errors.New("command executable can not be empty")

// Command は外部コマンドの実行内容
type Command struct {
	Executable string
	Args       []string
	WorkDir    string
	// Env は現在の環境変数に追加される
	Env map[string]string
}

// String はログ用にコマンドラインを組み立てる
func (c Command) String() string {
	return strings.TrimSpace(c.Executable + " " + strings.Join(c.Args, " "))
}

// Runner は外部コマンドを実行するインターフェース
type Runner interface {
	Run(ctx context.Context, command Command) (string, error)
}

// ExecRunner はos/execを使用したRunner実装
type ExecRunner struct {
	logger logger.Logger
}

// NewRunner は新しいExecRunnerを作成する
func NewRunner(log logger.Logger) *ExecRunner {
	if log == nil {
		log = logger.Nop()
	}
	return &ExecRunner{logger: log}
}

// Run はコマンドを実行し、標準出力を返す
func (r *ExecRunner) Run(ctx context.Context, command Command) (string, error) {
	if command.Executable == "" {
		return "", ErrEmptyExecutable
	}

	logFields := []interface{}{
		"command", command.Executable,
		"args", command.Args,
	}
	if command.WorkDir != "" {
		logFields = append(logFields, "workDir", command.WorkDir)
	}
	r.logger.Debug("Executing command", logFields...)

	// nolint:gosec
	cmd := exec.CommandContext(ctx, command.Executable, command.Args...)
	cmd.Dir = command.WorkDir
	if len(command.Env) > 0 {
		cmd.Env = append(os.Environ(), envList(command.Env)...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	stdoutStr := strings.TrimSpace(stdout.String())
	stderrStr := strings.TrimSpace(stderr.String())

	if err != nil {
		errorFields := append(logFields,
			"error", err.Error(),
			"stderr", truncateOutput(stderrStr, 1000),
		)
		r.logger.Error("Command failed", errorFields...)

		if stderrStr != "" {
			return stdoutStr, fmt.Errorf("%s failed: %w\nstderr: %s", command.Executable, err, stderrStr)
		}
		return stdoutStr, fmt.Errorf("%s failed: %w", command.Executable, err)
	}

	successFields := append(logFields, "duration", time.Since(start))
	if stdoutStr != "" {
		successFields = append(successFields, "output", truncateOutput(stdoutStr, 500))
	}
	r.logger.Debug("Command completed", successFields...)

	return stdoutStr, nil
}

// envList はKEY=VALUE形式のリストをキー順に返す
func envList(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]string, 0, len(keys))
	for _, k := range keys {
		list = append(list, k+"="+env[k])
	}
	return list
}

// truncateOutput は長い出力を指定された長さに切り詰める
func truncateOutput(output string, maxLength int) string {
	if len(output) <= maxLength {
		return output
	}

	lines := strings.Split(output, "\n")
	if len(lines) > 10 {
		// 行数が多い場合は最初と最後の数行を表示
		result := strings.Join(lines[:5], "\n")
		result += fmt.Sprintf("\n... (%d lines omitted) ...\n", len(lines)-10)
		result += strings.Join(lines[len(lines)-5:], "\n")
		return result
	}

	return output[:maxLength] + "... (truncated)"
}

var _ Runner = (*ExecRunner)(nil)
