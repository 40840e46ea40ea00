// Package console provides the human-facing build output used by task
// builders. Output is timestamped the way gulp users expect.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Console はビルド出力のインターフェース
type Console interface {
	Log(args ...interface{})
	Dir(v interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
}

type zapConsole struct {
	sugar *zap.SugaredLogger
}

// New は指定した出力先に書き込むConsoleを作成する
func New(w io.Writer) Console {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "time",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       encodeClock,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return &zapConsole{sugar: zap.New(core).Sugar()}
}

// Default は標準出力に書き込むConsoleを返す
func Default() Console {
	return New(os.Stdout)
}

func encodeClock(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("15:04:05") + "]")
}

// Log はメッセージを出力する
func (c *zapConsole) Log(args ...interface{}) {
	c.sugar.Info(join(args))
}

// Dir は値をYAMLとして整形して出力する
func (c *zapConsole) Dir(v interface{}) {
	c.sugar.Info("\n" + Format(v))
}

// Info は情報メッセージを出力する
func (c *zapConsole) Info(args ...interface{}) {
	c.sugar.Info(join(args))
}

// Warn は警告メッセージを出力する
func (c *zapConsole) Warn(args ...interface{}) {
	c.sugar.Warn(join(args))
}

// Error はエラーメッセージを出力する
func (c *zapConsole) Error(args ...interface{}) {
	c.sugar.Error(join(args))
}

// Format はDirと同じ形式で値を文字列にする
func Format(v interface{}) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return strings.TrimRight(string(out), "\n")
}

// join はfmt.Sprintlnと同じくスペース区切りで連結する
func join(args []interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
