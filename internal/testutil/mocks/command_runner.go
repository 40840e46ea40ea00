package mocks

import (
	"context"

	"github.com/douhashi/buildutils/internal/command"
	"github.com/stretchr/testify/mock"
)

// MockRunner is a mock implementation of command.Runner interface
type MockRunner struct {
	mock.Mock
}

// NewMockRunner creates a new instance of MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// WithDefaultBehavior sets up common default behaviors for the mock
func (m *MockRunner) WithDefaultBehavior() *MockRunner {
	m.On("Run", mock.Anything, mock.Anything).Maybe().Return("", nil)
	return m
}

// Run mocks the Run method
func (m *MockRunner) Run(ctx context.Context, cmd command.Command) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

// Executable matches a command.Command by its executable and leading arguments
func Executable(executable string, args ...string) interface{} {
	return mock.MatchedBy(func(cmd command.Command) bool {
		if cmd.Executable != executable || len(cmd.Args) < len(args) {
			return false
		}
		for i, a := range args {
			if cmd.Args[i] != a {
				return false
			}
		}
		return true
	})
}

// Commands returns the commands passed to Run, in order
func (m *MockRunner) Commands() []command.Command {
	var cmds []command.Command
	for _, c := range m.Calls {
		if c.Method == "Run" {
			cmds = append(cmds, c.Arguments.Get(1).(command.Command))
		}
	}
	return cmds
}

// Ensure MockRunner implements command.Runner interface
var _ command.Runner = (*MockRunner)(nil)
