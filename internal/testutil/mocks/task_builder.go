package mocks

import (
	"context"
	"fmt"

	"github.com/douhashi/buildutils/internal/pipeline"
	"github.com/douhashi/buildutils/internal/project"
	"github.com/douhashi/buildutils/internal/task"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// TaskRetToken returns the token a task stub built by a MockTaskBuilder
// yields, e.g. _build_task_ret_<uuid>.
func TaskRetToken(name string) string {
	return fmt.Sprintf("_%s_task_ret_%s", name, uuid.NewString())
}

// TaskStub is the task returned by MockTaskBuilder.BuildTask
type TaskStub struct {
	mock.Mock
	ret string
}

// NewTaskStub creates a new TaskStub returning ret from Call
func NewTaskStub(ret string) *TaskStub {
	s := &TaskStub{ret: ret}
	s.On("Run", mock.Anything).Maybe().Return(nil)
	return s
}

// Call returns the token of the builder that produced the stub
func (s *TaskStub) Call() string {
	return s.ret
}

// Run mocks the Run method
func (s *TaskStub) Run(ctx context.Context) error {
	args := s.Called(ctx)
	return args.Error(0)
}

// MockTaskBuilder is a mock implementation of task.Builder.
// Ctor stands in for the builder's constructor and returns the mock itself.
type MockTaskBuilder struct {
	mock.Mock
	TaskName string
	Ret      string
	Stub     *TaskStub

	defaults []*mock.Call
}

// NewMockTaskBuilder creates a new instance of MockTaskBuilder with the
// default behavior already set up
func NewMockTaskBuilder(name string) *MockTaskBuilder {
	ret := TaskRetToken(name)
	m := &MockTaskBuilder{
		TaskName: name,
		Ret:      ret,
		Stub:     NewTaskStub(ret),
	}
	return m.WithDefaultBehavior()
}

// WithDefaultBehavior sets up common default behaviors for the mock.
// Calling it again after WithoutDefaultBehavior re-arms the defaults.
func (m *MockTaskBuilder) WithDefaultBehavior() *MockTaskBuilder {
	m.WithoutDefaultBehavior()
	m.defaults = []*mock.Call{
		m.On("Ctor", mock.Anything).Maybe().Return(m),
		m.On("Name").Maybe().Return(m.TaskName),
		m.On("Description").Maybe().Return(fmt.Sprintf("mock %s task", m.TaskName)),
		m.On("BuildTask", mock.Anything).Maybe().Return(m.Stub, nil),
	}
	return m
}

// WithoutDefaultBehavior removes the default expectations so that a test can
// set up its own with On
func (m *MockTaskBuilder) WithoutDefaultBehavior() *MockTaskBuilder {
	m.ExpectedCalls = removeCalls(m.ExpectedCalls, m.defaults)
	m.defaults = nil
	return m
}

// Ctor mocks the builder constructor
func (m *MockTaskBuilder) Ctor(opts task.Options) task.Builder {
	args := m.Called(opts)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(task.Builder)
}

// Constructor returns Ctor as a task.Constructor
func (m *MockTaskBuilder) Constructor() task.Constructor {
	return m.Ctor
}

// Name mocks the Name method
func (m *MockTaskBuilder) Name() string {
	args := m.Called()
	return args.String(0)
}

// Description mocks the Description method
func (m *MockTaskBuilder) Description() string {
	args := m.Called()
	return args.String(0)
}

// BuildTask mocks the BuildTask method
func (m *MockTaskBuilder) BuildTask(def *project.Definition) (pipeline.Task, error) {
	args := m.Called(def)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pipeline.Task), args.Error(1)
}

// CtorOptions returns the options passed to each Ctor call
func (m *MockTaskBuilder) CtorOptions() []task.Options {
	var opts []task.Options
	for _, c := range m.Calls {
		if c.Method == "Ctor" {
			opts = append(opts, c.Arguments.Get(0).(task.Options))
		}
	}
	return opts
}

// Ensure the mocks implement their interfaces
var (
	_ task.Builder  = (*MockTaskBuilder)(nil)
	_ pipeline.Task = (*TaskStub)(nil)
)
