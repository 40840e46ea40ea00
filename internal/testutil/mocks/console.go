package mocks

import (
	"github.com/douhashi/buildutils/internal/console"
	"github.com/stretchr/testify/mock"
)

// MockConsole is a mock implementation of console.Console interface.
// Variadic arguments are recorded as a single []interface{} argument.
type MockConsole struct {
	mock.Mock

	defaults []*mock.Call
}

// NewMockConsole creates a new instance of MockConsole with the default
// behavior already set up
func NewMockConsole() *MockConsole {
	m := &MockConsole{}
	return m.WithDefaultBehavior()
}

// WithDefaultBehavior sets up common default behaviors for the mock.
// Calling it again after WithoutDefaultBehavior re-arms the defaults.
func (m *MockConsole) WithDefaultBehavior() *MockConsole {
	m.WithoutDefaultBehavior()
	// 出力メソッドのデフォルト動作（何もしない）
	m.defaults = []*mock.Call{
		m.On("Log", mock.Anything).Maybe().Return(),
		m.On("Dir", mock.Anything).Maybe().Return(),
		m.On("Info", mock.Anything).Maybe().Return(),
		m.On("Warn", mock.Anything).Maybe().Return(),
		m.On("Error", mock.Anything).Maybe().Return(),
	}
	return m
}

// WithoutDefaultBehavior removes the default expectations so that a test can
// set up its own with On
func (m *MockConsole) WithoutDefaultBehavior() *MockConsole {
	m.ExpectedCalls = removeCalls(m.ExpectedCalls, m.defaults)
	m.defaults = nil
	return m
}

// Log mocks the Log method
func (m *MockConsole) Log(args ...interface{}) {
	m.Called(args)
}

// Dir mocks the Dir method
func (m *MockConsole) Dir(v interface{}) {
	m.Called(v)
}

// Info mocks the Info method
func (m *MockConsole) Info(args ...interface{}) {
	m.Called(args)
}

// Warn mocks the Warn method
func (m *MockConsole) Warn(args ...interface{}) {
	m.Called(args)
}

// Error mocks the Error method
func (m *MockConsole) Error(args ...interface{}) {
	m.Called(args)
}

// Ensure MockConsole implements console.Console interface
var _ console.Console = (*MockConsole)(nil)
