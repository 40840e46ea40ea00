package mocks

import (
	"context"

	"github.com/douhashi/buildutils/internal/pipeline"
)

// Orchestrator method names recorded in CallSequence
const (
	MethodSeries = "series"
	MethodSrc    = "src"
	MethodPipe   = "pipe"
	MethodDest   = "dest"
	MethodWatch  = "watch"
)

// OrchestratorCall is a single recorded call on MockOrchestrator
type OrchestratorCall struct {
	Method string
	Args   []interface{}
}

// NoopTask is a task that does nothing when run.
// It is returned by Series and Watch to stand in for the deferred task.
type NoopTask struct {
	Method string
}

// Run does nothing
func (t *NoopTask) Run(ctx context.Context) error {
	return nil
}

// SentinelTransform is the value returned by Dest unless overridden
type SentinelTransform struct {
	Dir string
}

// Apply returns the files unchanged
func (s *SentinelTransform) Apply(ctx context.Context, files []pipeline.File) ([]pipeline.File, error) {
	return files, nil
}

// MockOrchestrator records every call made through the pipeline.Orchestrator
// and pipeline.Stream APIs, in order.
//
// Each method returns Returns[method] when set, otherwise the mock itself,
// so chained calls such as m.Src(...).Pipe(...) keep recording on the same
// object. Dest, Series and Watch are preconfigured with DestRet, SeriesRet
// and WatchRet.
type MockOrchestrator struct {
	CallSequence []string
	Calls        []OrchestratorCall
	Returns      map[string]interface{}

	DestRet   *SentinelTransform
	SeriesRet *NoopTask
	WatchRet  *NoopTask
}

// NewMockOrchestrator creates a new instance of MockOrchestrator
func NewMockOrchestrator() *MockOrchestrator {
	m := &MockOrchestrator{
		DestRet:   &SentinelTransform{Dir: "_dest_ret_"},
		SeriesRet: &NoopTask{Method: MethodSeries},
		WatchRet:  &NoopTask{Method: MethodWatch},
	}
	m.Returns = map[string]interface{}{
		MethodDest:   m.DestRet,
		MethodSeries: m.SeriesRet,
		MethodWatch:  m.WatchRet,
	}
	return m
}

// Series mocks the Series method
func (m *MockOrchestrator) Series(tasks ...pipeline.Task) pipeline.Task {
	args := make([]interface{}, 0, len(tasks))
	for _, t := range tasks {
		args = append(args, t)
	}
	ret := m.record(MethodSeries, args...)
	if t, ok := ret.(pipeline.Task); ok {
		return t
	}
	return m
}

// Src mocks the Src method
func (m *MockOrchestrator) Src(globs ...string) pipeline.Stream {
	args := make([]interface{}, 0, len(globs))
	for _, g := range globs {
		args = append(args, g)
	}
	ret := m.record(MethodSrc, args...)
	if s, ok := ret.(pipeline.Stream); ok {
		return s
	}
	return m
}

// Pipe mocks the Pipe method
func (m *MockOrchestrator) Pipe(t pipeline.Transform) pipeline.Stream {
	ret := m.record(MethodPipe, t)
	if s, ok := ret.(pipeline.Stream); ok {
		return s
	}
	return m
}

// Dest mocks the Dest method
func (m *MockOrchestrator) Dest(dir string) pipeline.Transform {
	ret := m.record(MethodDest, dir)
	if t, ok := ret.(pipeline.Transform); ok {
		return t
	}
	return m
}

// Watch mocks the Watch method
func (m *MockOrchestrator) Watch(globs []string, task pipeline.Task) pipeline.Task {
	ret := m.record(MethodWatch, globs, task)
	if t, ok := ret.(pipeline.Task); ok {
		return t
	}
	return m
}

// Run lets the mock stand in for a stream or task. It is not recorded.
func (m *MockOrchestrator) Run(ctx context.Context) error {
	return nil
}

// Apply lets the mock stand in for a transform. It returns the files
// unchanged and is not recorded.
func (m *MockOrchestrator) Apply(ctx context.Context, files []pipeline.File) ([]pipeline.File, error) {
	return files, nil
}

// CallsTo returns the recorded calls to the given method
func (m *MockOrchestrator) CallsTo(method string) []OrchestratorCall {
	var calls []OrchestratorCall
	for _, c := range m.Calls {
		if c.Method == method {
			calls = append(calls, c)
		}
	}
	return calls
}

// Reset clears the recorded calls but keeps the configured return values
func (m *MockOrchestrator) Reset() {
	m.CallSequence = nil
	m.Calls = nil
}

func (m *MockOrchestrator) record(method string, args ...interface{}) interface{} {
	m.CallSequence = append(m.CallSequence, method)
	m.Calls = append(m.Calls, OrchestratorCall{Method: method, Args: args})
	if ret, ok := m.Returns[method]; ok {
		return ret
	}
	return m
}

// Ensure MockOrchestrator implements the pipeline interfaces
var (
	_ pipeline.Orchestrator = (*MockOrchestrator)(nil)
	_ pipeline.Stream       = (*MockOrchestrator)(nil)
	_ pipeline.Transform    = (*MockOrchestrator)(nil)
)
