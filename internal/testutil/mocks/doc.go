// Package mocks provides common mock implementations for interfaces used throughout the buildutils codebase.
//
// Most mocks are built using testify/mock. MockOrchestrator records its calls
// in an explicit CallSequence instead, since the order of pipeline calls is
// what tests usually assert on.
//
// # Available Mocks
//
//   - MockOrchestrator: Mock for pipeline.Orchestrator and pipeline.Stream
//   - MockTaskBuilder: Mock for task.Builder with a constructor stub (Ctor)
//   - MockConsole: Mock for console.Console interface
//   - MockLogger: Mock for logger.Logger interface
//   - MockRunner: Mock for command.Runner interface
//
// # Best Practices
//
// 1. Always use the factory functions (e.g., NewMockTaskBuilder) to create mocks
// 2. Use WithDefaultBehavior() methods for common scenarios
// 3. Create a fresh mock per test case
// 4. Use mock.MatchedBy (or Executable for commands) for complex argument matching
//
// # Example
//
//	func TestCopyFiles(t *testing.T) {
//	    orchestrator := mocks.NewMockOrchestrator()
//	    builder := task.NewCopyFilesTaskBuilder(task.Options{Orchestrator: orchestrator})
//
//	    _, err := builder.BuildTask(builders.BuildProject(t, nil))
//	    require.NoError(t, err)
//	    assert.Equal(t, []string{"src", "dest", "pipe"}, orchestrator.CallSequence)
//	}
package mocks
