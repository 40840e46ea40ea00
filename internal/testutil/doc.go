// Package testutil groups the shared test support for buildutils.
//
// Subpackages:
//
//   - builders: project definitions with dotted-path overrides
//   - mocks: orchestrator, task builder, console, logger and command runner mocks
//   - helpers: module importer with dependency injection, batch task builder
//     mocks, environment guards and an observable logger
package testutil
