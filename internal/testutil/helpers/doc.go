// Package helpers provides general test helper functions and utilities.
//
// This package contains helpers that don't fit into the mocks or builders
// categories but are useful across multiple test suites.
//
// # Available Helpers
//
//   - CreateModuleImporter: load a registered module with some of its
//     dependencies replaced by mocks
//   - CreateTaskBuilderImportDefinitions / CreateTaskBuilderImportMocks:
//     wire several task builder mocks into a ModuleImporter at once
//   - EnvGuard, SetRequiredEnv: environment setup/teardown
//   - ObservableLogger: logger.Logger that records entries
//   - Common test errors
//
// # Example
//
//	func TestTaskFactory(t *testing.T) {
//	    names := []string{"clean", "build"}
//	    imports := helpers.CreateTaskBuilderImportMocks(names)
//	    importer := helpers.CreateModuleImporter(taskfactory.ModulePath,
//	        helpers.CreateTaskBuilderImportDefinitions(names), taskfactory.ExportName)
//
//	    loaded, err := importer(ctx, imports.MockReferences)
//	    // ...
//	}
package helpers
