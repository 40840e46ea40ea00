// Package builders provides test data builders for creating test fixtures.
//
// # Available Builders
//
//   - BuildProjectDefinition: default project definition (as a nested map)
//     with dotted-path overrides applied
//   - BuildProject: the same definition decoded into project.Definition
//   - ProjectBuilder: fluent API over the same overrides
//
// # Example
//
//	func TestPackage(t *testing.T) {
//	    def := builders.NewProjectBuilder().
//	        WithType(project.TypeContainer).
//	        With("buildMetadata.container.default.repo", "other-repo").
//	        Build(t)
//
//	    // Use the definition in your test
//	    task, err := builder.BuildTask(def)
//	    // ...
//	}
package builders
