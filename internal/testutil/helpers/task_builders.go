package helpers

import (
	"github.com/douhashi/buildutils/internal/module"
	"github.com/douhashi/buildutils/internal/task"
	"github.com/douhashi/buildutils/internal/testutil/mocks"
)

// TaskBuilderImportMocks holds task builder mocks and the module exports
// that replace the real task builders when passed to a ModuleImporter.
type TaskBuilderImportMocks struct {
	// Mocks maps each task name to its mock
	Mocks map[string]*mocks.MockTaskBuilder
	// MockReferences maps each import key to module exports holding the
	// mock's constructor under the builder's class name
	MockReferences map[string]interface{}
}

// CreateTaskBuilderImportDefinitions returns the import key to module path
// definitions for the named task builders, e.g.
// "copyFilesTaskBuilderModule": "src/task-builders/copy-files-task-builder".
func CreateTaskBuilderImportDefinitions(names []string) map[string]string {
	definitions := make(map[string]string, len(names))
	for _, name := range names {
		definitions[task.ImportKey(name)] = task.ModulePath(name)
	}
	return definitions
}

// CreateTaskBuilderImportMocks creates a MockTaskBuilder (with default
// behavior) for each name together with the module exports that reference it.
func CreateTaskBuilderImportMocks(names []string) *TaskBuilderImportMocks {
	result := &TaskBuilderImportMocks{
		Mocks:          make(map[string]*mocks.MockTaskBuilder, len(names)),
		MockReferences: make(map[string]interface{}, len(names)),
	}
	for _, name := range names {
		m := mocks.NewMockTaskBuilder(name)
		result.Mocks[name] = m
		result.MockReferences[task.ImportKey(name)] = module.Exports{
			task.ClassName(name): m.Constructor(),
		}
	}
	return result
}
