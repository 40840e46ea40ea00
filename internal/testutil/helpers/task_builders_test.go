package helpers

import (
	"testing"

	"github.com/douhashi/buildutils/internal/module"
	"github.com/douhashi/buildutils/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskBuilderImportDefinitions(t *testing.T) {
	definitions := CreateTaskBuilderImportDefinitions([]string{"build", "copy-files"})

	assert.Equal(t, map[string]string{
		"buildTaskBuilderModule":     "src/task-builders/build-task-builder",
		"copyFilesTaskBuilderModule": "src/task-builders/copy-files-task-builder",
	}, definitions)
}

func TestCreateTaskBuilderImportDefinitions_Empty(t *testing.T) {
	assert.Empty(t, CreateTaskBuilderImportDefinitions(nil))
}

func TestCreateTaskBuilderImportMocks(t *testing.T) {
	result := CreateTaskBuilderImportMocks([]string{"x", "copy-files"})

	require.Len(t, result.Mocks, 2)
	require.Len(t, result.MockReferences, 2)

	tests := []struct {
		name      string
		importKey string
		className string
	}{
		{name: "x", importKey: "xTaskBuilderModule", className: "XTaskBuilder"},
		{name: "copy-files", importKey: "copyFilesTaskBuilderModule", className: "CopyFilesTaskBuilder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := result.Mocks[tt.name]
			require.NotNil(t, m)
			assert.Equal(t, tt.name, m.TaskName)

			exports, ok := result.MockReferences[tt.importKey].(module.Exports)
			require.True(t, ok)
			require.Len(t, exports, 1)

			ctor, err := task.ConstructorFrom(tt.name, exports)
			require.NoError(t, err)
			assert.Contains(t, exports, tt.className)
			assert.Same(t, m, ctor(task.Options{}))
			m.AssertNumberOfCalls(t, "Ctor", 1)
		})
	}
}

func TestCreateTaskBuilderImportMocks_KeysMatchDefinitions(t *testing.T) {
	names := []string{"clean", "build", "watch"}

	definitions := CreateTaskBuilderImportDefinitions(names)
	references := CreateTaskBuilderImportMocks(names).MockReferences

	for key := range references {
		assert.Contains(t, definitions, key)
	}
}
