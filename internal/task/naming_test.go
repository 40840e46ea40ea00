package task_test

import (
	"testing"

	"github.com/douhashi/buildutils/internal/task"
	"github.com/stretchr/testify/assert"
)

func TestNaming(t *testing.T) {
	tests := []struct {
		name          string
		modulePath    string
		referenceName string
		importKey     string
		className     string
	}{
		{
			name:          "build",
			modulePath:    "src/task-builders/build-task-builder",
			referenceName: "buildTaskBuilder",
			importKey:     "buildTaskBuilderModule",
			className:     "BuildTaskBuilder",
		},
		{
			name:          "copy-files",
			modulePath:    "src/task-builders/copy-files-task-builder",
			referenceName: "copyFilesTaskBuilder",
			importKey:     "copyFilesTaskBuilderModule",
			className:     "CopyFilesTaskBuilder",
		},
		{
			name:          "docker_push.arm",
			modulePath:    "src/task-builders/docker_push.arm-task-builder",
			referenceName: "dockerPushArmTaskBuilder",
			importKey:     "dockerPushArmTaskBuilderModule",
			className:     "DockerPushArmTaskBuilder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.modulePath, task.ModulePath(tt.name))
			assert.Equal(t, tt.referenceName, task.ReferenceName(tt.name))
			assert.Equal(t, tt.importKey, task.ImportKey(tt.name))
			assert.Equal(t, tt.className, task.ClassName(tt.name))
		})
	}
}

func TestCamelCase(t *testing.T) {
	assert.Equal(t, "", task.CamelCase(""))
	assert.Equal(t, "x", task.CamelCase("x"))
	assert.Equal(t, "myBuildArm", task.CamelCase("MyBuild-arm"))
	assert.Equal(t, "X", task.PascalCase("x"))
}

func TestCamelCase_Multibyte(t *testing.T) {
	assert.Equal(t, "éclairBuild", task.CamelCase("Éclair-build"))
	assert.Equal(t, "buildÉtape", task.CamelCase("build-étape"))
	assert.Equal(t, "ÉtapeTaskBuilder", task.ClassName("étape"))
	assert.Equal(t, "ビルドTaskBuilder", task.ReferenceName("ビルド"))
}
