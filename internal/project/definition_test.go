package project_test

import (
	"testing"

	"github.com/douhashi/buildutils/internal/project"
	"github.com/douhashi/buildutils/internal/testutil/builders"
	"github.com/stretchr/testify/assert"
)

func TestDefinition_ContainerTargets(t *testing.T) {
	def := builders.BuildProject(t, nil)

	assert.Equal(t, []string{"default", "myBuildArm"}, def.ContainerTargets())
	assert.Equal(t, []string{"myStack"}, def.StackKeys())
}

func TestDefinition_ProjectTypes(t *testing.T) {
	tests := []struct {
		projectType       string
		hasContainers     bool
		isAWSMicroservice bool
	}{
		{projectType: project.TypeLib},
		{projectType: project.TypeCLI},
		{projectType: project.TypeAPI},
		{projectType: project.TypeContainer, hasContainers: true},
		{projectType: project.TypeAWSMicroservice, hasContainers: true, isAWSMicroservice: true},
	}

	for _, tt := range tests {
		t.Run(tt.projectType, func(t *testing.T) {
			def := builders.NewProjectBuilder().WithType(tt.projectType).Build(t)

			assert.Equal(t, tt.hasContainers, def.HasContainers())
			assert.Equal(t, tt.isAWSMicroservice, def.IsAWSMicroservice())
		})
	}
}

func TestDefinition_HasContainersWithoutTargets(t *testing.T) {
	def := builders.BuildProject(t, map[string]interface{}{
		"buildMetadata.type":      project.TypeContainer,
		"buildMetadata.container": map[string]interface{}{},
	})

	assert.False(t, def.HasContainers())
	assert.Empty(t, def.ContainerTargets())
}
