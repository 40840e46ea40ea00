package builders

import (
	"strings"
	"testing"

	"github.com/douhashi/buildutils/internal/project"
	"github.com/stretchr/testify/require"
)

// DefaultProjectDefinition returns a fresh copy of the default project
// definition used by BuildProjectDefinition.
func DefaultProjectDefinition() map[string]interface{} {
	return map[string]interface{}{
		"name":        "sample-project",
		"description": "Sample project description",
		"version":     "1.0.0",
		"buildMetadata": map[string]interface{}{
			"type":        project.TypeLib,
			"language":    project.LanguageTS,
			"requiredEnv": []interface{}{"ENV_1", "ENV_2"},
			"aws": map[string]interface{}{
				"stacks": map[string]interface{}{
					"myStack": "my-stack",
				},
			},
			"staticFilePatterns": []interface{}{"**/*.json", "**/*.txt"},
			"container": map[string]interface{}{
				"default": map[string]interface{}{
					"repo":      "my-repo",
					"buildFile": "Dockerfile",
					"buildArgs": map[string]interface{}{
						"arg1": "value1",
					},
				},
				"myBuildArm": map[string]interface{}{
					"repo":      "my-repo-arm",
					"buildFile": "Dockerfile.arm",
					"buildArgs": map[string]interface{}{
						"arg1": "value1",
					},
				},
			},
		},
	}
}

// BuildProjectDefinition returns the default project definition with every
// dotted-path override applied, e.g. "buildMetadata.type": "container".
// Each call returns a new value; nothing is shared between calls.
func BuildProjectDefinition(overrides map[string]interface{}) map[string]interface{} {
	definition := DefaultProjectDefinition()
	for path, value := range overrides {
		SetPath(definition, path, value)
	}
	return definition
}

// BuildProject decodes BuildProjectDefinition(overrides) into a
// project.Definition, failing the test if it cannot be decoded.
func BuildProject(t testing.TB, overrides map[string]interface{}) *project.Definition {
	t.Helper()
	def, err := project.Decode(BuildProjectDefinition(overrides))
	require.NoError(t, err)
	return def
}

// SetPath sets value at the dotted path, creating intermediate maps as
// needed. A non-map value found along the path is replaced by a new map.
func SetPath(target map[string]interface{}, path string, value interface{}) {
	keys := strings.Split(path, ".")
	current := target
	for _, key := range keys[:len(keys)-1] {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[key] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// GetPath returns the value at the dotted path.
func GetPath(source map[string]interface{}, path string) (interface{}, bool) {
	var current interface{} = source
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// ProjectBuilder builds project.Definition instances for testing
type ProjectBuilder struct {
	overrides map[string]interface{}
}

// NewProjectBuilder creates a new ProjectBuilder starting from the defaults
func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{overrides: make(map[string]interface{})}
}

// With sets a dotted-path override
func (b *ProjectBuilder) With(path string, value interface{}) *ProjectBuilder {
	b.overrides[path] = value
	return b
}

// WithType sets buildMetadata.type
func (b *ProjectBuilder) WithType(projectType string) *ProjectBuilder {
	return b.With("buildMetadata.type", projectType)
}

// WithLanguage sets buildMetadata.language
func (b *ProjectBuilder) WithLanguage(language string) *ProjectBuilder {
	return b.With("buildMetadata.language", language)
}

// WithRequiredEnv sets buildMetadata.requiredEnv
func (b *ProjectBuilder) WithRequiredEnv(names ...string) *ProjectBuilder {
	values := make([]interface{}, 0, len(names))
	for _, name := range names {
		values = append(values, name)
	}
	return b.With("buildMetadata.requiredEnv", values)
}

// WithStaticFilePatterns sets buildMetadata.staticFilePatterns
func (b *ProjectBuilder) WithStaticFilePatterns(patterns ...string) *ProjectBuilder {
	values := make([]interface{}, 0, len(patterns))
	for _, p := range patterns {
		values = append(values, p)
	}
	return b.With("buildMetadata.staticFilePatterns", values)
}

// Map returns the raw definition
func (b *ProjectBuilder) Map() map[string]interface{} {
	return BuildProjectDefinition(b.overrides)
}

// Build returns the decoded definition
func (b *ProjectBuilder) Build(t testing.TB) *project.Definition {
	t.Helper()
	return BuildProject(t, b.overrides)
}
