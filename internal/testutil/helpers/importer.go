package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/douhashi/buildutils/internal/module"
)

// ErrUndeclaredDependency is returned by a ModuleImporter when a mock key has
// no declared path.
var ErrUndeclaredDependency = errors.New("undeclared dependency")

// UndeclaredDependencyError reports the mock key that had no declared path
type UndeclaredDependencyError struct {
	Key string
}

func (e *UndeclaredDependencyError) Error() string {
	return fmt.Sprintf("%s: no path declared for mock key %q", ErrUndeclaredDependency, e.Key)
}

func (e *UndeclaredDependencyError) Unwrap() error {
	return ErrUndeclaredDependency
}

// ModuleImporter loads a module with some of its dependencies replaced by
// mocks. The keys of mockDefs are the symbolic keys of the path definitions.
type ModuleImporter func(ctx context.Context, mockDefs map[string]interface{}) (interface{}, error)

// ImporterOption configures CreateModuleImporter
type ImporterOption func(*importerOptions)

type importerOptions struct {
	registry *module.Registry
}

// WithRegistry loads modules from registry instead of module.Default
func WithRegistry(registry *module.Registry) ImporterOption {
	return func(o *importerOptions) {
		o.registry = registry
	}
}

// CreateModuleImporter returns a ModuleImporter for the module at modulePath.
//
// pathDefinitions maps symbolic keys to dependency paths; paths starting with
// src/ are resolved against module.BaseDir. When memberName is empty the
// importer returns the module's module.Exports, otherwise only that member.
//
// Example:
//
//	importer := helpers.CreateModuleImporter("src/task-factory", map[string]string{
//	    "buildTaskBuilderModule": "src/task-builders/build-task-builder",
//	}, "TaskFactory")
//
//	factory, err := importer(ctx, map[string]interface{}{
//	    "buildTaskBuilderModule": module.Exports{"BuildTaskBuilder": mock.Constructor()},
//	})
func CreateModuleImporter(modulePath string, pathDefinitions map[string]string, memberName string, opts ...ImporterOption) ModuleImporter {
	options := &importerOptions{registry: module.Default}
	for _, opt := range opts {
		opt(options)
	}

	return func(ctx context.Context, mockDefs map[string]interface{}) (interface{}, error) {
		deps := make(module.Dependencies, len(mockDefs))
		for key, value := range mockDefs {
			path, ok := pathDefinitions[key]
			if !ok {
				return nil, &UndeclaredDependencyError{Key: key}
			}
			deps[module.ResolvePath(path)] = value
		}

		exports, err := options.registry.Load(ctx, modulePath, deps)
		if err != nil {
			return nil, err
		}
		if memberName == "" {
			return exports, nil
		}
		return exports.Member(memberName)
	}
}
