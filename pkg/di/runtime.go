// Package di wires backtool's services with samber/do.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency container handed to handlers.
type Injector = do.Injector

// Module registers dependencies on an injector.
type Module func(Injector) error

// Runtime creates a fresh injector per invocation and registers its modules on it.
type Runtime struct {
	modules []Module
}

// New creates a Runtime with the given base modules.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke registers the base modules, then extraModules, then calls handler.
// Nil modules are skipped. The injector is shut down when handler returns.
func (r *Runtime) Invoke(handler func(Injector) error, extraModules ...Module) error {
	injector := do.New()
	defer injector.Shutdown()

	modules := make([]Module, 0, len(r.modules)+len(extraModules))
	modules = append(modules, r.modules...)
	modules = append(modules, extraModules...)

	for _, module := range modules {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts a handler to cobra's RunE. The command's input and output
// streams are registered as Streams before the handler runs.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, injector Injector) error,
	extraModules ...Module,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		modules := append([]Module{ProvideStreams(cmd)}, extraModules...)

		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, injector)
		}, modules...)
	}
}
