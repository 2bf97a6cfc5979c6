package di

import (
	"fmt"

	"github.com/devantler-tech/backtool/pkg/cli/ui/confirm"
	"github.com/devantler-tech/backtool/pkg/cli/ui/prompt"
	"github.com/devantler-tech/backtool/pkg/svc/installer"
	"github.com/devantler-tech/backtool/pkg/svc/probe"
	"github.com/devantler-tech/backtool/pkg/svc/toolchain"
	"github.com/devantler-tech/backtool/pkg/svc/vcs"
	"github.com/devantler-tech/backtool/pkg/utils/runner"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
)

// ResolveStreams retrieves the command streams.
func ResolveStreams(injector Injector) (Streams, error) {
	streams, err := do.Invoke[Streams](injector)
	if err != nil {
		return Streams{}, fmt.Errorf("resolve streams dependency: %w", err)
	}

	return streams, nil
}

// ResolveLogger retrieves the debug logger.
func ResolveLogger(injector Injector) (logrus.FieldLogger, error) {
	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve logger dependency: %w", err)
	}

	return logger, nil
}

// ResolveCommandRunner retrieves the external process runner.
func ResolveCommandRunner(injector Injector) (runner.CommandRunner, error) {
	commandRunner, err := do.Invoke[runner.CommandRunner](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve command runner dependency: %w", err)
	}

	return commandRunner, nil
}

// ResolvePrompter retrieves the interactive prompter.
func ResolvePrompter(injector Injector) (prompt.Prompter, error) {
	prompter, err := do.Invoke[prompt.Prompter](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve prompter dependency: %w", err)
	}

	return prompter, nil
}

// ResolveConfirmer retrieves the overwrite confirmer.
func ResolveConfirmer(injector Injector) (confirm.Confirmer, error) {
	confirmer, err := do.Invoke[confirm.Confirmer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve confirmer dependency: %w", err)
	}

	return confirmer, nil
}

// ResolveInstaller retrieves the dependency installer.
func ResolveInstaller(injector Injector) (installer.Installer, error) {
	inst, err := do.Invoke[installer.Installer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve installer dependency: %w", err)
	}

	return inst, nil
}

// ResolveGitInitializer retrieves the repository initializer.
func ResolveGitInitializer(injector Injector) (vcs.RepositoryInitializer, error) {
	git, err := do.Invoke[vcs.RepositoryInitializer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve git initializer dependency: %w", err)
	}

	return git, nil
}

// ResolveProber retrieves the database prober.
func ResolveProber(injector Injector) (probe.Prober, error) {
	prober, err := do.Invoke[probe.Prober](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve prober dependency: %w", err)
	}

	return prober, nil
}

// ResolveDoctor retrieves the toolchain doctor.
func ResolveDoctor(injector Injector) (*toolchain.Doctor, error) {
	doctor, err := do.Invoke[*toolchain.Doctor](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve doctor dependency: %w", err)
	}

	return doctor, nil
}
