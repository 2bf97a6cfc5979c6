package di

import (
	"io"

	"github.com/devantler-tech/backtool/pkg/cli/ui/confirm"
	"github.com/devantler-tech/backtool/pkg/cli/ui/prompt"
	"github.com/devantler-tech/backtool/pkg/svc/installer"
	"github.com/devantler-tech/backtool/pkg/svc/probe"
	"github.com/devantler-tech/backtool/pkg/svc/toolchain"
	"github.com/devantler-tech/backtool/pkg/svc/vcs"
	"github.com/devantler-tech/backtool/pkg/utils/runner"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Streams are the input and output streams of the running command.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewRuntime constructs the runtime used by the root command.
// Every service is lazy and built on first resolution.
func NewRuntime() *Runtime {
	return New(
		provideLogger,
		provideCommandRunner,
		providePrompter,
		provideConfirmer,
		provideInstaller,
		provideGitInitializer,
		provideProber,
		provideDoctor,
	)
}

// ProvideStreams registers the streams of cmd.
func ProvideStreams(cmd *cobra.Command) Module {
	return func(i Injector) error {
		do.ProvideValue(i, Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()})

		return nil
	}
}

func provideLogger(i Injector) error {
	do.Provide(i, func(Injector) (logrus.FieldLogger, error) {
		return logrus.StandardLogger(), nil
	})

	return nil
}

func provideCommandRunner(i Injector) error {
	do.Provide(i, func(i Injector) (runner.CommandRunner, error) {
		streams, err := ResolveStreams(i)
		if err != nil {
			return nil, err
		}

		logger, err := ResolveLogger(i)
		if err != nil {
			return nil, err
		}

		return runner.NewExecCommandRunner(streams.Out, streams.Err, logger), nil
	})

	return nil
}

func providePrompter(i Injector) error {
	do.Provide(i, func(i Injector) (prompt.Prompter, error) {
		streams, err := ResolveStreams(i)
		if err != nil {
			return nil, err
		}

		return prompt.NewTeaPrompter(streams.In, streams.Out), nil
	})

	return nil
}

func provideConfirmer(i Injector) error {
	do.Provide(i, func(i Injector) (confirm.Confirmer, error) {
		streams, err := ResolveStreams(i)
		if err != nil {
			return nil, err
		}

		return confirm.NewStdinConfirmer(streams.Out), nil
	})

	return nil
}

func provideInstaller(i Injector) error {
	do.Provide(i, func(i Injector) (installer.Installer, error) {
		streams, err := ResolveStreams(i)
		if err != nil {
			return nil, err
		}

		commandRunner, err := ResolveCommandRunner(i)
		if err != nil {
			return nil, err
		}

		return installer.NewPackageManagerInstaller(commandRunner, streams.Out), nil
	})

	return nil
}

func provideGitInitializer(i Injector) error {
	do.Provide(i, func(i Injector) (vcs.RepositoryInitializer, error) {
		streams, err := ResolveStreams(i)
		if err != nil {
			return nil, err
		}

		commandRunner, err := ResolveCommandRunner(i)
		if err != nil {
			return nil, err
		}

		return vcs.NewGitInitializer(commandRunner, streams.Out), nil
	})

	return nil
}

func provideProber(i Injector) error {
	do.Provide(i, func(Injector) (probe.Prober, error) {
		return probe.NewDatabaseProber(), nil
	})

	return nil
}

func provideDoctor(i Injector) error {
	do.Provide(i, func(i Injector) (*toolchain.Doctor, error) {
		commandRunner, err := ResolveCommandRunner(i)
		if err != nil {
			return nil, err
		}

		return toolchain.NewDoctor(commandRunner), nil
	})

	return nil
}
