package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/devantler-tech/backtool/pkg/cli/ui/asciiart"
	"github.com/devantler-tech/backtool/pkg/cli/ui/confirm"
	"github.com/devantler-tech/backtool/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/backtool/pkg/cli/ui/prompt"
	"github.com/devantler-tech/backtool/pkg/di"
	"github.com/devantler-tech/backtool/pkg/io/configmanager"
	"github.com/devantler-tech/backtool/pkg/svc/collector"
	"github.com/devantler-tech/backtool/pkg/svc/project"
	"github.com/devantler-tech/backtool/pkg/utils/notify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Persistent flag names.
const (
	VerboseFlag  = "verbose"
	NoBannerFlag = "no-banner"
)

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithRuntime(di.NewRuntime(), version, commit, date)
}

// NewRootCmdWithRuntime builds the root command on top of runtimeContainer.
func NewRootCmdWithRuntime(runtimeContainer *di.Runtime, version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backtool",
		Short: "Scaffold an Express REST API with JWT auth",
		Long: "backtool generates an Express REST API with JWT authentication backed by " +
			"MongoDB, MySQL, PostgreSQL or SQLite, in JavaScript or TypeScript.\n\n" +
			"Values not given as flags, BACKTOOL_* environment variables or in .backtool.yaml " +
			"are asked for interactively.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetOut(notify.NewStageSeparatingWriter(cmd.OutOrStdout()))

			verbose, _ := cmd.Flags().GetBool(VerboseFlag)
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().Bool(VerboseFlag, false, "log external commands")
	cmd.PersistentFlags().Bool(NoBannerFlag, false, "do not print the banner")

	manager := configmanager.NewCommandConfigManager(cmd)

	cmd.RunE = di.RunEWithRuntime(runtimeContainer, func(cmd *cobra.Command, injector di.Injector) error {
		return handleRootRunE(cmd, injector, manager)
	})

	cmd.AddCommand(NewDoctorCmd(runtimeContainer))
	cmd.AddCommand(NewSchemaCmd())

	return cmd
}

// Execute runs the provided root command and handles errors.
// An interrupt cancels the command's context.
func Execute(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	executor := errorhandler.NewExecutor()

	err := executor.ExecuteContext(ctx, cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

func handleRootRunE(cmd *cobra.Command, injector di.Injector, manager *configmanager.ConfigManager) error {
	input, err := manager.Load(configmanager.LoadOptions{})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	interactive := confirm.IsTTY()

	noBanner, _ := cmd.Flags().GetBool(NoBannerFlag)
	if interactive && !noBanner {
		asciiart.PrintBacktoolLogo(out)
	}

	var prompter prompt.Prompter
	if interactive {
		prompter, err = di.ResolvePrompter(injector)
		if err != nil {
			return err
		}
	}

	opts, err := collector.NewCollector(prompter, interactive).Collect(input)
	if err != nil {
		return fmt.Errorf("collect options: %w", err)
	}

	generator, err := newGenerator(injector, interactive)
	if err != nil {
		return err
	}

	_, err = generator.Run(cmd.Context(), opts)

	return err
}

func newGenerator(injector di.Injector, interactive bool) (*project.Generator, error) {
	streams, err := di.ResolveStreams(injector)
	if err != nil {
		return nil, err
	}

	prober, err := di.ResolveProber(injector)
	if err != nil {
		return nil, err
	}

	inst, err := di.ResolveInstaller(injector)
	if err != nil {
		return nil, err
	}

	git, err := di.ResolveGitInitializer(injector)
	if err != nil {
		return nil, err
	}

	confirmer, err := di.ResolveConfirmer(injector)
	if err != nil {
		return nil, err
	}

	return &project.Generator{
		Prober:      prober,
		Installer:   inst,
		Git:         git,
		Confirmer:   confirmer,
		Writer:      streams.Out,
		Interactive: interactive,
	}, nil
}
