package cmd

import (
	"fmt"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
	"github.com/devantler-tech/backtool/pkg/di"
	"github.com/devantler-tech/backtool/pkg/svc/toolchain"
	"github.com/devantler-tech/backtool/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command.
func NewDoctorCmd(runtimeContainer *di.Runtime) *cobra.Command {
	packageManager := v1alpha1.PackageManagerNPM

	cmd := &cobra.Command{
		Use:          "doctor",
		Short:        "Check that git, node and the package manager are installed",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	cmd.Flags().Var(&packageManager, "package-manager",
		fmt.Sprintf("package manager to check %v", packageManager.ValidValues()))

	cmd.RunE = di.RunEWithRuntime(runtimeContainer, func(cmd *cobra.Command, injector di.Injector) error {
		doctor, err := di.ResolveDoctor(injector)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		notify.Titlef(out, "🩺", "Checking toolchain")

		checks, err := doctor.Run(cmd.Context(), toolchain.Tools(packageManager))
		if err != nil {
			return err
		}

		return toolchain.Report(out, checks)
	})

	return cmd
}
