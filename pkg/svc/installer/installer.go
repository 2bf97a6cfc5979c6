package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
	"github.com/devantler-tech/backtool/pkg/fsutil/generator/manifest"
	"github.com/devantler-tech/backtool/pkg/utils/notify"
	"github.com/devantler-tech/backtool/pkg/utils/runner"
	"github.com/mitchellh/go-wordwrap"
)

// ErrInstallFailed is returned when the package manager exits with an error.
var ErrInstallFailed = errors.New("dependency installation failed")

const hintWidth = 100

// Installer installs dependency lists into a project directory.
type Installer interface {
	Install(ctx context.Context, dir string, pm v1alpha1.PackageManager, deps manifest.Dependencies) error
}

// PackageManagerInstaller runs the package manager once for runtime and once for dev dependencies.
type PackageManagerInstaller struct {
	runner runner.CommandRunner
	writer io.Writer
}

// NewPackageManagerInstaller creates an installer backed by runner.
func NewPackageManagerInstaller(commandRunner runner.CommandRunner, writer io.Writer) *PackageManagerInstaller {
	return &PackageManagerInstaller{runner: commandRunner, writer: writer}
}

// Install runs the install commands in order and stops at the first failure.
// On failure the remaining manual commands are printed and ErrInstallFailed is returned.
func (i *PackageManagerInstaller) Install(
	ctx context.Context,
	dir string,
	pm v1alpha1.PackageManager,
	deps manifest.Dependencies,
) error {
	commands := Commands(dir, pm, deps)

	for idx, cmd := range commands {
		notify.Activityf(i.writer, "installing %s", describe(cmd))

		_, err := i.runner.Run(ctx, cmd)
		if err != nil {
			notify.Errorf(i.writer, "%s", ManualHint(dir, commands[idx:]))

			return fmt.Errorf("%w: %s: %w", ErrInstallFailed, cmd, err)
		}
	}

	notify.Successf(i.writer, "dependencies installed with %s", pm)

	return nil
}

// Commands returns the install commands for the runtime and dev dependency lists.
// Empty lists produce no command.
func Commands(dir string, pm v1alpha1.PackageManager, deps manifest.Dependencies) []runner.Command {
	var commands []runner.Command

	if len(deps.Runtime) > 0 {
		commands = append(commands, runner.Command{
			Dir:  dir,
			Name: string(pm),
			Args: append(installArgs(pm, false), manifest.Specs(deps.Runtime)...),
		})
	}

	if len(deps.Dev) > 0 {
		commands = append(commands, runner.Command{
			Dir:  dir,
			Name: string(pm),
			Args: append(installArgs(pm, true), manifest.Specs(deps.Dev)...),
		})
	}

	return commands
}

func installArgs(pm v1alpha1.PackageManager, dev bool) []string {
	switch pm {
	case v1alpha1.PackageManagerPNPM:
		if dev {
			return []string{"add", "-D"}
		}

		return []string{"add"}
	case v1alpha1.PackageManagerYarn:
		if dev {
			return []string{"add", "--dev"}
		}

		return []string{"add"}
	case v1alpha1.PackageManagerBun:
		if dev {
			return []string{"add", "-d"}
		}

		return []string{"add"}
	default:
		if dev {
			return []string{"install", "--save-dev"}
		}

		return []string{"install", "--save"}
	}
}

// ManualHint tells the user how to finish the installation by hand.
func ManualHint(dir string, commands []runner.Command) string {
	var builder strings.Builder

	builder.WriteString("dependency installation failed, run the following manually:")

	for _, cmd := range commands {
		builder.WriteString("\n")
		builder.WriteString(wordwrap.WrapString(fmt.Sprintf("cd %s && %s", dir, cmd), hintWidth))
	}

	return builder.String()
}

func describe(cmd runner.Command) string {
	for _, arg := range cmd.Args {
		if arg == "-D" || arg == "-d" || arg == "--dev" || arg == "--save-dev" {
			return "dev dependencies"
		}
	}

	return "dependencies"
}
