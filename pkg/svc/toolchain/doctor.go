package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
	"github.com/devantler-tech/backtool/pkg/utils/notify"
	"github.com/devantler-tech/backtool/pkg/utils/runner"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrToolchainUnhealthy is returned when a required tool is missing or too old.
	ErrToolchainUnhealthy = errors.New("toolchain check failed")

	// ErrNoVersion is returned when a tool's output contains no version number.
	ErrNoVersion = errors.New("no version found in output")
)

var versionPattern = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z.-]+)?)`)

// Tool is an executable to check.
type Tool struct {
	Name     string
	Minimum  string
	Required bool
}

// Check is the outcome of checking one Tool.
type Check struct {
	Tool    Tool
	Found   bool
	Version *semver.Version
	Err     error
}

// OK reports whether the tool was found in a supported version.
func (c Check) OK() bool {
	return c.Found && c.Err == nil
}

// Tools returns the tools a generated project needs, in report order.
func Tools(pm v1alpha1.PackageManager) []Tool {
	return []Tool{
		{Name: "git", Minimum: "2.0.0"},
		{Name: "node", Minimum: "18.0.0", Required: true},
		{Name: string(pm), Minimum: minimumFor(pm), Required: true},
	}
}

func minimumFor(pm v1alpha1.PackageManager) string {
	switch pm {
	case v1alpha1.PackageManagerPNPM:
		return "8.0.0"
	case v1alpha1.PackageManagerYarn:
		return "1.22.0"
	case v1alpha1.PackageManagerBun:
		return "1.0.0"
	default:
		return "9.0.0"
	}
}

// ParseVersion extracts the first semantic version from a --version output,
// e.g. "git version 2.43.0" or "v20.11.1".
func ParseVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindStringSubmatch(output)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoVersion, output)
	}

	version, err := semver.NewVersion(match[1])
	if err != nil {
		return nil, fmt.Errorf("parse version %q: %w", match[1], err)
	}

	return version, nil
}

// Doctor runs tool checks.
type Doctor struct {
	runner runner.CommandRunner
}

// NewDoctor creates a Doctor.
func NewDoctor(commandRunner runner.CommandRunner) *Doctor {
	return &Doctor{runner: commandRunner}
}

// Run checks every tool concurrently. Results keep the order of tools.
func (d *Doctor) Run(ctx context.Context, tools []Tool) ([]Check, error) {
	checks := make([]Check, len(tools))

	group, groupCtx := errgroup.WithContext(ctx)

	for idx, tool := range tools {
		group.Go(func() error {
			checks[idx] = d.check(groupCtx, tool)

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("check toolchain: %w", err)
	}

	return checks, nil
}

func (d *Doctor) check(ctx context.Context, tool Tool) Check {
	check := Check{Tool: tool}

	result, err := d.runner.Run(ctx, runner.Command{Name: tool.Name, Args: []string{"--version"}, Quiet: true})
	if err != nil {
		if errors.Is(err, runner.ErrCommandNotFound) {
			return check
		}

		check.Found = true
		check.Err = err

		return check
	}

	check.Found = true

	version, err := ParseVersion(result.Stdout + result.Stderr)
	if err != nil {
		check.Err = err

		return check
	}

	check.Version = version

	constraint, err := semver.NewConstraint(">= " + tool.Minimum)
	if err != nil {
		check.Err = fmt.Errorf("invalid minimum version %q: %w", tool.Minimum, err)

		return check
	}

	if !constraint.Check(version) {
		check.Err = fmt.Errorf("%s is older than %s", version, tool.Minimum)
	}

	return check
}

// Report prints one line per check and returns ErrToolchainUnhealthy when a required tool fails.
func Report(writer io.Writer, checks []Check) error {
	var failed []string

	for _, check := range checks {
		switch {
		case check.OK():
			notify.Successf(writer, "%s %s", check.Tool.Name, check.Version)
		case !check.Found && check.Tool.Required:
			notify.Errorf(writer, "%s not found (requires >= %s)", check.Tool.Name, check.Tool.Minimum)
		case !check.Found:
			notify.Warningf(writer, "%s not found", check.Tool.Name)
		case check.Tool.Required:
			notify.Errorf(writer, "%s: %v", check.Tool.Name, check.Err)
		default:
			notify.Warningf(writer, "%s: %v", check.Tool.Name, check.Err)
		}

		if !check.OK() && check.Tool.Required {
			failed = append(failed, check.Tool.Name)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: %v", ErrToolchainUnhealthy, failed)
	}

	return nil
}
