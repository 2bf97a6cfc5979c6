package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrCommandNotFound is returned when the executable is not on PATH.
var ErrCommandNotFound = errors.New("command not found")

// CommandResult captures the stdout and stderr collected during a process execution.
// Both fields contain the complete output, including output produced before a failure.
type CommandResult struct {
	Stdout string
	Stderr string
}

// Command describes one external process invocation.
type Command struct {
	// Dir is the working directory. Empty means the current directory.
	Dir  string
	Name string
	Args []string
	// Quiet captures output without echoing it to the console.
	Quiet bool
}

// String renders the command line as a user would type it.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// CommandRunner executes external processes while capturing their output.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}

// ExecCommandRunner runs processes with os/exec, echoing their output to the
// configured writers in real time.
type ExecCommandRunner struct {
	stdout io.Writer
	stderr io.Writer
	logger logrus.FieldLogger
}

// NewExecCommandRunner creates a runner. Nil writers default to os.Stdout and os.Stderr;
// a nil logger defaults to the logrus standard logger.
func NewExecCommandRunner(stdout, stderr io.Writer, logger logrus.FieldLogger) *ExecCommandRunner {
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &ExecCommandRunner{stdout: stdout, stderr: stderr, logger: logger}
}

// Run executes the command and returns its captured output.
// A missing executable yields ErrCommandNotFound.
func (r *ExecCommandRunner) Run(ctx context.Context, cmd Command) (CommandResult, error) {
	log := r.logger.WithFields(logrus.Fields{"command": cmd.String(), "dir": cmd.Dir})

	path, err := exec.LookPath(cmd.Name)
	if err != nil {
		log.Debug("executable lookup failed")

		return CommandResult{}, fmt.Errorf("%w: %s", ErrCommandNotFound, cmd.Name)
	}

	var outBuf, errBuf bytes.Buffer

	//nolint:gosec // command and arguments are assembled by this program
	proc := exec.CommandContext(ctx, path, cmd.Args...)
	proc.Dir = cmd.Dir

	if cmd.Quiet {
		proc.Stdout = &outBuf
		proc.Stderr = &errBuf
	} else {
		proc.Stdout = io.MultiWriter(&outBuf, r.stdout)
		proc.Stderr = io.MultiWriter(&errBuf, r.stderr)
	}

	started := time.Now()

	log.Debug("running external command")

	runErr := proc.Run()

	result := CommandResult{Stdout: outBuf.String(), Stderr: errBuf.String()}

	log = log.WithField("duration", time.Since(started).Round(time.Millisecond))

	if runErr != nil {
		log.WithError(runErr).Debug("external command failed")

		return result, fmt.Errorf("%s: %w", cmd.String(), runErr)
	}

	log.Debug("external command finished")

	return result, nil
}
