package vcs

import (
	"context"
	"io"
	"path/filepath"

	"github.com/devantler-tech/backtool/pkg/fsutil"
	"github.com/devantler-tech/backtool/pkg/utils/notify"
	"github.com/devantler-tech/backtool/pkg/utils/runner"
)

// RepositoryInitializer creates a repository in a directory.
type RepositoryInitializer interface {
	// Init reports whether a new repository was created. Failures are reported as warnings.
	Init(ctx context.Context, dir string) bool
}

// GitInitializer runs git init.
type GitInitializer struct {
	runner runner.CommandRunner
	writer io.Writer
}

// NewGitInitializer creates a GitInitializer.
func NewGitInitializer(commandRunner runner.CommandRunner, writer io.Writer) *GitInitializer {
	return &GitInitializer{runner: commandRunner, writer: writer}
}

// Init runs git init in dir unless dir already contains a .git entry.
func (g *GitInitializer) Init(ctx context.Context, dir string) bool {
	exists, err := fsutil.Exists(filepath.Join(dir, ".git"))
	if err != nil {
		notify.Warningf(g.writer, "skipping git init: %v", err)

		return false
	}

	if exists {
		notify.Infof(g.writer, "git repository already exists, skipping git init")

		return false
	}

	_, err = g.runner.Run(ctx, runner.Command{Dir: dir, Name: "git", Args: []string{"init"}, Quiet: true})
	if err != nil {
		notify.Warningf(g.writer, "git init failed: %v", err)

		return false
	}

	notify.Successf(g.writer, "initialized git repository")

	return true
}
