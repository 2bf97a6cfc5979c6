package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
	"github.com/devantler-tech/backtool/pkg/cli/ui/confirm"
	"github.com/devantler-tech/backtool/pkg/cli/ui/markdown"
	"github.com/devantler-tech/backtool/pkg/fsutil/scaffolder"
	"github.com/devantler-tech/backtool/pkg/svc/installer"
	"github.com/devantler-tech/backtool/pkg/svc/probe"
	"github.com/devantler-tech/backtool/pkg/svc/vcs"
	"github.com/devantler-tech/backtool/pkg/utils/notify"
)

// Generator wires the generation steps together.
type Generator struct {
	Prober      probe.Prober
	Installer   installer.Installer
	Git         vcs.RepositoryInitializer
	Confirmer   confirm.Confirmer
	Markdown    *markdown.Renderer
	Writer      io.Writer
	Interactive bool
}

// Run generates the project described by opts.
func (g *Generator) Run(ctx context.Context, opts v1alpha1.Options) (scaffolder.Result, error) {
	notify.Titlef(g.Writer, "🚀", "Generating %s (%s, %s)", opts.ProjectName, opts.Database, opts.Language)

	if opts.CheckConnection {
		g.probe(ctx, opts)
	}

	templateSet, err := scaffolder.OpenTemplates(opts.TemplatesDir)
	if err != nil {
		return scaffolder.Result{}, err
	}

	s := scaffolder.NewScaffolder(templateSet, g.Confirmer, g.Writer)

	result, err := s.Scaffold(opts, g.Interactive)
	if err != nil {
		return result, fmt.Errorf("scaffold project: %w", err)
	}

	if opts.DryRun {
		return result, nil
	}

	installed := false

	if !opts.SkipInstall && g.Installer != nil {
		notify.Titlef(g.Writer, "📦", "Installing dependencies")

		err = g.Installer.Install(ctx, opts.TargetDir(), opts.PackageManager, result.Dependencies)
		if err != nil {
			return result, err //nolint:wrapcheck // already carries ErrInstallFailed
		}

		installed = true
	}

	if !opts.SkipGit && g.Git != nil {
		g.Git.Init(ctx, opts.TargetDir())
	}

	notify.Successf(g.Writer, "project '%s' generated in %s", opts.ProjectName, opts.TargetDir())

	renderer := g.Markdown
	if renderer == nil {
		renderer = markdown.NewRenderer(g.Writer)
	}

	err = renderer.Fprint(g.Writer, NextSteps(opts, installed))
	if err != nil {
		return result, fmt.Errorf("print next steps: %w", err)
	}

	return result, nil
}

func (g *Generator) probe(ctx context.Context, opts v1alpha1.Options) {
	if g.Prober == nil {
		return
	}

	notify.Activityf(g.Writer, "checking %s connection", opts.Database)

	err := g.Prober.Probe(ctx, opts.Database, opts.EffectiveConnectionURI(), opts.TargetDir())

	switch {
	case err == nil:
		notify.Successf(g.Writer, "%s is reachable", opts.Database)
	case errors.Is(err, probe.ErrSQLiteFileMissing):
		notify.Infof(g.Writer, "sqlite database file will be created on first start")
	default:
		notify.Warningf(g.Writer, "connection check failed: %v", err)
	}
}

// NextSteps returns the Markdown summary printed after a successful generation.
func NextSteps(opts v1alpha1.Options, installed bool) string {
	var builder strings.Builder

	step := 1
	add := func(format string, args ...any) {
		_, _ = fmt.Fprintf(&builder, "%d. "+format+"\n", append([]any{step}, args...)...)
		step++
	}

	builder.WriteString("## Next steps\n\n")

	add("`cd %s`", opts.TargetDir())

	if !installed {
		add("`%s install`", opts.PackageManager)
	}

	add("Set `JWT_SECRET` in `.env`")

	if opts.Database != v1alpha1.DatabaseSQLite {
		add("Make sure %s is running at `%s` or set `DATABASE_URL`", opts.Database, opts.EffectiveConnectionURI())
	}

	if opts.Language.IsTypeScript() {
		add("`%s run build` to compile into `dist/`", opts.PackageManager)
	}

	add("`%s run dev` to start the server on port 8000", opts.PackageManager)

	builder.WriteString("\nRoutes: `POST /api/auth/signup`, `POST /api/auth/login`, `GET /api/auth/me`.\n")

	return builder.String()
}
