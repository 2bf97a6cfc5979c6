package scaffolder

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
	"github.com/devantler-tech/backtool/pkg/cli/ui/confirm"
	"github.com/devantler-tech/backtool/pkg/fsutil"
	"github.com/devantler-tech/backtool/pkg/fsutil/generator"
	"github.com/devantler-tech/backtool/pkg/fsutil/generator/manifest"
	"github.com/devantler-tech/backtool/pkg/templates"
	"github.com/devantler-tech/backtool/pkg/utils/notify"
	"sigs.k8s.io/yaml"
)

// Scaffolder writes the project tree for a set of Options.
type Scaffolder struct {
	Templates      fs.FS
	PackageJSON    generator.Generator[v1alpha1.Options]
	DatabaseConfig generator.Generator[v1alpha1.Options]
	Confirmer      confirm.Confirmer
	Writer         io.Writer
}

// NewScaffolder creates a Scaffolder with the default manifest generators.
func NewScaffolder(templateSet fs.FS, confirmer confirm.Confirmer, writer io.Writer) *Scaffolder {
	return &Scaffolder{
		Templates:      templateSet,
		PackageJSON:    manifest.NewPackageJSONGenerator(),
		DatabaseConfig: manifest.NewDatabaseConfigGenerator(),
		Confirmer:      confirmer,
		Writer:         writer,
	}
}

// Result reports what a scaffolding run did.
type Result struct {
	Plan         Plan                  `json:"plan"`
	Created      []string              `json:"created,omitempty"`
	Overwritten  []string              `json:"overwritten,omitempty"`
	Skipped      []string              `json:"skipped,omitempty"`
	Dependencies manifest.Dependencies `json:"dependencies"`
	DryRun       bool                  `json:"dryRun,omitempty"`
}

// Wrote reports whether the file with the given logical name was written.
func (r Result) Wrote(name string) bool {
	for _, task := range r.Plan.Files {
		if task.Name == name {
			return slices.Contains(r.Created, task.Dest) || slices.Contains(r.Overwritten, task.Dest)
		}
	}

	return false
}

type renderedFile struct {
	task    v1alpha1.FileTask
	content []byte
}

// Scaffold plans, renders and writes the project.
//
// All templates are checked and rendered before the first write, so a missing
// required template or a render failure leaves the disk untouched. When
// interactive is false, existing files are skipped unless opts.Force is set.
func (s *Scaffolder) Scaffold(opts v1alpha1.Options, interactive bool) (Result, error) {
	policy := v1alpha1.ResolveConflictPolicy(opts.Force, interactive && s.Confirmer != nil)

	plan, err := BuildPlan(opts, s.Templates, policy)
	if err != nil {
		return Result{}, err
	}

	deps := manifest.ResolveDependencies(opts)

	err = deps.Validate()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrPackageJSONGeneration, err)
	}

	rendered, err := s.render(opts, plan)
	if err != nil {
		return Result{}, err
	}

	result := Result{Plan: plan, Dependencies: deps, DryRun: opts.DryRun}

	if opts.DryRun {
		return result, s.printPlan(result)
	}

	err = fsutil.EnsureDirs(plan.TargetDir, plan.Directories...)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create project directories: %w", err)
	}

	for _, file := range rendered {
		err = s.write(plan.TargetDir, file, &result)
		if err != nil {
			return result, err
		}
	}

	for _, source := range plan.MissingOptional {
		notify.Warningf(s.Writer, "template '%s' not found, skipping", source)
	}

	return result, nil
}

func (s *Scaffolder) render(opts v1alpha1.Options, plan Plan) ([]renderedFile, error) {
	data := templates.NewData(opts)
	rendered := make([]renderedFile, 0, len(plan.Files))

	for _, task := range plan.Files {
		var (
			content []byte
			err     error
		)

		switch task.Name {
		case FilePackageJSON:
			content, err = s.PackageJSON.Generate(opts)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrPackageJSONGeneration, err)
			}
		case FileDatabaseConfig:
			content, err = s.DatabaseConfig.Generate(opts)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrDatabaseConfigGeneration, err)
			}
		default:
			content, err = templates.Render(s.Templates, task.Source, data)
			if err != nil {
				return nil, fmt.Errorf("failed to render %s: %w", task.Name, err)
			}
		}

		rendered = append(rendered, renderedFile{task: task, content: content})
	}

	return rendered, nil
}

func (s *Scaffolder) write(root string, file renderedFile, result *Result) error {
	dest, err := fsutil.JoinWithin(root, file.task.Dest)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileWrite, file.task.Dest, err)
	}

	info, statErr := os.Stat(dest)
	existed := statErr == nil

	if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrFileWrite, file.task.Dest, statErr)
	}

	if existed {
		overwrite, err := s.shouldOverwrite(file.task)
		if err != nil {
			return err
		}

		if !overwrite {
			result.Skipped = append(result.Skipped, file.task.Dest)

			return nil
		}
	}

	err = fsutil.WriteFile(dest, file.content)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileWrite, file.task.Dest, err)
	}

	if existed {
		err = ensureOverwriteModTime(dest, info.ModTime())
		if err != nil {
			return err
		}

		result.Overwritten = append(result.Overwritten, file.task.Dest)
	} else {
		result.Created = append(result.Created, file.task.Dest)
	}

	s.notifyFileAction(file.task.Dest, existed)

	return nil
}

func (s *Scaffolder) shouldOverwrite(task v1alpha1.FileTask) (bool, error) {
	switch task.Policy {
	case v1alpha1.ConflictForce:
		return true, nil
	case v1alpha1.ConflictPrompt:
		ok, err := s.Confirmer.Confirm(fmt.Sprintf("'%s' already exists. Overwrite?", task.Dest), false)
		if err != nil {
			return false, fmt.Errorf("failed to confirm overwrite of %s: %w", task.Dest, err)
		}

		if !ok {
			notify.Warningf(s.Writer, "skipped '%s'", task.Dest)
		}

		return ok, nil
	default:
		notify.Warningf(s.Writer, "skipped '%s', file exists use --force to overwrite", task.Dest)

		return false, nil
	}
}

func (s *Scaffolder) printPlan(result Result) error {
	out, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal generation plan: %w", err)
	}

	notify.Infof(s.Writer, "dry run, nothing was written to '%s'", result.Plan.TargetDir)

	_, err = s.Writer.Write(out)
	if err != nil {
		return fmt.Errorf("failed to print generation plan: %w", err)
	}

	return nil
}

// ensureOverwriteModTime bumps the mod time of an overwritten file past its previous value,
// so tools that watch mtimes see the change even on coarse-grained filesystems.
func ensureOverwriteModTime(path string, previous time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if previous.IsZero() || info.ModTime().After(previous) {
		return nil
	}

	next := previous.Add(time.Millisecond)
	if now := time.Now(); now.After(next) {
		next = now
	}

	err = os.Chtimes(path, next, next)
	if err != nil {
		return fmt.Errorf("failed to update mod time for %s: %w", path, err)
	}

	return nil
}

func (s *Scaffolder) notifyFileAction(dest string, overwritten bool) {
	action := "created"
	if overwritten {
		action = "overwrote"
	}

	notify.Generatef(s.Writer, "%s '%s'", action, filepath.ToSlash(dest))
}
