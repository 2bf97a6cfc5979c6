package scaffolder

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
)

// Logical file names.
const (
	FileServer         = "server"
	FileUserModel      = "user-model"
	FileAuthController = "auth-controller"
	FileAuthRoutes     = "routes/auth"
	FileAuthMiddleware = "middleware/auth"
	FileEnv            = ".env"
	FileGitignore      = ".gitignore"
	FileTSConfig       = "tsconfig.json"
	FileExpressTypes   = "types/express.d.ts"
	FileEnvTypes       = "types/environment.d.ts"
	FilePackageJSON    = "package.json"
	FileDatabaseConfig = "database-config"
)

// templateFile maps a logical file to its template and destination.
type templateFile struct {
	name     string
	source   string
	dest     func(opts v1alpha1.Options) string
	required bool
	tsOnly   bool
}

// inSource places a file under the language's source directory.
func inSource(rel string) func(v1alpha1.Options) string {
	return func(opts v1alpha1.Options) string {
		return path.Join(opts.SourceDir(), rel+opts.Language.Ext())
	}
}

func fixed(rel string) func(v1alpha1.Options) string {
	return func(v1alpha1.Options) string { return rel }
}

//nolint:gochecknoglobals // static file table
var templateFiles = []templateFile{
	{
		name:     FileServer,
		source:   "server.tmpl",
		dest:     func(opts v1alpha1.Options) string { return "server" + opts.Language.Ext() },
		required: true,
	},
	{
		name:   FileUserModel,
		source: "models/user.tmpl",
		dest: func(opts v1alpha1.Options) string {
			return path.Join(opts.SourceDir(), "models", "user."+opts.Database.Tag()+opts.Language.Ext())
		},
		required: true,
	},
	{name: FileAuthController, source: "controllers/authController.tmpl", dest: inSource("controllers/authController"), required: true},
	{name: FileAuthRoutes, source: "routes/auth.tmpl", dest: inSource("routes/auth"), required: true},
	{name: FileAuthMiddleware, source: "middleware/auth.tmpl", dest: inSource("middleware/auth"), required: true},
	{name: FileEnv, source: "env.tmpl", dest: fixed(".env")},
	{name: FileGitignore, source: "gitignore.tmpl", dest: fixed(".gitignore")},
	{name: FileTSConfig, source: "tsconfig.json.tmpl", dest: fixed("tsconfig.json"), required: true, tsOnly: true},
	{
		name:     FileExpressTypes,
		source:   "types/express.d.ts.tmpl",
		dest:     fixed("types/express.d.ts"),
		required: true,
		tsOnly:   true,
	},
	{
		name:     FileEnvTypes,
		source:   "types/environment.d.ts.tmpl",
		dest:     fixed("types/environment.d.ts"),
		required: true,
		tsOnly:   true,
	},
}

// Plan is the full set of directories and file writes of one generation run.
type Plan struct {
	TargetDir   string              `json:"targetDir"`
	Directories []string            `json:"directories"`
	Files       []v1alpha1.FileTask `json:"files"`
	// MissingOptional lists optional templates that were not found and will not be written.
	MissingOptional []string `json:"missingOptional,omitempty"`
}

// BuildPlan decides source, destination and conflict policy of every file.
// It fails with ErrTemplateNotFound when a required template is missing; nothing is written.
func BuildPlan(opts v1alpha1.Options, templateSet fs.FS, policy v1alpha1.ConflictPolicy) (Plan, error) {
	plan := Plan{
		TargetDir:   opts.TargetDir(),
		Directories: Directories(opts),
	}

	for _, file := range templateFiles {
		if file.tsOnly && !opts.Language.IsTypeScript() {
			continue
		}

		_, err := fs.Stat(templateSet, file.source)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Plan{}, fmt.Errorf("failed to check template %s: %w", file.source, err)
			}

			if file.required {
				return Plan{}, fmt.Errorf("%w: %s (%s)", ErrTemplateNotFound, file.source, file.name)
			}

			plan.MissingOptional = append(plan.MissingOptional, file.source)

			continue
		}

		plan.Files = append(plan.Files, v1alpha1.FileTask{
			Name:     file.name,
			Source:   file.source,
			Dest:     file.dest(opts),
			Policy:   policy,
			Required: file.required,
		})
	}

	plan.Files = append(plan.Files,
		v1alpha1.FileTask{
			Name:     FileDatabaseConfig,
			Dest:     inSource("config/database")(opts),
			Policy:   policy,
			Required: true,
		},
		v1alpha1.FileTask{
			Name:     FilePackageJSON,
			Dest:     "package.json",
			Policy:   policy,
			Required: true,
		},
	)

	return plan, nil
}

// Directories returns the directories created before any file write, relative to the target.
func Directories(opts v1alpha1.Options) []string {
	src := opts.SourceDir()

	dirs := []string{
		path.Join(src, "models"),
		path.Join(src, "config"),
		path.Join(src, "controllers"),
		path.Join(src, "routes"),
		path.Join(src, "middleware"),
	}

	if opts.Language.IsTypeScript() {
		dirs = append(dirs, "dist", "types")
	}

	return dirs
}
