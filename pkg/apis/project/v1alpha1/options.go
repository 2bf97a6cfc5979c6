package v1alpha1

import (
	"path/filepath"
)

// Input holds the generation settings as read from flags, environment and config file.
// Zero values mean "unset"; the collector asks for missing required fields.
type Input struct {
	ProjectName     string         `json:"project,omitempty"          mapstructure:"project"          jsonschema:"description=Name of the generated project and its directory"`
	Database        Database       `json:"database,omitempty"         mapstructure:"database"         jsonschema:"description=Database backing the generated project"`
	Language        Language       `json:"language,omitempty"         mapstructure:"language"         jsonschema:"description=Source language of the generated project"`
	Force           bool           `json:"force,omitempty"            mapstructure:"force"            jsonschema:"description=Overwrite existing files without asking"`
	ConnectionURI   string         `json:"uri,omitempty"              mapstructure:"uri"              jsonschema:"description=Database connection string baked into the config file"`
	OutputDir       string         `json:"output,omitempty"           mapstructure:"output"           jsonschema:"description=Parent directory of the generated project"`
	TemplatesDir    string         `json:"templates,omitempty"        mapstructure:"templates"        jsonschema:"description=Directory with a custom template tree"`
	PackageManager  PackageManager `json:"package-manager,omitempty"  mapstructure:"package-manager"  jsonschema:"description=Package manager used to install dependencies"`
	SkipInstall     bool           `json:"skip-install,omitempty"     mapstructure:"skip-install"     jsonschema:"description=Do not install dependencies"`
	SkipGit         bool           `json:"skip-git,omitempty"         mapstructure:"skip-git"         jsonschema:"description=Do not initialize a git repository"`
	CheckConnection bool           `json:"check-connection,omitempty" mapstructure:"check-connection" jsonschema:"description=Ping the database before generating"`
	DryRun          bool           `json:"dry-run,omitempty"          mapstructure:"dry-run"          jsonschema:"description=Print the generation plan without writing files"`
}

// Options is the fully resolved, immutable set of generation settings.
// Every downstream decision is a function of Options.
type Options struct {
	ProjectName     string         `json:"projectName"`
	Database        Database       `json:"database"`
	Language        Language       `json:"language"`
	Force           bool           `json:"force"`
	ConnectionURI   string         `json:"connectionURI,omitempty"`
	OutputDir       string         `json:"outputDir"`
	TemplatesDir    string         `json:"templatesDir,omitempty"`
	PackageManager  PackageManager `json:"packageManager"`
	SkipInstall     bool           `json:"skipInstall"`
	SkipGit         bool           `json:"skipGit"`
	CheckConnection bool           `json:"checkConnection"`
	DryRun          bool           `json:"dryRun"`
}

// NewOptions merges the answered fields into the input and applies defaults.
func NewOptions(input Input, projectName string, database Database, language Language) Options {
	opts := Options{
		ProjectName:     projectName,
		Database:        database,
		Language:        language,
		Force:           input.Force,
		ConnectionURI:   input.ConnectionURI,
		OutputDir:       input.OutputDir,
		TemplatesDir:    input.TemplatesDir,
		PackageManager:  input.PackageManager,
		SkipInstall:     input.SkipInstall,
		SkipGit:         input.SkipGit,
		CheckConnection: input.CheckConnection,
		DryRun:          input.DryRun,
	}

	SetDefaults(&opts)

	return opts
}

// TargetDir returns the directory the project is generated into.
func (o Options) TargetDir() string {
	return filepath.Join(o.OutputDir, o.ProjectName)
}

// EffectiveConnectionURI returns the explicit connection URI, or the database default.
func (o Options) EffectiveConnectionURI() string {
	if o.ConnectionURI != "" {
		return o.ConnectionURI
	}

	return DefaultConnectionURI(o.Database, o.ProjectName)
}

// SourceDir returns the directory that holds config, models, controllers, routes and
// middleware, relative to the target directory.
func (o Options) SourceDir() string {
	if o.Language.IsTypeScript() {
		return "src"
	}

	return ""
}

// FileTask is a single planned file write.
type FileTask struct {
	// Name is the logical file name (e.g. "user-model").
	Name string `json:"name"`
	// Source is the template path inside the template set.
	Source string `json:"source"`
	// Dest is the absolute or output-relative destination path.
	Dest string `json:"dest"`
	// Policy decides what happens when Dest already exists.
	Policy ConflictPolicy `json:"policy"`
	// Required tasks abort generation when their template is missing.
	Required bool `json:"required"`
}
