package configmanager

import (
	"errors"
	"fmt"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrFlagBinding is returned when a flag cannot be bound to its viper key.
var ErrFlagBinding = errors.New("failed to bind flag")

// Flag names. They double as config file keys and, upper-cased with dashes turned into
// underscores, as BACKTOOL_* environment variable suffixes.
const (
	FlagProject         = "project"
	FlagDatabase        = "database"
	FlagLanguage        = "language"
	FlagForce           = "force"
	FlagURI             = "uri"
	FlagOutput          = "output"
	FlagTemplates       = "templates"
	FlagPackageManager  = "package-manager"
	FlagSkipInstall     = "skip-install"
	FlagSkipGit         = "skip-git"
	FlagCheckConnection = "check-connection"
	FlagDryRun          = "dry-run"
)

type flagValues struct {
	database       v1alpha1.Database
	language       v1alpha1.Language
	packageManager v1alpha1.PackageManager
}

// AddFlags registers the generation flags on cmd and binds them to viper.
func (m *ConfigManager) AddFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP(FlagProject, "p", "", "name of the project and its directory")
	flags.VarP(&m.flags.database, FlagDatabase, "d",
		fmt.Sprintf("database %v", m.flags.database.ValidValues()))
	flags.VarP(&m.flags.language, FlagLanguage, "l",
		fmt.Sprintf("language %v", m.flags.language.ValidValues()))
	flags.BoolP(FlagForce, "f", false, "overwrite existing files without asking")
	flags.StringP(FlagURI, "u", "", "database connection string written to the config file")
	flags.StringP(FlagOutput, "o", v1alpha1.DefaultOutputDir, "parent directory of the generated project")
	flags.String(FlagTemplates, "", "directory with a custom template tree")

	m.flags.packageManager = v1alpha1.PackageManagerNPM
	flags.Var(&m.flags.packageManager, FlagPackageManager,
		fmt.Sprintf("package manager %v", m.flags.packageManager.ValidValues()))

	flags.Bool(FlagSkipInstall, false, "do not install dependencies")
	flags.Bool(FlagSkipGit, false, "do not initialize a git repository")
	flags.Bool(FlagCheckConnection, false, "check that the database is reachable before generating")
	flags.Bool(FlagDryRun, false, "print the generation plan without writing files")
	flags.String(ConfigFlag, "", "config file (default .backtool.yaml in the working or home directory)")

	err := m.BindFlags(flags,
		FlagProject, FlagDatabase, FlagLanguage, FlagForce, FlagURI, FlagOutput, FlagTemplates,
		FlagPackageManager, FlagSkipInstall, FlagSkipGit, FlagCheckConnection, FlagDryRun,
	)
	if err != nil {
		panic(err) // flags registered above always exist
	}
}

// BindFlags binds the named flags of flags to the viper keys of the same name.
func (m *ConfigManager) BindFlags(flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		err := m.Viper.BindPFlag(name, flags.Lookup(name))
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrFlagBinding, name, err)
		}
	}

	return nil
}
