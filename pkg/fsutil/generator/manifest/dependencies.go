package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
)

// Dependency is an npm package with a version range.
type Dependency struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Spec returns the name@range form accepted by every supported package manager.
func (d Dependency) Spec() string {
	return d.Name + "@" + d.Version
}

// Dependencies holds the runtime and development dependencies of a generated project.
type Dependencies struct {
	Runtime []Dependency `json:"runtime"`
	Dev     []Dependency `json:"dev"`
}

//nolint:gochecknoglobals // version table
var versions = map[string]string{
	"express":             "^4.21.2",
	"dotenv":              "^16.4.7",
	"cors":                "^2.8.5",
	"jsonwebtoken":        "^9.0.2",
	"bcryptjs":            "^2.4.3",
	"mongoose":            "^8.9.5",
	"mysql2":              "^3.12.0",
	"pg":                  "^8.13.1",
	"sqlite3":             "^5.1.7",
	"sqlite":              "^5.1.1",
	"nodemon":             "^3.1.9",
	"typescript":          "^5.7.3",
	"ts-node":             "^10.9.2",
	"@types/node":         "^22.10.7",
	"@types/express":      "^4.17.21",
	"@types/cors":         "^2.8.17",
	"@types/jsonwebtoken": "^9.0.7",
	"@types/bcryptjs":     "^2.4.6",
	"@types/pg":           "^8.11.10",
}

//nolint:gochecknoglobals // driver table
var drivers = map[v1alpha1.Database][]string{
	v1alpha1.DatabaseMongoDB:    {"mongoose"},
	v1alpha1.DatabaseMySQL:      {"mysql2"},
	v1alpha1.DatabasePostgreSQL: {"pg"},
	v1alpha1.DatabaseSQLite:     {"sqlite3", "sqlite"},
}

// ResolveDependencies returns the dependency lists for the selected database and language.
func ResolveDependencies(opts v1alpha1.Options) Dependencies {
	runtime := []string{"express", "dotenv", "cors", "jsonwebtoken"}
	runtime = append(runtime, drivers[opts.Database]...)
	runtime = append(runtime, "bcryptjs")

	dev := []string{"nodemon"}

	if opts.Language.IsTypeScript() {
		dev = append(dev,
			"typescript",
			"ts-node",
			"@types/node",
			"@types/express",
			"@types/cors",
			"@types/jsonwebtoken",
			"@types/bcryptjs",
		)

		if opts.Database == v1alpha1.DatabasePostgreSQL {
			dev = append(dev, "@types/pg")
		}
	}

	return Dependencies{Runtime: withVersions(runtime), Dev: withVersions(dev)}
}

// Validate checks that every version is a parsable semver constraint.
func (d Dependencies) Validate() error {
	for _, dep := range append(append([]Dependency{}, d.Runtime...), d.Dev...) {
		_, err := semver.NewConstraint(dep.Version)
		if err != nil {
			return fmt.Errorf("%w: %s %q: %w", ErrInvalidVersionRange, dep.Name, dep.Version, err)
		}
	}

	return nil
}

// Specs returns the name@range forms of deps.
func Specs(deps []Dependency) []string {
	specs := make([]string, 0, len(deps))
	for _, dep := range deps {
		specs = append(specs, dep.Spec())
	}

	return specs
}

func withVersions(names []string) []Dependency {
	deps := make([]Dependency, 0, len(names))
	for _, name := range names {
		deps = append(deps, Dependency{Name: name, Version: versions[name]})
	}

	return deps
}
