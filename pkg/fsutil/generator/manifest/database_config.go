package manifest

import (
	_ "embed"
	"fmt"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
	"github.com/devantler-tech/backtool/pkg/templates"
)

//go:embed database.tmpl
var databaseConfigTemplate string

// DatabaseConfigGenerator generates the config/database source file.
type DatabaseConfigGenerator struct{}

// NewDatabaseConfigGenerator creates a database config generator.
func NewDatabaseConfigGenerator() *DatabaseConfigGenerator {
	return &DatabaseConfigGenerator{}
}

// FileName returns the config file name relative to the source directory.
func (g *DatabaseConfigGenerator) FileName(opts v1alpha1.Options) string {
	return "config/database" + opts.Language.Ext()
}

// Generate renders the connection snippet for the selected database.
func (g *DatabaseConfigGenerator) Generate(opts v1alpha1.Options) ([]byte, error) {
	out, err := templates.RenderString("database", databaseConfigTemplate, templates.NewData(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseConfigGeneration, err)
	}

	return out, nil
}
