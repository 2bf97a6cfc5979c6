package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
)

// PackageJSON is the subset of the npm manifest written for a generated project.
// Field order matches the order npm itself writes.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Type            string            `json:"type"`
	Scripts         map[string]string `json:"scripts"`
	Keywords        []string          `json:"keywords"`
	Author          string            `json:"author"`
	License         string            `json:"license"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// PackageJSONGenerator generates package.json content from resolved options.
type PackageJSONGenerator struct{}

// NewPackageJSONGenerator creates a package.json generator.
func NewPackageJSONGenerator() *PackageJSONGenerator {
	return &PackageJSONGenerator{}
}

// Build assembles the manifest without serializing it.
func (g *PackageJSONGenerator) Build(opts v1alpha1.Options) (PackageJSON, error) {
	deps := ResolveDependencies(opts)

	err := deps.Validate()
	if err != nil {
		return PackageJSON{}, err
	}

	pkg := PackageJSON{
		Name:            opts.ProjectName,
		Version:         "1.0.0",
		Description:     fmt.Sprintf("Express REST API with JWT authentication backed by %s", opts.Database),
		Main:            "server.js",
		Type:            "module",
		Scripts:         map[string]string{"start": "node server.js", "dev": "nodemon server.js"},
		Keywords:        []string{},
		License:         "ISC",
		Dependencies:    toMap(deps.Runtime),
		DevDependencies: toMap(deps.Dev),
	}

	if opts.Language.IsTypeScript() {
		pkg.Main = "dist/server.js"
		pkg.Type = "commonjs"
		pkg.Scripts = map[string]string{
			"start": "ts-node server.ts",
			"dev":   "nodemon --exec ts-node server.ts",
			"build": "tsc",
		}
	}

	return pkg, nil
}

// Generate renders package.json with two-space indentation and a trailing newline.
func (g *PackageJSONGenerator) Generate(opts v1alpha1.Options) ([]byte, error) {
	pkg, err := g.Build(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPackageJSONGeneration, err)
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	err = enc.Encode(pkg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPackageJSONGeneration, err)
	}

	return buf.Bytes(), nil
}

func toMap(deps []Dependency) map[string]string {
	out := make(map[string]string, len(deps))
	for _, dep := range deps {
		out[dep.Name] = dep.Version
	}

	return out
}
