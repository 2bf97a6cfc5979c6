package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
)

// ErrTemplateRender is returned when a template cannot be parsed or executed.
var ErrTemplateRender = errors.New("failed to render template")

//go:embed all:files
var embedded embed.FS

// Embedded returns the template tree shipped with the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		panic(fmt.Sprintf("embedded template tree: %v", err))
	}

	return sub
}

// Data is the value every template is executed with.
type Data struct {
	ProjectName   string
	Database      string
	DBTag         string
	TypeScript    bool
	ConnectionURI string
	// ImportExt is appended to relative imports (".js" for ES modules, empty for TypeScript).
	ImportExt string
	// SourcePrefix is the import prefix from the server entry to config, routes and friends.
	SourcePrefix string
	Profile      Profile
}

// NewData derives template data from resolved options.
func NewData(opts v1alpha1.Options) Data {
	data := Data{
		ProjectName:   opts.ProjectName,
		Database:      string(opts.Database),
		DBTag:         opts.Database.Tag(),
		TypeScript:    opts.Language.IsTypeScript(),
		ConnectionURI: opts.EffectiveConnectionURI(),
		ImportExt:     ".js",
		SourcePrefix:  "./",
		Profile:       ProfileFor(opts.Database),
	}

	if data.TypeScript {
		data.ImportExt = ""
		data.SourcePrefix = "./src/"
	}

	return data
}

// QuotedConnectionURI returns the connection URI escaped for a single-quoted JS string.
func (d Data) QuotedConnectionURI() string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`).Replace(d.ConnectionURI)
}

// Render reads the named template from fsys and executes it with data.
func Render(fsys fs.FS, name string, data Data) ([]byte, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrTemplateRender, name, err)
	}

	return RenderString(name, string(raw), data)
}

// RenderString executes an in-memory template.
func RenderString(name, text string, data Data) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrTemplateRender, name, err)
	}

	var buf bytes.Buffer

	err = tmpl.Execute(&buf, data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrTemplateRender, name, err)
	}

	return buf.Bytes(), nil
}
