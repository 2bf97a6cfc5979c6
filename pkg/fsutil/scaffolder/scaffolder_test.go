package scaffolder_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
	"github.com/devantler-tech/backtool/pkg/fsutil/scaffolder"
	"github.com/devantler-tech/backtool/pkg/templates"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errGenerateFailure = errors.New("generate failure")

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

type fakeConfirmer struct {
	answer bool
	calls  []string
}

func (f *fakeConfirmer) Confirm(question string, _ bool) (bool, error) {
	f.calls = append(f.calls, question)

	return f.answer, nil
}

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(model v1alpha1.Options) ([]byte, error) {
	args := m.Called(model)

	content, _ := args.Get(0).([]byte)

	return content, args.Error(1)
}

func newOptions(
	t *testing.T,
	database v1alpha1.Database,
	language v1alpha1.Language,
	input v1alpha1.Input,
) v1alpha1.Options {
	t.Helper()

	if input.OutputDir == "" {
		input.OutputDir = t.TempDir()
	}

	return v1alpha1.NewOptions(input, "my-api", database, language)
}

func newScaffolder(confirmer *fakeConfirmer) (*scaffolder.Scaffolder, *bytes.Buffer) {
	var out bytes.Buffer

	s := scaffolder.NewScaffolder(templates.Embedded(), nil, &out)
	if confirmer != nil {
		s.Confirmer = confirmer
	}

	return s, &out
}

func TestScaffold_JavaScriptTree(t *testing.T) {
	t.Parallel()

	opts := newOptions(t, v1alpha1.DatabaseMongoDB, v1alpha1.LanguageJavaScript, v1alpha1.Input{})
	s, out := newScaffolder(nil)

	result, err := s.Scaffold(opts, false)
	require.NoError(t, err)

	for _, rel := range []string{
		"server.js",
		"models/user.mongodb.js",
		"controllers/authController.js",
		"routes/auth.js",
		"middleware/auth.js",
		"config/database.js",
		"package.json",
		".env",
		".gitignore",
	} {
		assert.FileExists(t, filepath.Join(opts.TargetDir(), rel))
	}

	for _, dir := range []string{"src", "dist", "types"} {
		assert.NoDirExists(t, filepath.Join(opts.TargetDir(), dir))
	}

	assert.NoFileExists(t, filepath.Join(opts.TargetDir(), "tsconfig.json"))
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.Overwritten)
	assert.True(t, result.Wrote(scaffolder.FileUserModel))
	assert.Contains(t, out.String(), "created 'package.json'")
}

func TestScaffold_TypeScriptTree(t *testing.T) {
	t.Parallel()

	opts := newOptions(t, v1alpha1.DatabasePostgreSQL, v1alpha1.LanguageTypeScript, v1alpha1.Input{})
	s, _ := newScaffolder(nil)

	_, err := s.Scaffold(opts, false)
	require.NoError(t, err)

	for _, rel := range []string{
		"server.ts",
		"src/models/user.postgresql.ts",
		"src/controllers/authController.ts",
		"src/routes/auth.ts",
		"src/middleware/auth.ts",
		"src/config/database.ts",
		"tsconfig.json",
		"types/express.d.ts",
		"types/environment.d.ts",
		"package.json",
	} {
		assert.FileExists(t, filepath.Join(opts.TargetDir(), rel))
	}

	assert.DirExists(t, filepath.Join(opts.TargetDir(), "dist"))
	assert.NoDirExists(t, filepath.Join(opts.TargetDir(), "models"))
}

func TestBuildPlan_ModelFileNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		database v1alpha1.Database
		language v1alpha1.Language
		want     string
	}{
		{v1alpha1.DatabaseMongoDB, v1alpha1.LanguageJavaScript, "models/user.mongodb.js"},
		{v1alpha1.DatabaseMySQL, v1alpha1.LanguageJavaScript, "models/user.mysql.js"},
		{v1alpha1.DatabasePostgreSQL, v1alpha1.LanguageJavaScript, "models/user.postgresql.js"},
		{v1alpha1.DatabaseSQLite, v1alpha1.LanguageJavaScript, "models/user.sqlite.js"},
		{v1alpha1.DatabaseMongoDB, v1alpha1.LanguageTypeScript, "src/models/user.mongodb.ts"},
		{v1alpha1.DatabaseSQLite, v1alpha1.LanguageTypeScript, "src/models/user.sqlite.ts"},
	}

	for _, test := range tests {
		t.Run(string(test.database)+"_"+string(test.language), func(t *testing.T) {
			t.Parallel()

			opts := v1alpha1.NewOptions(v1alpha1.Input{}, "my-api", test.database, test.language)

			plan, err := scaffolder.BuildPlan(opts, templates.Embedded(), v1alpha1.ConflictSkip)
			require.NoError(t, err)

			var dest string

			for _, task := range plan.Files {
				if task.Name == scaffolder.FileUserModel {
					dest = task.Dest
				}
			}

			assert.Equal(t, test.want, dest)
		})
	}
}

func TestBuildPlan_Snapshot(t *testing.T) {
	t.Parallel()

	for _, language := range []v1alpha1.Language{v1alpha1.LanguageJavaScript, v1alpha1.LanguageTypeScript} {
		t.Run(string(language), func(t *testing.T) {
			t.Parallel()

			opts := v1alpha1.NewOptions(v1alpha1.Input{}, "my-api", v1alpha1.DatabaseMySQL, language)

			plan, err := scaffolder.BuildPlan(opts, templates.Embedded(), v1alpha1.ConflictPrompt)
			require.NoError(t, err)

			snaps.MatchSnapshot(t, plan)
		})
	}
}

func TestScaffold_ForceOverwritesWithoutPrompting(t *testing.T) {
	t.Parallel()

	opts := newOptions(t, v1alpha1.DatabaseSQLite, v1alpha1.LanguageJavaScript, v1alpha1.Input{Force: true})
	packageJSON := filepath.Join(opts.TargetDir(), "package.json")

	require.NoError(t, os.MkdirAll(opts.TargetDir(), 0o750))
	require.NoError(t, os.WriteFile(packageJSON, []byte("{}"), 0o600))

	confirmer := &fakeConfirmer{answer: false}
	s, out := newScaffolder(confirmer)

	result, err := s.Scaffold(opts, true)
	require.NoError(t, err)

	assert.Empty(t, confirmer.calls)
	assert.Contains(t, result.Overwritten, "package.json")
	assert.Contains(t, out.String(), "overwrote 'package.json'")

	content, err := os.ReadFile(packageJSON)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"name": "my-api"`)
}

func TestScaffold_DeclinedPromptKeepsFile(t *testing.T) {
	t.Parallel()

	opts := newOptions(t, v1alpha1.DatabaseMySQL, v1alpha1.LanguageJavaScript, v1alpha1.Input{})
	packageJSON := filepath.Join(opts.TargetDir(), "package.json")

	require.NoError(t, os.MkdirAll(opts.TargetDir(), 0o750))
	require.NoError(t, os.WriteFile(packageJSON, []byte("{}"), 0o600))

	confirmer := &fakeConfirmer{answer: false}
	s, _ := newScaffolder(confirmer)

	result, err := s.Scaffold(opts, true)
	require.NoError(t, err)

	require.Len(t, confirmer.calls, 1)
	assert.Contains(t, confirmer.calls[0], "package.json")
	assert.Equal(t, []string{"package.json"}, result.Skipped)

	content, err := os.ReadFile(packageJSON)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(content))
	assert.FileExists(t, filepath.Join(opts.TargetDir(), "server.js"))
}

func TestScaffold_NonInteractiveSkipsExistingFiles(t *testing.T) {
	t.Parallel()

	opts := newOptions(t, v1alpha1.DatabaseMySQL, v1alpha1.LanguageJavaScript, v1alpha1.Input{})
	server := filepath.Join(opts.TargetDir(), "server.js")

	require.NoError(t, os.MkdirAll(opts.TargetDir(), 0o750))
	require.NoError(t, os.WriteFile(server, []byte("// mine"), 0o600))

	confirmer := &fakeConfirmer{answer: true}
	s, out := newScaffolder(confirmer)

	result, err := s.Scaffold(opts, false)
	require.NoError(t, err)

	assert.Empty(t, confirmer.calls)
	assert.Equal(t, []string{"server.js"}, result.Skipped)
	assert.Contains(t, out.String(), "skipped 'server.js', file exists use --force to overwrite")

	content, err := os.ReadFile(server)
	require.NoError(t, err)
	assert.Equal(t, "// mine", string(content))
}

func TestScaffold_MissingRequiredTemplateWritesNothing(t *testing.T) {
	t.Parallel()

	opts := newOptions(t, v1alpha1.DatabaseMongoDB, v1alpha1.LanguageJavaScript, v1alpha1.Input{})
	s, _ := newScaffolder(nil)
	s.Templates = fstest.MapFS{
		"models/user.tmpl": &fstest.MapFile{Data: []byte("model")},
	}

	_, err := s.Scaffold(opts, false)
	require.ErrorIs(t, err, scaffolder.ErrTemplateNotFound)
	assert.NoDirExists(t, opts.TargetDir())
}

func TestScaffold_MissingOptionalTemplateIsSkipped(t *testing.T) {
	t.Parallel()

	opts := newOptions(t, v1alpha1.DatabaseMongoDB, v1alpha1.LanguageJavaScript, v1alpha1.Input{})
	s, out := newScaffolder(nil)
	s.Templates = fstest.MapFS{
		"server.tmpl":                     &fstest.MapFile{Data: []byte("server {{.ProjectName}}")},
		"models/user.tmpl":                &fstest.MapFile{Data: []byte("model {{.DBTag}}")},
		"controllers/authController.tmpl": &fstest.MapFile{Data: []byte("controller")},
		"routes/auth.tmpl":                &fstest.MapFile{Data: []byte("routes")},
		"middleware/auth.tmpl":            &fstest.MapFile{Data: []byte("middleware")},
	}

	result, err := s.Scaffold(opts, false)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"env.tmpl", "gitignore.tmpl"}, result.Plan.MissingOptional)
	assert.NoFileExists(t, filepath.Join(opts.TargetDir(), ".env"))
	assert.Contains(t, out.String(), "template 'env.tmpl' not found")

	content, err := os.ReadFile(filepath.Join(opts.TargetDir(), "models", "user.mongodb.js"))
	require.NoError(t, err)
	assert.Equal(t, "model mongodb", string(content))
}

func TestScaffold_GeneratorFailureWritesNothing(t *testing.T) {
	t.Parallel()

	opts := newOptions(t, v1alpha1.DatabaseMongoDB, v1alpha1.LanguageJavaScript, v1alpha1.Input{})
	s, _ := newScaffolder(nil)

	gen := &mockGenerator{}
	gen.On("Generate", opts).Return(nil, errGenerateFailure)
	s.PackageJSON = gen

	_, err := s.Scaffold(opts, false)
	require.ErrorIs(t, err, scaffolder.ErrPackageJSONGeneration)
	require.ErrorIs(t, err, errGenerateFailure)
	assert.NoDirExists(t, opts.TargetDir())
	gen.AssertExpectations(t)
}

func TestScaffold_DryRunWritesNothing(t *testing.T) {
	t.Parallel()

	opts := newOptions(t, v1alpha1.DatabaseSQLite, v1alpha1.LanguageTypeScript, v1alpha1.Input{DryRun: true})
	s, out := newScaffolder(nil)

	result, err := s.Scaffold(opts, false)
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Empty(t, result.Created)
	assert.NoDirExists(t, opts.TargetDir())
	assert.Contains(t, out.String(), "dest: src/models/user.sqlite.ts")
	assert.Contains(t, out.String(), "name: sqlite3")
}

func TestOpenTemplates(t *testing.T) {
	t.Parallel()

	t.Run("embedded when empty", func(t *testing.T) {
		t.Parallel()

		fsys, err := scaffolder.OpenTemplates("")
		require.NoError(t, err)
		assert.Equal(t, templates.Embedded(), fsys)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := scaffolder.OpenTemplates(filepath.Join(t.TempDir(), "nope"))
		require.ErrorIs(t, err, scaffolder.ErrTemplateDirNotFound)
	})

	t.Run("custom directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "server.tmpl"), []byte("x"), 0o600))

		fsys, err := scaffolder.OpenTemplates(dir)
		require.NoError(t, err)

		content, err := fsys.Open("server.tmpl")
		require.NoError(t, err)
		require.NoError(t, content.Close())
	})
}
