package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/victor-iyi/project/cli/create/internal/project"
	"github.com/victor-iyi/project/cli/create/internal/templatecfg"
	"github.com/victor-iyi/project/cli/errs"
)

// writeTree lays out a template tree from relative path to file content.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for relPath, content := range files {
		fullPath := filepath.Join(root, relPath)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
	}
}

func requireSameContent(t *testing.T, want string, path string) {
	t.Helper()

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		FromFile: "want",
		B:        difflib.SplitLines(string(got)),
		ToFile:   path,
		Context:  2,
	}
	u, err := difflib.GetUnifiedDiffString(diff)
	require.NoError(t, err)
	require.Empty(t, u)
}

func newTarget(t *testing.T, name string) *project.Target {
	t.Helper()

	target, err := project.NewTarget(filepath.Join(t.TempDir(), name))
	require.NoError(t, err)
	return target
}

func TestGenerateEndToEnd(t *testing.T) {
	templateDir := t.TempDir()
	writeTree(t, templateDir, map[string]string{
		"README.md":       "# Demo\n",
		"config.toml.hbs": "title = \"{{title}}\"\n",
	})
	target := newTarget(t, "demo")

	generator := Generator{
		TemplateDir: templateDir,
		Target:      target,
		Config:      templatecfg.Default(),
		Vars:        map[string]string{"title": "Demo"},
	}
	require.NoError(t, generator.Generate())

	requireSameContent(t, "# Demo\n", filepath.Join(target.Path, "README.md"))
	requireSameContent(t, "title = \"Demo\"\n", filepath.Join(target.Path, "config.toml"))
	require.NoFileExists(t, filepath.Join(target.Path, "config.toml.hbs"))
}

func TestGenerateExcludePrunes(t *testing.T) {
	templateDir := t.TempDir()
	writeTree(t, templateDir, map[string]string{
		"src/main.py":   "print('hi')\n",
		"venv/lib/x.py": "blob\n",
	})
	target := newTarget(t, "app")

	generator := Generator{
		TemplateDir: templateDir,
		Target:      target,
		Config:      &templatecfg.TemplateConfig{Filters: templatecfg.Filters{Exclude: []string{"venv"}}},
		Vars:        map[string]string{},
	}
	require.NoError(t, generator.Generate())

	require.FileExists(t, filepath.Join(target.Path, "src", "main.py"))
	require.NoDirExists(t, filepath.Join(target.Path, "venv"))
}

func TestGenerateInclude(t *testing.T) {
	templateDir := t.TempDir()
	writeTree(t, templateDir, map[string]string{
		"README.md":   "# App\n",
		"src/main.py": "print('hi')\n",
		"notes.txt":   "scratch\n",
	})
	target := newTarget(t, "app")

	generator := Generator{
		TemplateDir: templateDir,
		Target:      target,
		Config: &templatecfg.TemplateConfig{
			Filters: templatecfg.Filters{Include: []string{"README.md", "src", "main.py"}},
		},
		Vars: map[string]string{},
	}
	require.NoError(t, generator.Generate())

	require.FileExists(t, filepath.Join(target.Path, "README.md"))
	require.FileExists(t, filepath.Join(target.Path, "src", "main.py"))
	require.NoFileExists(t, filepath.Join(target.Path, "notes.txt"))
}

func TestGenerateRename(t *testing.T) {
	templateDir := t.TempDir()
	writeTree(t, templateDir, map[string]string{
		"template/src/main.py": "print('hi')\n",
	})
	target := newTarget(t, "app")

	generator := Generator{
		TemplateDir: templateDir,
		Target:      target,
		Config:      &templatecfg.TemplateConfig{Rename: map[string]string{"template": "myproj"}},
		Vars:        map[string]string{},
	}
	require.NoError(t, generator.Generate())

	require.FileExists(t, filepath.Join(target.Path, "myproj", "src", "main.py"))
	require.NoDirExists(t, filepath.Join(target.Path, "template"))
}

func TestGenerateStrictFailure(t *testing.T) {
	templateDir := t.TempDir()
	writeTree(t, templateDir, map[string]string{
		"a.txt":     "ok\n",
		"z.txt.hbs": "hello {{missing}}\n",
	})
	target := newTarget(t, "app")

	generator := Generator{
		TemplateDir: templateDir,
		Target:      target,
		Config:      templatecfg.Default(),
		Vars:        map[string]string{"name": "foo"},
	}
	err := generator.Generate()

	require.Error(t, err)
	require.Equal(t, errs.TemplatingEngine, errs.KindOf(err))
	// The walk is lexical, so earlier entries are already materialized.
	require.FileExists(t, filepath.Join(target.Path, "a.txt"))
	require.NoFileExists(t, filepath.Join(target.Path, "z.txt"))
}

func TestGenerateMissingTemplateDir(t *testing.T) {
	target := newTarget(t, "app")

	generator := Generator{
		TemplateDir: filepath.Join(t.TempDir(), "no-such-template"),
		Target:      target,
		Config:      templatecfg.Default(),
	}
	err := generator.Generate()

	require.Error(t, err)
	require.Equal(t, errs.NotADirectory, errs.KindOf(err))
}

func TestRenamePath(t *testing.T) {
	generator := Generator{
		Config: &templatecfg.TemplateConfig{
			Rename: map[string]string{"template": "myproj", "bin": "scripts"},
		},
	}

	require.Equal(t, filepath.Join("myproj", "src", "main.py"),
		generator.renamePath(filepath.Join("template", "src", "main.py")))
	require.Equal(t, filepath.Join("myproj", "scripts", "run.sh"),
		generator.renamePath(filepath.Join("template", "bin", "run.sh")))
	require.Equal(t, filepath.Join("src", "untouched.py"),
		generator.renamePath(filepath.Join("src", "untouched.py")))
}
