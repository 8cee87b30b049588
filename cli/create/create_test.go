package create

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport/client"
	"github.com/go-git/go-git/v5/plumbing/transport/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	create_ctx "github.com/victor-iyi/project/cli/create/context"
	"github.com/victor-iyi/project/cli/errs"
)

func TestMain(m *testing.M) {
	// Serve file:// remotes in-process so the tests need no git binary
	// and no network.
	client.InstallProtocol("file", server.NewClient(server.DefaultLoader))
	os.Exit(m.Run())
}

func writeTemplate(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for relPath, content := range files {
		fullPath := filepath.Join(root, relPath)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
	}
}

// newRemoteTemplate creates a committed template repository and returns a
// file:// URL of its git directory.
func newRemoteTemplate(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	writeTemplate(t, dir, files)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(".")
	require.NoError(t, err)
	_, err = wt.Commit("template", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "fixture",
			Email: "fixture@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return "file://" + filepath.Join(dir, ".git")
}

// stagingLeftovers lists staging directories remaining under tmpDir.
func stagingLeftovers(t *testing.T, tmpDir string) []string {
	t.Helper()

	leftovers, err := filepath.Glob(filepath.Join(tmpDir, "project-template-*"))
	require.NoError(t, err)
	return leftovers
}

func TestRunLocalTemplate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	templateDir := t.TempDir()
	writeTemplate(t, templateDir, map[string]string{
		"template.toml": `
[variables]
name = "{{project-name}}"

[rename]
src = "lib"

[filters]
exclude = ["venv", "template.toml"]
`,
		"README.md.hbs": "# {{name}}\n",
		"src/main.py":   "print('hi')\n",
		"venv/x.py":     "blob\n",
	})

	dstDir := filepath.Join(t.TempDir(), "demo-app")
	createCtx := &create_ctx.CreateCtx{
		TemplateSource: templateDir,
		DestinationDir: dstDir,
	}
	require.NoError(t, Run(createCtx))

	content, err := os.ReadFile(filepath.Join(dstDir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# demo_app\n", string(content))
	assert.FileExists(t, filepath.Join(dstDir, "lib", "main.py"))
	assert.NoDirExists(t, filepath.Join(dstDir, "venv"))
	assert.NoFileExists(t, filepath.Join(dstDir, "template.toml"))
	assert.NoFileExists(t, filepath.Join(dstDir, "README.md.hbs"))
}

func TestRunRemoteTemplate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	templateURL := newRemoteTemplate(t, map[string]string{
		"README.md":       "# fixture\n",
		"config.toml.hbs": "title = \"{{title}}\"\n",
	})

	// Scope the staging area to the test to observe the cleanup.
	stagingRoot := t.TempDir()
	t.Setenv("TMPDIR", stagingRoot)

	dstDir := filepath.Join(t.TempDir(), "app")
	createCtx := &create_ctx.CreateCtx{
		TemplateSource: templateURL,
		DestinationDir: dstDir,
		VarsFromCli:    []string{"title=Demo"},
	}
	require.NoError(t, Run(createCtx))

	content, err := os.ReadFile(filepath.Join(dstDir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "title = \"Demo\"\n", string(content))
	assert.FileExists(t, filepath.Join(dstDir, "README.md"))
	assert.Empty(t, stagingLeftovers(t, stagingRoot))
}

func TestRunRemoteTemplateFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	templateURL := newRemoteTemplate(t, map[string]string{
		"a.txt":     "ok\n",
		"z.txt.hbs": "hello {{missing}}\n",
	})

	stagingRoot := t.TempDir()
	t.Setenv("TMPDIR", stagingRoot)

	dstDir := filepath.Join(t.TempDir(), "app")
	err := Run(&create_ctx.CreateCtx{
		TemplateSource: templateURL,
		DestinationDir: dstDir,
	})

	require.Error(t, err)
	assert.Equal(t, errs.TemplatingEngine, errs.KindOf(err))
	// The destination is not rolled back, but the staging clone is gone.
	assert.FileExists(t, filepath.Join(dstDir, "a.txt"))
	assert.NoFileExists(t, filepath.Join(dstDir, "z.txt"))
	assert.Empty(t, stagingLeftovers(t, stagingRoot))
}

func TestRunInitRepo(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	templateDir := t.TempDir()
	writeTemplate(t, templateDir, map[string]string{"README.md": "# app\n"})

	dstDir := filepath.Join(t.TempDir(), "app")
	createCtx := &create_ctx.CreateCtx{
		TemplateSource: templateDir,
		DestinationDir: dstDir,
		Branch:         "trunk",
		InitRepo:       true,
	}
	require.NoError(t, Run(createCtx))

	repo, err := gogit.PlainOpen(dstDir)
	require.NoError(t, err)
	head, err := repo.Reference(plumbing.HEAD, false)
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/trunk", head.Target().String())
}

func TestRunMissingSource(t *testing.T) {
	err := Run(&create_ctx.CreateCtx{DestinationDir: "app"})

	require.Error(t, err)
	assert.Equal(t, errs.URL, errs.KindOf(err))
}

func TestRunMissingDestination(t *testing.T) {
	err := Run(&create_ctx.CreateCtx{TemplateSource: "some/template"})

	require.Error(t, err)
	assert.Equal(t, errs.Generic, errs.KindOf(err))
}
