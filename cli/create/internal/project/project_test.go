package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victor-iyi/project/cli/errs"
)

func TestNewTarget(t *testing.T) {
	cases := []struct {
		destination  string
		expectedName string
	}{
		{"my-project", "my_project"},
		{"MyProject", "my_project"},
		{"snake_case_name", "snake_case_name"},
		{filepath.Join("nested", "dir", "web-app"), "web_app"},
	}

	for _, tc := range cases {
		target, err := NewTarget(tc.destination)
		require.NoError(t, err, "destination: %q", tc.destination)
		assert.Equal(t, tc.expectedName, target.Name, "destination: %q", tc.destination)
		assert.True(t, filepath.IsAbs(target.Path), "destination: %q", tc.destination)
	}
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()

	target, err := NewTarget(filepath.Join(tmpDir, "my-project"))
	require.NoError(t, err)

	require.NoError(t, target.EnsureDir())
	assert.DirExists(t, target.Path)

	// A second call is idempotent.
	require.NoError(t, target.EnsureDir())
}

func TestEnsureDirOverFile(t *testing.T) {
	tmpDir := t.TempDir()

	occupied := filepath.Join(tmpDir, "occupied")
	require.NoError(t, os.WriteFile(occupied, []byte("data"), 0644))

	target, err := NewTarget(occupied)
	require.NoError(t, err)

	err = target.EnsureDir()
	require.Error(t, err)
	assert.Equal(t, errs.NotADirectory, errs.KindOf(err))
}
