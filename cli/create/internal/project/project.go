// Package project describes the destination of one generation run.
package project

import (
	"path/filepath"

	"github.com/iancoleman/strcase"

	"github.com/victor-iyi/project/cli/errs"
	"github.com/victor-iyi/project/cli/util"
)

const defaultDirPermissions = 0755

// Target is the project being generated.
type Target struct {
	// Name is the user-facing project name, normalized to snake case.
	Name string
	// Path is the absolute destination path.
	Path string
}

// NewTarget builds a target from the destination argument. The project name
// is derived from the final path segment.
func NewTarget(destination string) (*Target, error) {
	path, err := filepath.Abs(destination)
	if err != nil {
		return nil, errs.Wrapf(err, errs.IO, "cannot resolve %q", destination)
	}

	return &Target{
		Name: strcase.ToSnake(util.Basename(path)),
		Path: path,
	}, nil
}

// EnsureDir creates the destination directory. It has to run before any
// file is written into the target.
func (target *Target) EnsureDir() error {
	return util.CreateDirectory(target.Path, defaultDirPermissions)
}
