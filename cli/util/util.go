// Package util provides helpers shared across the CLI.
package util

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime/debug"

	"github.com/victor-iyi/project/cli/errs"
)

// VersionFunc is a function that returns the CLI version string.
type VersionFunc func(bool, bool) string

// InternalError shows error information, the CLI version and call stack.
func InternalError(format string, f VersionFunc, err ...interface{}) error {
	errorFmt := `whoops! It looks like something is wrong with this version of the CLI.
Error: %s
Version: %s
Stacktrace:
%s`
	version := f(false, false)

	return fmt.Errorf(errorFmt, fmt.Sprintf(format, err...), version, debug.Stack())
}

// Basename returns the final segment of path, ignoring trailing separators:
// "foo/bar" and "foo/bar/" both yield "bar".
func Basename(path string) string {
	return filepath.Base(path)
}

// DiffPaths computes the relative path from base to path. Fails with a
// StripPrefix error when path cannot be expressed relative to base.
func DiffPaths(path, base string) (string, error) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", errs.Wrapf(err, errs.StripPrefix,
			"cannot express %q relative to %q", path, base)
	}
	return rel, nil
}

// RelativeToCurrentWorkingDir returns fullpath relative to the current
// working directory, or fullpath unchanged if it cannot be relativized.
func RelativeToCurrentWorkingDir(fullpath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return fullpath
	}
	relPath, err := filepath.Rel(cwd, fullpath)
	if err != nil {
		return fullpath
	}
	return relPath
}

// IsDir checks if filePath is a directory. Returns true if the directory
// exists.
func IsDir(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.IsDir()
}

// IsRegularFile checks if filePath is a regular file. Returns true if the
// file exists and it is a regular file.
func IsRegularFile(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.Mode().IsRegular()
}

// CreateDirectory creates dirName directory with fileMode permissions.
// An existing directory is not an error; an existing non-directory is.
func CreateDirectory(dirName string, fileMode os.FileMode) error {
	stat, err := os.Stat(dirName)
	if err != nil {
		if !os.IsNotExist(err) {
			return errs.Wrapf(err, errs.IO, "cannot access %q", dirName)
		}
	} else {
		if !stat.IsDir() {
			return errs.Newf(errs.NotADirectory,
				"%q already exists and is not a directory", dirName)
		}
		return nil
	}
	if err = os.MkdirAll(dirName, fileMode); err != nil {
		return errs.Wrapf(err, errs.IO, "cannot create %q", dirName)
	}
	return nil
}

// GetHomeDir returns current home directory.
func GetHomeDir() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return usr.HomeDir, nil
}
