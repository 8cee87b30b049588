// Package templates provides the template engine variants and their
// extension-based dispatch.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/victor-iyi/project/cli/errs"
)

const (
	// HandlebarsExt is the extension dispatched to the handlebars engine.
	HandlebarsExt = ".hbs"
	// LiquidExt is the extension dispatched to the liquid engine.
	LiquidExt = ".liquid"
)

// Engine renders template content against a variable mapping.
type Engine interface {
	// Name returns the engine name used in diagnostics.
	Name() string

	// RenderText applies vars to the template text and returns the result.
	RenderText(in string, vars map[string]string) (string, error)

	// RenderFile renders the template read from srcPath and saves the result
	// as dstPath. The destination keeps the source file's permissions.
	RenderFile(srcPath string, dstPath string, vars map[string]string) error
}

// ForExtension selects the engine for a file extension, as returned by
// filepath.Ext. Unrecognized extensions get the raw copy engine.
func ForExtension(ext string) Engine {
	switch ext {
	case HandlebarsExt:
		return handlebarsEngine{}
	case LiquidExt:
		return liquidEngine{}
	default:
		return rawEngine{}
	}
}

// StripTemplateExt drops a trailing templating extension: "setup.cfg.hbs"
// becomes "setup.cfg". Paths without one are returned unchanged.
func StripTemplateExt(path string) string {
	switch ext := filepath.Ext(path); ext {
	case HandlebarsExt, LiquidExt:
		return strings.TrimSuffix(path, ext)
	}

	return path
}

// renderFile renders srcPath fully in memory and only then creates dstPath,
// so a failed render never leaves a partial destination file.
func renderFile(engine Engine, srcPath string, dstPath string, vars map[string]string) error {
	stat, err := os.Stat(srcPath)
	if err != nil {
		return errs.WrapFS(err, fmt.Sprintf("cannot stat %q", srcPath))
	}

	content, err := os.ReadFile(srcPath)
	if err != nil {
		return errs.WrapFS(err, fmt.Sprintf("cannot read %q", srcPath))
	}

	rendered, err := engine.RenderText(string(content), vars)
	if err != nil {
		return err
	}

	if err = os.WriteFile(dstPath, []byte(rendered), stat.Mode().Perm()); err != nil {
		return errs.Wrapf(err, errs.IO, "cannot write %q", dstPath)
	}

	// WriteFile honors the umask; force the template file's mode.
	if err = os.Chmod(dstPath, stat.Mode().Perm()); err != nil {
		return errs.Wrapf(err, errs.IO, "cannot chmod %q", dstPath)
	}

	return nil
}
