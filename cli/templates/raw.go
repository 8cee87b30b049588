package templates

import (
	"github.com/otiai10/copy"

	"github.com/victor-iyi/project/cli/errs"
)

type rawEngine struct{}

// Name returns "raw".
func (rawEngine) Name() string {
	return "raw"
}

// RenderText returns in unchanged. The raw engine does not consult variables.
func (rawEngine) RenderText(in string, _ map[string]string) (string, error) {
	return in, nil
}

// RenderFile copies srcPath to dstPath byte for byte, keeping permissions.
func (rawEngine) RenderFile(srcPath string, dstPath string, _ map[string]string) error {
	if err := copy.Copy(srcPath, dstPath); err != nil {
		return errs.Wrapf(err, errs.IO, "cannot copy %q to %q", srcPath, dstPath)
	}

	return nil
}
