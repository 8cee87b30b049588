package steps

import (
	create_ctx "github.com/victor-iyi/project/cli/create/context"
	"github.com/victor-iyi/project/cli/git"
	"github.com/victor-iyi/project/cli/source"
)

// StageTemplate clones a remote template into a staging directory. A local
// source is used in place and needs no staging.
type StageTemplate struct {
}

// Run stages the template tree of a remote source.
func (StageTemplate) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	remote, ok := templateCtx.Source.(*source.Remote)
	if !ok {
		return nil
	}

	stagingDir, err := git.NewStagingDir()
	if err != nil {
		return err
	}
	// Record the directory first so even a failed clone gets cleaned up.
	templateCtx.StagingDir = stagingDir
	remote.StagingDir = stagingDir

	return remote.Spec.CloneTo(stagingDir)
}
