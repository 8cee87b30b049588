// Package create builds a new project from a template source.
package create

import (
	create_ctx "github.com/victor-iyi/project/cli/create/context"
	"github.com/victor-iyi/project/cli/create/internal/steps"
	"github.com/victor-iyi/project/cli/errs"
	"github.com/victor-iyi/project/cli/git"
)

// Run creates a project from a template. The staging directory of a remote
// template is removed on every exit path. The destination is never rolled
// back: a failed run may leave it partially populated.
func Run(createCtx *create_ctx.CreateCtx) error {
	if err := checkCtx(createCtx); err != nil {
		return err
	}

	stepsChain := []steps.Step{
		steps.SetupTarget{},
		steps.ResolveSource{},
		steps.StageTemplate{},
		steps.LoadConfig{},
		steps.CollectVars{},
		steps.CreateTargetDir{},
		steps.GenerateProject{},
		steps.InitRepository{},
	}

	templateCtx := steps.NewTemplateContext()
	defer func() {
		git.CleanupStaging(templateCtx.StagingDir)
	}()

	for _, step := range stepsChain {
		if err := step.Run(createCtx, templateCtx); err != nil {
			return err
		}
	}

	return nil
}

// checkCtx checks create context for validity.
func checkCtx(createCtx *create_ctx.CreateCtx) error {
	if createCtx.TemplateSource == "" {
		return errs.New(errs.URL, "template source is not specified")
	}
	if createCtx.DestinationDir == "" {
		return errs.New(errs.Generic, "destination directory is not specified")
	}

	return nil
}
