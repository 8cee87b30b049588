package steps

import (
	"github.com/apex/log"

	create_ctx "github.com/victor-iyi/project/cli/create/context"
	"github.com/victor-iyi/project/cli/create/internal/project"
)

// SetupTarget derives the project target from the destination argument.
type SetupTarget struct {
}

// Run fills the template context with the project name and path.
func (SetupTarget) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	target, err := project.NewTarget(createCtx.DestinationDir)
	if err != nil {
		return err
	}

	log.Debugf("Generating project %q in %q", target.Name, target.Path)
	templateCtx.Target = target
	return nil
}
