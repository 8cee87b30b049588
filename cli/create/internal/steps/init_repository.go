package steps

import (
	"github.com/apex/log"

	create_ctx "github.com/victor-iyi/project/cli/create/context"
	"github.com/victor-iyi/project/cli/git"
	"github.com/victor-iyi/project/cli/source"
)

// InitRepository initializes an empty git repository in the generated
// project.
type InitRepository struct {
}

// Run initializes the repository when version control is requested. The
// initial branch follows the template's branch when the source is remote.
func (InitRepository) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if !createCtx.InitRepo {
		return nil
	}

	branch := createCtx.Branch
	if remote, ok := templateCtx.Source.(*source.Remote); ok {
		resolved, err := remote.Spec.Branch()
		if err != nil {
			return err
		}
		branch = resolved
	}

	log.Infof("Initializing git repository in %q", templateCtx.Target.Path)
	return git.Init(templateCtx.Target.Path, branch)
}
