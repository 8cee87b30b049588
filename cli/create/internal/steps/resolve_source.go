package steps

import (
	create_ctx "github.com/victor-iyi/project/cli/create/context"
	"github.com/victor-iyi/project/cli/source"
)

// ResolveSource classifies the template source as a local directory or a
// remote repository.
type ResolveSource struct {
}

// Run resolves the raw template source string.
func (ResolveSource) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	templateSource, err := source.Resolve(createCtx.TemplateSource, createCtx.Branch,
		createCtx.Service)
	if err != nil {
		return err
	}

	templateCtx.Source = templateSource
	return nil
}
