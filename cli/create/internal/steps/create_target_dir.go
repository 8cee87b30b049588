package steps

import (
	create_ctx "github.com/victor-iyi/project/cli/create/context"
)

// CreateTargetDir makes sure the destination directory exists before any
// file is materialized into it.
type CreateTargetDir struct {
}

// Run creates the destination directory.
func (CreateTargetDir) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	return templateCtx.Target.EnsureDir()
}
