package steps

import (
	"github.com/apex/log"

	create_ctx "github.com/victor-iyi/project/cli/create/context"
	"github.com/victor-iyi/project/cli/create/internal/generator"
)

// GenerateProject materializes the template tree into the destination.
type GenerateProject struct {
}

// Run walks the template and produces the project tree.
func (GenerateProject) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	log.Infof("Creating project %q", templateCtx.Target.Name)

	projectGenerator := generator.Generator{
		TemplateDir: templateCtx.Source.TemplateDir(),
		Target:      templateCtx.Target,
		Config:      templateCtx.Config,
		Vars:        templateCtx.Vars,
	}
	return projectGenerator.Generate()
}
