package steps

import (
	create_ctx "github.com/victor-iyi/project/cli/create/context"
	"github.com/victor-iyi/project/cli/create/internal/templatecfg"
	"github.com/victor-iyi/project/cli/git"
)

// LoadConfig reads the template configuration from the template root.
type LoadConfig struct {
}

// Run loads the template configuration, substituting the project name and
// the author identity into the built-in placeholders.
func (LoadConfig) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	name, email := git.DiscoverAuthor()
	author := templatecfg.AuthorIdentity{Name: name, Email: email}

	config, err := templatecfg.Load(templateCtx.Source.TemplateDir(),
		templateCtx.Target.Name, author)
	if err != nil {
		return err
	}

	templateCtx.Config = config
	return nil
}
