package steps

import (
	"github.com/victor-iyi/project/cli/create/internal/project"
	"github.com/victor-iyi/project/cli/create/internal/templatecfg"
	"github.com/victor-iyi/project/cli/source"
)

// TemplateCtx accumulates the state the create steps share.
type TemplateCtx struct {
	// Source is the resolved template source.
	Source source.Source
	// StagingDir is the temporary clone directory of a remote source.
	// It stays empty for local sources.
	StagingDir string
	// Config is the loaded template configuration.
	Config *templatecfg.TemplateConfig
	// Target describes the project being generated.
	Target *project.Target
	// Vars is the final variable mapping for the templating engines.
	Vars map[string]string
}

// NewTemplateContext creates an empty template context.
func NewTemplateContext() *TemplateCtx {
	return &TemplateCtx{
		Vars: map[string]string{},
	}
}
