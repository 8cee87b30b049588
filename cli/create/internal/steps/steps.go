// Package steps provides a set of handlers for create command chain of
// responsibility.
package steps

import (
	create_ctx "github.com/victor-iyi/project/cli/create/context"
)

// Step is an interface for single step in create chain.
type Step interface {
	Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error
}
