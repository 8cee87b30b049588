package create_ctx

import "github.com/victor-iyi/project/cli/source"

// CreateCtx contains information for materializing a project from a template.
type CreateCtx struct {
	// TemplateSource is the raw template location: a path, a URL or an
	// owner/repo shorthand.
	TemplateSource string
	// DestinationDir is the path where the project will be created.
	DestinationDir string
	// Branch is the requested template branch. Empty means the remote's
	// default branch.
	Branch string
	// Service is the hosting service shorthand sources are expanded against.
	Service source.Service
	// VarsFromCli contains variable definitions provided in the command line.
	VarsFromCli []string
	// VarsFile is a file with variable definitions.
	VarsFile string
	// InitRepo - if the flag is set, a git repository is initialized in the
	// generated project.
	InitRepo bool
}
