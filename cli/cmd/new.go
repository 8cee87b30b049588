package cmd

import (
	"github.com/spf13/cobra"
)

// NewNewCmd creates a new `new` command.
func NewNewCmd() *cobra.Command {
	newCmd := &cobra.Command{
		Use:   "new <template> <name>",
		Short: "Create a new project from a template",
		Long: "Create a new project from a local template directory, " +
			"a repository URL or an owner/repo shorthand",
		Example: `$ project new ../templates/py-ml my-ml-project
  $ project new victor-iyi/py-ml my-ml-project --var "description=Demo"`,
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			createCtx, err := newCreateCtx(args[0], args[1])
			if err == nil {
				err = runGenerate(createCtx)
			}
			handleCmdErr(err)
		},
		Args: cobra.ExactArgs(2),
	}

	addGenerationFlags(newCmd)

	return newCmd
}
