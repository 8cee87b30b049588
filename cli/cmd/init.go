package cmd

import (
	"github.com/spf13/cobra"
)

// NewInitCmd creates a new `init` command.
func NewInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init <template>",
		Short: "Generate a project from a template into the current directory",
		Long: "Generate a project from a local or remote template into the " +
			"current directory. The project name is taken from the directory name",
		Example: `$ project init ../templates/py-ml
  $ project init victor-iyi/py-ml -b develop`,
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			createCtx, err := newCreateCtx(args[0], ".")
			if err == nil {
				err = runGenerate(createCtx)
			}
			handleCmdErr(err)
		},
		Args: cobra.ExactArgs(1),
	}

	addGenerationFlags(initCmd)
	initCmd.Flags().StringVarP(&branch, "branch", "b", "",
		"Branch to checkout. The repository HEAD branch is used by default")

	return initCmd
}
