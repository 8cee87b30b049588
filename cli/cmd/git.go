package cmd

import (
	"github.com/spf13/cobra"
)

// NewGitCmd creates a new `git` command.
func NewGitCmd() *cobra.Command {
	gitCmd := &cobra.Command{
		Use:   "git <remote> <name>",
		Short: "Create a new project from a remote template repository",
		Long: "Create a new project from a remote template repository. " +
			"The remote is a repository URL or an owner/repo shorthand",
		Example: `$ project git https://github.com/victor-iyi/py-ml.git my-ml-project
  $ project git victor-iyi/py-ml my-ml-project -b develop`,
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

	addGenerationFlags(gitCmd)
	gitCmd.Flags().StringVarP(&branch, "branch", "b", "",
		"Branch to checkout. The repository HEAD branch is used by default")

	return gitCmd
}
