package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/discard"
	"github.com/spf13/cobra"

	"github.com/victor-iyi/project/cli/cmdcontext"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	rootCmd *cobra.Command
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "project",
		Short: "Project generator",
		Long:  "Utility for creating new projects from local or remote templates",
		Example: `$ project new victor-iyi/py-ml my-ml-project
  $ project git https://github.com/victor-iyi/py-ml.git my-ml-project -b master
  $ project init ../templates/py-ml`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Run verbosely")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Quiet, "quiet", "q",
		false, "Suppress all output")

	rootCmd.AddCommand(
		NewNewCmd(),
		NewGitCmd(),
		NewInitCmd(),
		NewVersionCmd(),
		NewCompletionCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%s", err.Error())
	}
}

// handleCmdErr reports the error and terminates the process with a
// non-zero exit code.
func handleCmdErr(err error) {
	if err != nil {
		log.Fatalf("%s", err.Error())
	}
}

// InitRoot initializes the root command and applies the verbosity flags to
// the logger before any command runs.
func InitRoot() {
	rootCmd = NewCmdRoot()
	rootCmd.ParseFlags(os.Args)

	switch {
	case cmdCtx.Cli.Quiet:
		log.SetHandler(discard.Default)
	case cmdCtx.Cli.Verbose:
		log.SetLevel(log.DebugLevel)
	}
}
