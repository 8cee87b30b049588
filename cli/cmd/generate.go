package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/victor-iyi/project/cli/create"
	create_ctx "github.com/victor-iyi/project/cli/create/context"
	"github.com/victor-iyi/project/cli/source"
	"github.com/victor-iyi/project/cli/util"
)

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond
)

var (
	varsFromCli []string
	varsFile    string
	serviceName string
	initRepo    bool
	branch      string
)

// addGenerationFlags registers the flags shared by all generation commands.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&varsFromCli, "var", nil,
		`Variable definition. Usage: --var "var-name=value"`)
	cmd.Flags().StringVar(&varsFile, "vars-file", "", "Path to a variables file")
	cmd.Flags().StringVar(&serviceName, "source", string(source.DefaultService),
		"Hosting service for owner/repo shorthands: github, gitlab or bitbucket")
	cmd.Flags().BoolVar(&initRepo, "vcs", false,
		"Initialize a git repository in the generated project")
}

// newCreateCtx builds the create context from the parsed flags.
func newCreateCtx(templateSource string, destinationDir string) (*create_ctx.CreateCtx, error) {
	service, err := source.ParseService(serviceName)
	if err != nil {
		return nil, err
	}

	return &create_ctx.CreateCtx{
		TemplateSource: templateSource,
		DestinationDir: destinationDir,
		Branch:         branch,
		Service:        service,
		VarsFromCli:    varsFromCli,
		VarsFile:       varsFile,
		InitRepo:       initRepo,
	}, nil
}

// runGenerate runs the create pipeline and reports the generated project.
func runGenerate(createCtx *create_ctx.CreateCtx) error {
	if err := runWithSpinner(createCtx); err != nil {
		return err
	}

	reportCreated(createCtx.DestinationDir)
	return nil
}

// runWithSpinner shows a spinner while the pipeline works. Verbose, quiet
// and non-interactive runs go without it.
func runWithSpinner(createCtx *create_ctx.CreateCtx) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) || cmdCtx.Cli.Verbose || cmdCtx.Cli.Quiet {
		return create.Run(createCtx)
	}

	var workGroup sync.WaitGroup
	readyChannel := make(chan struct{}, 1)

	workGroup.Add(1)
	go func() {
		defer workGroup.Done()

		indicator := spinner.New(spinnerPicture, spinnerUpdateTime)
		indicator.Start()
		<-readyChannel
		indicator.Stop()
	}()

	err := create.Run(createCtx)
	readyChannel <- struct{}{}
	workGroup.Wait()

	return err
}

// reportCreated prints the final destination of the generated project.
func reportCreated(destinationDir string) {
	if cmdCtx.Cli.Quiet {
		return
	}

	path := destinationDir
	if fullPath, err := filepath.Abs(destinationDir); err == nil {
		path = util.RelativeToCurrentWorkingDir(fullPath)
	}

	fmt.Println(util.Bold(color.GreenString("Finished!")))
	fmt.Printf("%s %s\n", util.Bold("Project created in:"),
		util.Bold(color.YellowString("%q", path)))
}
