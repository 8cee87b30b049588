//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	goPackageName = "github.com/victor-iyi/project/cli"

	asmflags = "all=-trimpath=${PWD}"
	gcflags  = "all=-trimpath=${PWD}"

	packagePath = "./cli"
)

var (
	ldflags = []string{
		"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
		"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
		"-X ${PACKAGE}/version.versionLabel=${VERSION_LABEL}",
	}

	goExecutableName      = "go"
	projectExecutableName = "project"

	Aliases = map[string]any{
		"build": Build.Release,
		"unit":  Unit.Default,
	}
)

func init() {
	var err error

	if specifiedGoExe := os.Getenv("GOEXE"); specifiedGoExe != "" {
		goExecutableName = specifiedGoExe
	}

	if specifiedExe := os.Getenv("PROJECTEXE"); specifiedExe != "" {
		projectExecutableName = specifiedExe
	} else {
		if projectExecutableName, err = filepath.Abs(projectExecutableName); err != nil {
			panic(err)
		}
	}

	// We want to use Go 1.11 modules even if the source lives inside GOPATH.
	// The default is "auto".
	os.Setenv("GO111MODULE", "on")
}

// buildExecutable builds the project executable with the version information
// injected through the linker.
func buildExecutable(extraLdflags ...string) error {
	buildLdflags := make([]string, len(ldflags))
	copy(buildLdflags, ldflags)
	buildLdflags = append(buildLdflags, extraLdflags...)

	err := sh.RunWith(getBuildEnvironment(), goExecutableName, "build",
		"-o", projectExecutableName,
		"-ldflags", strings.Join(buildLdflags, " "),
		"-asmflags", asmflags,
		"-gcflags", gcflags,
		packagePath)
	if err != nil {
		return fmt.Errorf("Failed to build project executable: %s", err)
	}

	return nil
}

type Build mg.Namespace

// Building release project executable without debug info.
func (Build) Release() error {
	fmt.Println("Building release project...")

	return buildExecutable("-s", "-w")
}

// Building debug project executable.
func (Build) Debug() error {
	fmt.Println("Building debug project...")

	return buildExecutable()
}

type Lint mg.Namespace

// Run golang linters.
func (Lint) Golang() error {
	fmt.Println("Running golangci-lint...")

	return sh.RunV("golangci-lint", "run")
}

type Unit mg.Namespace

// Run unit tests.
func (Unit) Default() error {
	fmt.Println("Running unit tests...")

	args := []string{"test"}
	if mg.Verbose() {
		args = append(args, "-v")
	}
	args = append(args, "./...")

	return sh.RunV(goExecutableName, args...)
}

// Run all tests together.
func Test() {
	mg.SerialDeps(Lint.Golang, Unit.Default)
}

// Cleanup directory.
func Clean() {
	fmt.Println("Cleaning directory...")

	os.Remove(projectExecutableName)
}

// getBuildEnvironment return map with build environment variables.
func getBuildEnvironment() map[string]string {
	var err error

	var currentDir string
	var gitTag string
	var gitCommit string

	if currentDir, err = os.Getwd(); err != nil {
		log.Warnf("Failed to get current directory: %s", err)
	}

	if _, err := exec.LookPath("git"); err == nil {
		gitTag, _ = sh.Output("git", "describe", "--tags")
		gitCommit, _ = sh.Output("git", "rev-parse", "--short", "HEAD")
	}

	return map[string]string{
		"PACKAGE":       goPackageName,
		"GIT_TAG":       gitTag,
		"GIT_COMMIT":    gitCommit,
		"VERSION_LABEL": os.Getenv("VERSION_LABEL"),
		"PWD":           currentDir,
	}
}
