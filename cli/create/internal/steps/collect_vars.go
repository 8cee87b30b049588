package steps

import (
	"bufio"
	"os"
	"strings"

	"github.com/apex/log"

	create_ctx "github.com/victor-iyi/project/cli/create/context"
	"github.com/victor-iyi/project/cli/errs"
)

const formatError = `Wrong variable definition format: %s
Usage: --var "var-name=value"`

// CollectVars gathers the template variables: descriptor values first, then
// the variables file, then --var definitions. A later source overrides an
// earlier one.
type CollectVars struct {
}

// Run fills the final variable mapping of the template context.
func (CollectVars) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	for name, value := range templateCtx.Config.Variables {
		templateCtx.Vars[name] = value
	}

	if createCtx.VarsFile != "" {
		if err := loadVarsFile(createCtx.VarsFile, templateCtx.Vars); err != nil {
			return err
		}
	}

	for _, varDefinition := range createCtx.VarsFromCli {
		varName, value, err := parseVarDefinition(varDefinition)
		if err != nil {
			return err
		}
		log.Debugf("Setting var from CLI: %s = %s", varName, value)
		templateCtx.Vars[varName] = value
	}

	return nil
}

// loadVarsFile reads var-name=value lines into vars. Blank lines and lines
// starting with # are skipped.
func loadVarsFile(varsFilePath string, vars map[string]string) error {
	varsFile, err := os.Open(varsFilePath)
	if err != nil {
		return errs.Wrapf(err, errs.Generic, "vars file loading error")
	}
	defer varsFile.Close()

	scanner := bufio.NewScanner(varsFile)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		varName, value, err := parseVarDefinition(line)
		if err != nil {
			return errs.Wrapf(err, errs.Generic, "failed to load vars from %s", varsFilePath)
		}
		log.Debugf("Setting var from vars file: %s = %s", varName, value)
		vars[varName] = value
	}

	if err = scanner.Err(); err != nil {
		return errs.Wrapf(err, errs.Generic, "failed to read %s", varsFilePath)
	}

	return nil
}

func parseVarDefinition(varDefinition string) (string, string, error) {
	varDefinition = strings.TrimSpace(varDefinition)
	varName, value, found := strings.Cut(varDefinition, "=")
	if !found || varName == "" || value == "" {
		return "", "", errs.Newf(errs.Generic, formatError, varDefinition)
	}

	return varName, value, nil
}
