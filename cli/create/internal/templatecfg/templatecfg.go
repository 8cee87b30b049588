// Package templatecfg loads the template descriptor file.
package templatecfg

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"

	"github.com/adam-hanna/arrayOperations"
	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"

	"github.com/victor-iyi/project/cli/errs"
)

// descriptorFileName is looked up at the template root.
const descriptorFileName = "template.toml"

// defaultExcludes apply when the template has no descriptor file.
var defaultExcludes = []string{"venv", ".git", ".idea", ".vscode"}

// AuthorIdentity is the version-control identity substituted into the
// author placeholders.
type AuthorIdentity struct {
	Name  string
	Email string
}

// TemplateConfig is the parsed template descriptor.
type TemplateConfig struct {
	// Variables are rendered into template files.
	Variables map[string]string `mapstructure:"variables"`
	// Rename maps path segments to their replacements.
	Rename map[string]string `mapstructure:"rename"`
	// Filters select the files the template materializes.
	Filters Filters `mapstructure:"filters"`
}

// Filters holds at most one populated list: files to include, or files to
// exclude.
type Filters struct {
	Include []string `mapstructure:"include"`
	Exclude []string `mapstructure:"exclude"`
}

// Default returns the configuration used when the template has no
// descriptor: no variables, no renames, the fixed exclude set.
func Default() *TemplateConfig {
	return &TemplateConfig{
		Variables: map[string]string{},
		Rename:    map[string]string{},
		Filters:   Filters{Exclude: slices.Clone(defaultExcludes)},
	}
}

// Load reads and parses the template descriptor at the template root,
// substituting the built-in placeholders first. A missing descriptor is not
// an error: the default configuration is returned.
func Load(templateDir string, projectName string, author AuthorIdentity) (*TemplateConfig, error) {
	descriptorPath := filepath.Join(templateDir, descriptorFileName)
	raw, err := os.ReadFile(descriptorPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("No %s in %q, using the default configuration",
				descriptorFileName, templateDir)
			return Default(), nil
		}
		return nil, errs.Wrapf(err, errs.IO, "cannot read %q", descriptorPath)
	}

	text, err := substitutePlaceholders(string(raw), projectName, author)
	if err != nil {
		return nil, err
	}

	parsed := make(map[string]interface{})
	if err = toml.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, errs.Wrapf(err, errs.Generic, "failed to parse %q", descriptorPath)
	}

	config := TemplateConfig{
		Variables: map[string]string{},
		Rename:    map[string]string{},
	}
	if err = mapstructure.Decode(parsed, &config); err != nil {
		return nil, errs.Wrapf(err, errs.Generic, "failed to decode %q", descriptorPath)
	}

	config.validateFilters()
	return &config, nil
}

// substitutePlaceholders replaces the built-in placeholders in the raw
// descriptor text. All occurrences are replaced, case-sensitively; one
// optional whitespace is tolerated inside the braces.
func substitutePlaceholders(text string, projectName string, author AuthorIdentity) (string, error) {
	replacements := []struct {
		placeholder string
		value       string
	}{
		{"project-name", projectName},
		{"author-name", author.Name},
		{"author-email", author.Email},
	}

	for _, repl := range replacements {
		re, err := regexp.Compile(`\{\{\s?` + repl.placeholder + `\s?\}\}`)
		if err != nil {
			return "", errs.Wrapf(err, errs.RegEx,
				"cannot compile pattern for placeholder %q", repl.placeholder)
		}
		text = re.ReplaceAllLiteralString(text, repl.value)
	}

	return text, nil
}

// validateFilters enforces that at most one filter list is populated and
// de-duplicates the lists.
func (config *TemplateConfig) validateFilters() {
	if len(config.Filters.Include) > 0 && len(config.Filters.Exclude) > 0 {
		log.Warnf("One of `include` or `exclude` should be provided, but not both. " +
			"Ignoring `exclude`.")
		config.Filters.Exclude = nil
	}

	config.Filters.Include = dedupe(config.Filters.Include)
	config.Filters.Exclude = dedupe(config.Filters.Exclude)
}

func dedupe(list []string) []string {
	if len(list) < 2 {
		return list
	}

	list = arrayOperations.DifferenceString(list)
	sort.Strings(list)
	return list
}

// Excluded reports whether the filter rules drop fileName. Matching is by
// exact filename, never by pattern.
func (config *TemplateConfig) Excluded(fileName string) bool {
	if len(config.Filters.Include) > 0 {
		return !slices.Contains(config.Filters.Include, fileName)
	}

	return slices.Contains(config.Filters.Exclude, fileName)
}
