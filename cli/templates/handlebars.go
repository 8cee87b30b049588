package templates

import (
	"strings"

	"github.com/aymerick/raymond"

	"github.com/victor-iyi/project/cli/errs"
)

type handlebarsEngine struct{}

// Name returns "handlebars".
func (handlebarsEngine) Name() string {
	return "handlebars"
}

// RenderText renders in as a handlebars template.
func (engine handlebarsEngine) RenderText(in string, vars map[string]string) (string, error) {
	if err := checkVars(handlebarsVars(in), vars); err != nil {
		return "", err
	}

	tpl, err := raymond.Parse(in)
	if err != nil {
		return "", errs.Wrap(err, errs.TemplatingEngine,
			"cannot parse handlebars template")
	}
	registerHelpers(tpl)

	out, err := tpl.Exec(vars)
	if err != nil {
		return "", errs.Wrap(err, errs.TemplatingEngine,
			"handlebars rendering failed")
	}

	return out, nil
}

// RenderFile renders the handlebars template srcPath to dstPath.
func (engine handlebarsEngine) RenderFile(srcPath string, dstPath string, vars map[string]string) error {
	return renderFile(engine, srcPath, dstPath, vars)
}

// registerHelpers adds the string helpers available inside templates:
//
//	{{replace input "from" "to"}}  replace all occurrences of "from"
//	{{append input "suffix"}}      append "suffix" to input
//	{{prepend input "prefix"}}     prepend "prefix" to input
//	{{up input}}                   uppercase input
//	{{low input}}                  lowercase input
func registerHelpers(tpl *raymond.Template) {
	tpl.RegisterHelpers(map[string]interface{}{
		"replace": func(in string, from string, to string) string {
			return strings.ReplaceAll(in, from, to)
		},
		"append": func(in string, suffix string) string {
			return in + suffix
		},
		"prepend": func(in string, prefix string) string {
			return prefix + in
		},
		"up": func(in string) string {
			return strings.ToUpper(in)
		},
		"low": func(in string) string {
			return strings.ToLower(in)
		},
	})
}
