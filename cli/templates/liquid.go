package templates

import (
	"github.com/osteele/liquid"

	"github.com/victor-iyi/project/cli/errs"
)

type liquidEngine struct{}

// Name returns "liquid".
func (liquidEngine) Name() string {
	return "liquid"
}

// RenderText renders in as a liquid template.
func (engine liquidEngine) RenderText(in string, vars map[string]string) (string, error) {
	if err := checkVars(liquidVars(in), vars); err != nil {
		return "", err
	}

	bindings := make(map[string]interface{}, len(vars))
	for name, value := range vars {
		bindings[name] = value
	}

	out, err := liquid.NewEngine().ParseAndRenderString(in, bindings)
	if err != nil {
		return "", errs.Wrap(err, errs.TemplatingEngine, "liquid rendering failed")
	}

	return out, nil
}

// RenderFile renders the liquid template srcPath to dstPath.
func (engine liquidEngine) RenderFile(srcPath string, dstPath string, vars map[string]string) error {
	return renderFile(engine, srcPath, dstPath, vars)
}
