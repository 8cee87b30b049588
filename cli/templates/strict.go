package templates

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/adam-hanna/arrayOperations"

	"github.com/victor-iyi/project/cli/errs"
)

// mustacheRe captures the expression inside a {{...}} block.
var mustacheRe = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

// helperNames never denote variables inside a mustache expression.
var helperNames = map[string]struct{}{
	"replace": {},
	"append":  {},
	"prepend": {},
	"up":      {},
	"low":     {},
	"if":      {},
	"unless":  {},
	"each":    {},
	"with":    {},
	"lookup":  {},
	"log":     {},
	"else":    {},
}

// isLiteralToken reports whether token is a literal rather than a variable
// reference.
func isLiteralToken(token string) bool {
	switch token {
	case "", "this", "true", "false", "null", "undefined":
		return true
	}

	switch token[0] {
	case '@', '"', '\'', '.':
		return true
	}

	if _, err := strconv.ParseFloat(token, 64); err == nil {
		return true
	}

	return false
}

// handlebarsVars lists the variables a handlebars template references through
// output expressions and helper arguments.
func handlebarsVars(in string) []string {
	var names []string
	for _, match := range mustacheRe.FindAllStringSubmatch(in, -1) {
		expr := strings.Trim(match[1], "~ \t\r\n")
		if expr == "" {
			continue
		}

		// Comments, partials and block closers reference nothing.
		switch expr[0] {
		case '!', '>', '/':
			continue
		}

		// Block openers still reference their arguments.
		expr = strings.TrimLeft(expr, "#^")

		for _, token := range strings.Fields(expr) {
			token = strings.Trim(token, "()")
			if strings.Contains(token, "=") {
				continue
			}
			if _, helper := helperNames[token]; helper {
				continue
			}
			if isLiteralToken(token) {
				continue
			}
			names = append(names, token)
		}
	}

	return names
}

// liquidVars lists the variables a liquid template references through output
// expressions. Filters and their arguments are not inspected.
func liquidVars(in string) []string {
	var names []string
	for _, match := range mustacheRe.FindAllStringSubmatch(in, -1) {
		expr, _, _ := strings.Cut(match[1], "|")
		fields := strings.Fields(expr)
		if len(fields) == 0 {
			continue
		}

		if token := fields[0]; !isLiteralToken(token) {
			names = append(names, token)
		}
	}

	return names
}

// checkVars fails when a referenced variable is missing from vars. Rendering
// is strict: an undefined variable aborts the render instead of expanding to
// an empty string.
func checkVars(names []string, vars map[string]string) error {
	var missing []string
	for _, name := range names {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	missing = arrayOperations.DifferenceString(missing)
	sort.Strings(missing)

	return errs.Newf(errs.TemplatingEngine,
		"undefined template variables: %s", strings.Join(missing, ", "))
}
