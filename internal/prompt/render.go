package prompt

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{([a-z][a-z0-9_]*)\}`)

// Render substitutes {name} placeholders in a single pass over the original
// template. Replacement values are never re-scanned, so an answer that happens
// to contain placeholder-like text cannot corrupt later substitutions.
// Placeholders with no supplied value pass through unchanged.
func Render(template string, values map[string]string) string {
	out, _ := render(template, values)
	return out
}

// RenderStrict is Render but fails when any referenced placeholder has no
// supplied value, so silent non-substitution surfaces as an error.
func RenderStrict(template string, values map[string]string) (string, error) {
	out, missing := render(template, values)
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", fmt.Errorf("prompt: unsubstituted placeholders: %s", strings.Join(missing, ", "))
	}
	return out, nil
}

func render(template string, values map[string]string) (string, []string) {
	seen := map[string]bool{}
	var missing []string
	out := placeholderRe.ReplaceAllStringFunc(template, func(tok string) string {
		name := tok[1 : len(tok)-1]
		if v, ok := values[name]; ok {
			return v
		}
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return tok
	})
	return out, missing
}
