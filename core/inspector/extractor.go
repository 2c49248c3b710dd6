package inspector

import (
	"regexp"
	"strings"

	"github.com/tristendillon/stubgen/core/logger"
	"github.com/tristendillon/stubgen/core/models"
)

// moduleRequirePattern matches `<sep><lhs> = require('<module>');` where sep is a
// space or a period. Declarations not terminated by `);` are not recognized.
var moduleRequirePattern = regexp.MustCompile(`[ .](.*?) = require\(['"](.*?)['"]\);`)

// identifierPattern is the binding shape the skeleton can declare as `<name>Stub`.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var declarationKeywords = []string{"const ", "let ", "var "}

// ParseExcludeList splits a space separated list of binding names.
func ParseExcludeList(excludeDependencies string) []string {
	return strings.Fields(excludeDependencies)
}

// ExtractDependencies returns the require declarations of content in the order
// they appear, together with the declarations that were recognized but rejected.
// Content without any declaration yields two empty slices.
func ExtractDependencies(content string, exclude []string) ([]models.DependencyBinding, []models.SkippedBinding) {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	bindings := []models.DependencyBinding{}
	skipped := []models.SkippedBinding{}
	seen := make(map[string]bool)

	for _, match := range moduleRequirePattern.FindAllStringSubmatch(content, -1) {
		name := bindingName(match[1])
		module := match[2]

		reason, ok := rejectReason(name, excluded, seen)
		if !ok {
			logger.Debug("Skipping %q (%s): %s", name, module, reason)
			skipped = append(skipped, models.SkippedBinding{
				BindingName:      name,
				ModuleIdentifier: module,
				Reason:           reason,
			})
			continue
		}

		seen[name] = true
		bindings = append(bindings, models.DependencyBinding{
			BindingName:      name,
			ModuleIdentifier: module,
		})
	}

	return bindings, skipped
}

// bindingName takes the trimmed text left of the first `=`. A leading declaration
// keyword is dropped, which happens when the separator matched is indentation or
// the space after a previous statement on the same line.
func bindingName(lhs string) string {
	name, _, _ := strings.Cut(lhs, "=")
	name = strings.TrimSpace(name)

	for _, keyword := range declarationKeywords {
		if strings.HasPrefix(name, keyword) {
			return strings.TrimSpace(strings.TrimPrefix(name, keyword))
		}
	}
	return name
}

func rejectReason(name string, excluded, seen map[string]bool) (models.SkipReason, bool) {
	switch {
	case strings.ContainsAny(name, "(){}"):
		return models.SkipDestructuring, false
	case !identifierPattern.MatchString(name):
		return models.SkipUnsupported, false
	case excluded[name]:
		return models.SkipExcluded, false
	case seen[name]:
		return models.SkipDuplicate, false
	}
	return "", true
}
