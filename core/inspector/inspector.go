// Package inspector finds the CommonJS dependencies of a source file and the
// members each one is called with, using plain text matching.
package inspector

import (
	"os"

	"github.com/tristendillon/stubgen/core/logger"
	"github.com/tristendillon/stubgen/core/models"
)

const stubSuffix = "Stub"

// Inspect turns the declarations of content into stubs. Bindings that are
// destructured, excluded, duplicated or never called are reported in Skipped.
func Inspect(content string, exclude []string) *models.InspectionResult {
	bindings, skipped := ExtractDependencies(content, exclude)

	result := &models.InspectionResult{
		Stubs:   []models.StubSpec{},
		Skipped: skipped,
	}

	for _, binding := range bindings {
		usage := ScanUsage(content, binding)
		if len(usage.InvokedMembers) == 0 {
			logger.Debug("No calls found through %q, skipping", binding.BindingName)
			result.Skipped = append(result.Skipped, models.SkippedBinding{
				BindingName:      binding.BindingName,
				ModuleIdentifier: binding.ModuleIdentifier,
				Reason:           models.SkipNoUsage,
			})
			continue
		}

		logger.Debug("Found %s used as %v", binding.BindingName, usage.InvokedMembers)
		result.Stubs = append(result.Stubs, models.StubSpec{
			Module:        binding.ModuleIdentifier,
			Name:          StubName(binding.BindingName),
			UsedFunctions: usage.InvokedMembers,
		})
	}

	return result
}

// InspectFile reads path and inspects its content. A read failure is returned
// as a *SourceFileError.
func InspectFile(path string, exclude []string) (*models.InspectionResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceFileError{Path: path, Err: err}
	}

	return Inspect(string(content), exclude), nil
}

func StubName(bindingName string) string {
	return bindingName + stubSuffix
}
