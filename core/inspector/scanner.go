package inspector

import (
	"regexp"

	"github.com/tristendillon/stubgen/core/models"
)

// ScanUsage collects the distinct members invoked as `<binding>.<member>(` in
// first-seen order. The binding must not be preceded by an identifier character
// or a period, so `myrouter.urlFor(` and `a.router.urlFor(` do not count for `router`.
func ScanUsage(content string, binding models.DependencyBinding) models.UsageRecord {
	record := models.UsageRecord{
		BindingName:    binding.BindingName,
		InvokedMembers: []string{},
	}

	pattern := usagePattern(binding.BindingName)
	seen := make(map[string]bool)

	for _, loc := range pattern.FindAllStringSubmatchIndex(content, -1) {
		end := loc[1]
		if end >= len(content) || content[end] != '(' {
			continue
		}

		member := content[loc[2]:loc[3]]
		if seen[member] {
			continue
		}
		seen[member] = true
		record.InvokedMembers = append(record.InvokedMembers, member)
	}

	return record
}

func usagePattern(bindingName string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)(?:^|[^A-Za-z0-9_$.])` + regexp.QuoteMeta(bindingName) + `\.([A-Za-z0-9_]+)`)
}
