// Package report renders inspection results for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tristendillon/stubgen/core/models"
)

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false
	return tbl
}

// StubsTable lists one row per generated mock.
func StubsTable(result *models.InspectionResult) string {
	if result.IsEmpty() {
		return "No mocks generated."
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"#", "Mock", "Module", "Members"})
	for i, stub := range result.Stubs {
		tbl.AppendRow(table.Row{i + 1, stub.Name, stub.Module, strings.Join(stub.UsedFunctions, ", ")})
	}
	tbl.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d", len(result.Stubs))})

	return tbl.Render()
}

// SkippedTable lists the declarations left out of the skeleton and why.
func SkippedTable(result *models.InspectionResult) string {
	if result == nil || len(result.Skipped) == 0 {
		return ""
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Binding", "Module", "Reason"})
	for _, skipped := range result.Skipped {
		tbl.AppendRow(table.Row{skipped.BindingName, skipped.ModuleIdentifier, describe(skipped.Reason)})
	}

	return tbl.Render()
}

func PathsTable(paths models.PathMetadata) string {
	tbl := newTable()
	tbl.AppendRows([]table.Row{
		{"Source", paths.SrcPath},
		{"Test file", paths.TargetPath},
		{"Required as", paths.SrcPathInTest},
	})
	return tbl.Render()
}

func describe(reason models.SkipReason) string {
	switch reason {
	case models.SkipDestructuring:
		return "destructuring is not supported"
	case models.SkipExcluded:
		return "excluded by configuration"
	case models.SkipNoUsage:
		return "no calls found, mock it manually"
	case models.SkipDuplicate:
		return "declared more than once"
	case models.SkipUnsupported:
		return "unrecognized declaration"
	default:
		return string(reason)
	}
}

var (
	added   = color.New(color.FgGreen)
	removed = color.New(color.FgRed)
)

// ColorDiff colors the added and removed lines of a generator diff.
func ColorDiff(diff string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+ "):
			b.WriteString(added.Sprint(strings.TrimSuffix(line, "\n")))
		case strings.HasPrefix(line, "- "):
			b.WriteString(removed.Sprint(strings.TrimSuffix(line, "\n")))
		default:
			b.WriteString(strings.TrimSuffix(line, "\n"))
		}
		if strings.HasSuffix(line, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}
