/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/stubgen/core/generator"
	"github.com/tristendillon/stubgen/core/logger"
	"github.com/tristendillon/stubgen/core/report"
)

var (
	force  bool
	dryRun bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [src]",
	Short: "Generates the test skeleton for a source file",
	Long: `Generates a proxyquire test skeleton for a source file. Every required module
whose functions are called gets a mock; the skeleton is written under the test
directory, mirroring the source path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("generate called")
		wd, err := workingDirectory()
		if err != nil {
			return err
		}

		opts, err := loadOptions(cmd, args, wd)
		if err != nil {
			return err
		}

		gen := generator.NewSkeletonGenerator(wd)
		result, err := gen.Generate(opts, generator.WriteMode{Force: force, DryRun: dryRun})
		if errors.Is(err, generator.ErrTargetExists) && result != nil {
			fmt.Fprintln(cmd.OutOrStdout(), report.ColorDiff(result.Diff))
			return err
		}
		if err != nil {
			return fmt.Errorf("failed to generate skeleton: %w", err)
		}

		if result.Outcome == generator.OutcomeDryRun {
			return generator.WriteDryRun(cmd.OutOrStdout(), result)
		}

		printSummary(cmd, result)
		return nil
	},
}

func printSummary(cmd *cobra.Command, result *generator.Report) {
	switch result.Outcome {
	case generator.OutcomeCreated:
		logger.Info("Created %s", result.Paths.TargetPath)
	case generator.OutcomeOverwritten:
		logger.Info("Overwrote %s", result.Paths.TargetPath)
	case generator.OutcomeUpdated:
		logger.Info("Updated %s", result.Paths.TargetPath)
	default:
		logger.Info("%s is up to date", result.Paths.TargetPath)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.StubsTable(result.Result))
	if skipped := report.SkippedTable(result.Result); skipped != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, skipped)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addOptionFlags(generateCmd.Flags())
	generateCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing test file with different content")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the skeleton instead of writing it")
}
