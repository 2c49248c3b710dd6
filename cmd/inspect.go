package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/stubgen/core/generator"
	"github.com/tristendillon/stubgen/core/logger"
	"github.com/tristendillon/stubgen/core/report"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [src]",
	Short: "Lists the mocks a source file would get",
	Long:  `Prints the resolved paths, the mocks and the skipped bindings of a source file without writing anything.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("inspect called")
		wd, err := workingDirectory()
		if err != nil {
			return err
		}

		opts, err := loadOptions(cmd, args, wd)
		if err != nil {
			return err
		}

		paths, result, err := generator.NewSkeletonGenerator(wd).Inspect(opts)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", opts.SrcPath, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, report.PathsTable(paths))
		fmt.Fprintln(out)
		fmt.Fprintln(out, report.StubsTable(result))
		if skipped := report.SkippedTable(result); skipped != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, skipped)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	addOptionFlags(inspectCmd.Flags())
}
