/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tristendillon/stubgen/core/config"
	"github.com/tristendillon/stubgen/core/logger"
	"github.com/tristendillon/stubgen/core/template_engine"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Writes a default stubgen.yaml",
	Long:  `Creates a commented stubgen.yaml with the default options in dir, or in the current directory.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("init called")
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		engine := template_engine.NewTemplateEngine()
		if err := engine.ValidateTemplate(template_engine.TEMPLATES.INIT.Ref); err != nil {
			return err
		}

		target := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(target); err == nil {
			if !initForce {
				return fmt.Errorf("%s already exists, use --force to overwrite", target)
			}
			logger.Debug("%s already exists. Overwriting.", target)
		}

		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		if err := engine.GenerateFolder(template_engine.TEMPLATES.INIT.Ref, dir, config.Default()); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", target)
		fmt.Fprintf(cmd.OutOrStdout(), "Next Steps:\n")
		fmt.Fprintf(cmd.OutOrStdout(), "  - set src_path in %s\n", config.FileName)
		fmt.Fprintf(cmd.OutOrStdout(), "  - stubgen generate\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing stubgen.yaml")
}
