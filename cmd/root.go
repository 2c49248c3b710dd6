/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tristendillon/stubgen/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "stubgen",
	Short: "Generates proxyquire test skeletons for Node.js modules.",
	Long: `Stubgen reads a CommonJS source file, finds the modules it requires and the
functions it calls on them, and writes a mocha test skeleton that loads the file
through proxyquire with a no-op mock for every dependency.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		if logfile == "" {
			return nil
		}
		closer, err := logger.OpenLogFile(logfile)
		if err != nil {
			return err
		}
		logCloser = closer
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLogFile()
	},
}

var logfile string
var verbose bool
var logCloser io.Closer

func closeLogFile() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		logger.Debug("Failed to close log file: %v", err)
	}
	logCloser = nil
}

func Execute() {
	err := rootCmd.Execute()
	closeLogFile()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}
