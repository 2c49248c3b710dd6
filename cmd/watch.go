package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tristendillon/stubgen/core/cache"
	"github.com/tristendillon/stubgen/core/generator"
	"github.com/tristendillon/stubgen/core/logger"
	"github.com/tristendillon/stubgen/core/watcher"
)

var watchForce bool

var watchCmd = &cobra.Command{
	Use:   "watch [src]",
	Short: "Regenerates the test skeleton whenever the source file changes",
	Long: `Generates the test skeleton once, then watches the source file and regenerates
the skeleton after every change to its content. Stop with Ctrl+C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("watch called")
		wd, err := workingDirectory()
		if err != nil {
			return err
		}

		opts, err := loadOptions(cmd, args, wd)
		if err != nil {
			return err
		}

		gen := generator.NewSkeletonGenerator(wd).WithCache(cache.NewFileCache(cache.DefaultTTL))
		paths, _, err := gen.Inspect(opts)
		if err != nil {
			return err
		}

		fw, err := watcher.NewFileWatcher(paths.SrcAbsolutePath)
		if err != nil {
			return err
		}
		fw.WithCache(gen.Cache())

		regenerate := func() error {
			result, err := gen.Generate(opts, generator.WriteMode{Force: watchForce})
			if errors.Is(err, generator.ErrTargetExists) {
				logger.Warn("%v", err)
				return nil
			}
			if err != nil {
				return err
			}
			if result.Outcome == generator.OutcomeCached {
				logger.Debug("%s unchanged, skipping", paths.SrcPath)
				return nil
			}
			logger.Info("%s %s (%d mocks)", result.Outcome, result.Paths.TargetPath, len(result.Result.Stubs))
			return nil
		}

		fw.FileWatcher.AddOnStartFunc(func() error {
			logger.Info("Watching %s, press Ctrl+C to stop", paths.SrcPath)
			return regenerate()
		})
		fw.FileWatcher.AddOnChangeFunc(regenerate)
		fw.FileWatcher.AddOnCloseFunc(func() error {
			gen.Cache().LogStats()
			return nil
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		watchErr := fw.Watch(ctx)
		if err := fw.Close(); err != nil {
			logger.Debug("Failed to close watcher: %v", err)
		}
		if watchErr != nil && !errors.Is(watchErr, context.Canceled) {
			return fmt.Errorf("watcher stopped: %w", watchErr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	addOptionFlags(watchCmd.Flags())
	watchCmd.Flags().BoolVar(&watchForce, "force", false, "Overwrite an existing test file with different content")
}
