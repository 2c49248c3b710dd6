package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tristendillon/stubgen/core/config"
	"github.com/tristendillon/stubgen/core/logger"
	"github.com/tristendillon/stubgen/core/prompt"
)

const envPrefix = "STUBGEN"

// option keys match the yaml keys of config.Options
const (
	keySrcPath       = "src_path"
	keySrcDirectory  = "src_directory"
	keyTestDirectory = "test_directory"
	keyTestSuffix    = "test_suffix"
	keyExclude       = "exclude_dependencies"
)

var optionFlagKeys = map[string]string{
	"src":         keySrcPath,
	"src-dir":     keySrcDirectory,
	"test-dir":    keyTestDirectory,
	"test-suffix": keyTestSuffix,
	"exclude":     keyExclude,
}

func addOptionFlags(fs *pflag.FlagSet) {
	fs.String("src", "", "Source file to generate a test skeleton for, relative to the base directory")
	fs.String("src-dir", "", "Base source directory, relative to the current directory")
	fs.String("test-dir", "", "Directory the test skeleton is written under (default \""+config.DefaultTestDirectory+"\")")
	fs.String("test-suffix", "", "Suffix inserted before .js in the test file name (default \""+config.DefaultTestSuffix+"\")")
	fs.String("exclude", "", "Space separated binding names to leave unmocked")
	fs.BoolP("interactive", "i", false, "Ask for every option interactively")
	fs.Bool("save", false, "Save the interactive answers to "+config.FileName)
}

// loadOptions layers flags over STUBGEN_* env vars over stubgen.yaml in wd.
// A positional argument stands in for --src.
func loadOptions(cmd *cobra.Command, args []string, wd string) (*config.Options, error) {
	base, err := config.Load(wd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keySrcPath, base.SrcPath)
	v.SetDefault(keySrcDirectory, base.SrcDirectory)
	v.SetDefault(keyTestDirectory, base.TestDirectory)
	v.SetDefault(keyTestSuffix, base.TestSuffix)
	v.SetDefault(keyExclude, base.ExcludeDependencies)

	for name, key := range optionFlagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	if len(args) > 0 && !cmd.Flags().Changed("src") {
		v.Set(keySrcPath, args[0])
	}

	opts := &config.Options{
		SrcPath:             v.GetString(keySrcPath),
		SrcDirectory:        v.GetString(keySrcDirectory),
		TestDirectory:       v.GetString(keyTestDirectory),
		TestSuffix:          v.GetString(keyTestSuffix),
		ExcludeDependencies: v.GetString(keyExclude),
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		answers, err := prompt.Ask(*opts, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return nil, err
		}
		opts = answers

		if save, _ := cmd.Flags().GetBool("save"); save {
			path, err := config.Write(wd, opts)
			if err != nil {
				return nil, err
			}
			logger.Info("Saved options to %s", path)
		}
	}

	opts.Normalize()
	if err := opts.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingSrcPath) {
			return nil, fmt.Errorf("%w: pass it as an argument, with --src, or run with -i", err)
		}
		return nil, err
	}
	logger.Debug("Options: %+v", *opts)

	return opts, nil
}

func workingDirectory() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}
