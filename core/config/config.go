package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tristendillon/stubgen/core/logger"
	"gopkg.in/yaml.v3"
)

const FileName = "stubgen.yaml"

const (
	DefaultTestDirectory = "tests"
	DefaultTestSuffix    = "spec"
)

var ErrMissingSrcPath = errors.New("source path is required")

// Options drives a single generation run. The same shape is read from stubgen.yaml.
type Options struct {
	SrcPath             string `yaml:"src_path,omitempty"`
	SrcDirectory        string `yaml:"src_directory,omitempty"`
	TestDirectory       string `yaml:"test_directory"`
	TestSuffix          string `yaml:"test_suffix"`
	ExcludeDependencies string `yaml:"exclude_dependencies,omitempty"`
}

func Default() *Options {
	return &Options{
		TestDirectory: DefaultTestDirectory,
		TestSuffix:    DefaultTestSuffix,
	}
}

// Load reads stubgen.yaml from dir. A missing file yields Default().
// Keys absent from the file keep their default values.
func Load(dir string) (*Options, error) {
	filePath := filepath.Join(dir, FileName)

	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No config file found, using default config")
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to stat config file %s: %w", filePath, err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", *cfg)

	return cfg, nil
}

// Write stores opts as stubgen.yaml in dir and returns the file path.
func Write(dir string, opts *Options) (string, error) {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	filePath := filepath.Join(dir, FileName)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", filePath, err)
	}
	return filePath, nil
}

// Normalize trims every field and restores defaults for blank ones.
func (o *Options) Normalize() {
	o.SrcPath = strings.TrimSpace(o.SrcPath)
	o.SrcDirectory = strings.TrimSpace(o.SrcDirectory)
	o.TestDirectory = strings.TrimSpace(o.TestDirectory)
	o.TestSuffix = strings.TrimSpace(o.TestSuffix)
	o.ExcludeDependencies = strings.TrimSpace(o.ExcludeDependencies)

	if o.TestDirectory == "" {
		o.TestDirectory = DefaultTestDirectory
	}
	if o.TestSuffix == "" {
		o.TestSuffix = DefaultTestSuffix
	}
}

func (o *Options) Validate() error {
	if strings.TrimSpace(o.SrcPath) == "" {
		return ErrMissingSrcPath
	}
	if strings.ContainsAny(o.TestSuffix, `/\`) {
		return fmt.Errorf("test suffix %q must not contain path separators", o.TestSuffix)
	}
	return nil
}

func (o *Options) ExcludeList() []string {
	return strings.Fields(o.ExcludeDependencies)
}
