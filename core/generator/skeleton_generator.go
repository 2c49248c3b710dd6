package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/tristendillon/stubgen/core/cache"
	"github.com/tristendillon/stubgen/core/config"
	"github.com/tristendillon/stubgen/core/inspector"
	"github.com/tristendillon/stubgen/core/logger"
	"github.com/tristendillon/stubgen/core/models"
	"github.com/tristendillon/stubgen/core/resolver"
	"github.com/tristendillon/stubgen/core/template_engine"
)

var ErrTargetExists = errors.New("target file already exists with different content")

type Outcome string

const (
	OutcomeCreated     Outcome = "created"
	OutcomeOverwritten Outcome = "overwritten"
	OutcomeUpdated     Outcome = "updated"
	OutcomeUnchanged   Outcome = "unchanged"
	OutcomeConflict    Outcome = "conflict"
	OutcomeDryRun      Outcome = "dry-run"
	OutcomeCached      Outcome = "cached"
)

type WriteMode struct {
	Force  bool // Overwrite a target whose content differs
	DryRun bool // Render only, never touch the target
}

// Report describes one generation run.
type Report struct {
	Paths   models.PathMetadata
	Result  *models.InspectionResult
	Outcome Outcome
	Content []byte
	Diff    string // Set when an existing target differs from Content
}

type SkeletonGenerator struct {
	wd     string
	engine *template_engine.TemplateEngine
	cache  *cache.FileCache

	mu      sync.Mutex
	written map[string]string // target absolute path -> hash of the skeleton last written there
}

func NewSkeletonGenerator(wd string) *SkeletonGenerator {
	return &SkeletonGenerator{
		wd:      wd,
		engine:  template_engine.NewTemplateEngine(),
		written: make(map[string]string),
	}
}

// WithCache makes Generate skip sources whose content has not changed since
// the last successful run. The cache is keyed by source path only, so a
// generator with a cache must always be called with the same options.
func (sg *SkeletonGenerator) WithCache(fc *cache.FileCache) *SkeletonGenerator {
	sg.cache = fc
	return sg
}

func (sg *SkeletonGenerator) Cache() *cache.FileCache {
	return sg.cache
}

// Inspect resolves the paths for opts and inspects the source file.
func (sg *SkeletonGenerator) Inspect(opts *config.Options) (models.PathMetadata, *models.InspectionResult, error) {
	paths, err := resolver.Resolve(sg.wd, opts)
	if err != nil {
		return models.PathMetadata{}, nil, fmt.Errorf("failed to resolve paths: %w", err)
	}
	logger.Debug("Resolved paths: %+v", paths)

	result, err := inspector.InspectFile(paths.SrcAbsolutePath, opts.ExcludeList())
	if err != nil {
		return paths, nil, err
	}

	if result.IsEmpty() {
		logger.Info("No mockable dependencies found in %s, nothing to mock", paths.SrcPath)
	}
	for _, skipped := range result.Skipped {
		logger.Debug("Skipped %s (%s): %s", skipped.BindingName, skipped.ModuleIdentifier, skipped.Reason)
	}

	return paths, result, nil
}

// Generate runs the whole pipeline for opts. A target still holding the
// skeleton this generator last wrote is replaced. Any other existing content
// is only replaced with mode.Force; otherwise the returned report carries the
// diff and the error wraps ErrTargetExists.
func (sg *SkeletonGenerator) Generate(opts *config.Options, mode WriteMode) (*Report, error) {
	if sg.cache != nil && !mode.DryRun {
		if report, ok := sg.cached(opts); ok {
			return report, nil
		}
	}

	paths, result, err := sg.Inspect(opts)
	if err != nil {
		return nil, err
	}

	data := models.NewSkeletonData(paths, result)
	content, err := sg.engine.Render(template_engine.TEMPLATES.PROXYQUIRE.SPEC, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render skeleton: %w", err)
	}

	report := &Report{
		Paths:   paths,
		Result:  result,
		Content: content,
	}

	if mode.DryRun {
		report.Outcome = OutcomeDryRun
		return report, nil
	}

	existing, err := os.ReadFile(paths.TargetAbsolutePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		report.Outcome = OutcomeCreated
	case err != nil:
		return nil, fmt.Errorf("failed to read existing target %s: %w", paths.TargetPath, err)
	case bytes.Equal(existing, content):
		report.Outcome = OutcomeUnchanged
		logger.Debug("%s is up to date", paths.TargetPath)
		sg.markWritten(paths.TargetAbsolutePath, content)
		sg.remember(paths, result)
		return report, nil
	default:
		report.Diff = LineDiff(string(existing), string(content))
		switch {
		case sg.wroteLast(paths.TargetAbsolutePath, existing):
			report.Outcome = OutcomeUpdated
		case mode.Force:
			report.Outcome = OutcomeOverwritten
		default:
			report.Outcome = OutcomeConflict
			return report, fmt.Errorf("%w: %s (use --force to overwrite)", ErrTargetExists, paths.TargetPath)
		}
	}

	if err := template_engine.WriteOutput(paths.TargetAbsolutePath, content); err != nil {
		return nil, fmt.Errorf("failed to write skeleton: %w", err)
	}
	logger.Debug("Wrote %s (%s)", paths.TargetPath, report.Outcome)

	sg.markWritten(paths.TargetAbsolutePath, content)
	sg.remember(paths, result)
	return report, nil
}

func (sg *SkeletonGenerator) cached(opts *config.Options) (*Report, bool) {
	paths, err := resolver.Resolve(sg.wd, opts)
	if err != nil {
		return nil, false
	}

	result, ok := sg.cache.ValidateAndGet(paths.SrcAbsolutePath)
	if !ok {
		return nil, false
	}

	if _, err := os.Stat(paths.TargetAbsolutePath); err != nil {
		return nil, false
	}

	return &Report{Paths: paths, Result: result, Outcome: OutcomeCached}, true
}

func (sg *SkeletonGenerator) markWritten(target string, content []byte) {
	sg.mu.Lock()
	defer sg.mu.Unlock()
	sg.written[target] = models.ContentHash(content)
}

// wroteLast reports whether existing is exactly what this generator last wrote to target.
func (sg *SkeletonGenerator) wroteLast(target string, existing []byte) bool {
	sg.mu.Lock()
	defer sg.mu.Unlock()
	hash, ok := sg.written[target]
	return ok && hash == models.ContentHash(existing)
}

func (sg *SkeletonGenerator) remember(paths models.PathMetadata, result *models.InspectionResult) {
	if sg.cache == nil {
		return
	}
	if err := sg.cache.Set(paths.SrcAbsolutePath, result); err != nil {
		logger.Debug("Failed to cache inspection for %s: %v", paths.SrcPath, err)
	}
}

// WriteDryRun prints the rendered skeleton of a dry-run report.
func WriteDryRun(w io.Writer, report *Report) error {
	if _, err := fmt.Fprintf(w, "// %s\n", report.Paths.TargetPath); err != nil {
		return err
	}
	_, err := w.Write(report.Content)
	return err
}
