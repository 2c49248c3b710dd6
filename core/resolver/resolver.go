// Package resolver computes where a generated test lives and how it refers
// back to the file under test. It only does path arithmetic.
package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tristendillon/stubgen/core/config"
	"github.com/tristendillon/stubgen/core/models"
)

// GenerateTestFilePath mirrors srcPath under testDirectory, inserting
// testSuffix before the extension: src/a/b.js -> tests/src/a/b.spec.js.
func GenerateTestFilePath(srcPath, testDirectory, testSuffix string) string {
	if testDirectory == "" {
		testDirectory = config.DefaultTestDirectory
	}
	if testSuffix == "" {
		testSuffix = config.DefaultTestSuffix
	}

	extension := filepath.Ext(srcPath)
	basename := strings.TrimSuffix(filepath.Base(srcPath), extension)

	parts := []string{basename, testSuffix}
	if extension != "" {
		parts = append(parts, strings.TrimPrefix(extension, "."))
	}

	return filepath.Join(testDirectory, filepath.Dir(srcPath), strings.Join(parts, "."))
}

// FullPath joins relativePath onto cwd. "./foo" and "foo" resolve to the same path.
func FullPath(cwd, relativePath string) string {
	if filepath.IsAbs(relativePath) {
		return filepath.Clean(relativePath)
	}
	return filepath.Join(cwd, strings.TrimPrefix(relativePath, "./"))
}

// SourcePathInTest returns the module path a test at fromAbsolutePath uses to
// require toAbsolutePath: the relative directory plus the extension-less base name.
func SourcePathInTest(fromAbsolutePath, toAbsolutePath string) (string, error) {
	relativePath, err := filepath.Rel(filepath.Dir(fromAbsolutePath), filepath.Dir(toAbsolutePath))
	if err != nil {
		return "", fmt.Errorf("failed to relate %s to %s: %w", toAbsolutePath, fromAbsolutePath, err)
	}

	extension := filepath.Ext(toAbsolutePath)
	basename := strings.TrimSuffix(filepath.Base(toAbsolutePath), extension)

	modulePath := filepath.ToSlash(filepath.Join(relativePath, basename))
	if !strings.HasPrefix(modulePath, "../") {
		// Node treats a bare name as a package.
		modulePath = "./" + modulePath
	}
	return modulePath, nil
}

// BaseDir is cwd, or srcDirectory resolved against cwd when one is given.
func BaseDir(cwd, srcDirectory string) string {
	if srcDirectory == "" {
		return filepath.Clean(cwd)
	}
	return FullPath(cwd, srcDirectory)
}

func Resolve(cwd string, opts *config.Options) (models.PathMetadata, error) {
	if err := opts.Validate(); err != nil {
		return models.PathMetadata{}, err
	}

	base := BaseDir(cwd, opts.SrcDirectory)
	targetPath := GenerateTestFilePath(opts.SrcPath, opts.TestDirectory, opts.TestSuffix)

	paths := models.PathMetadata{
		SrcPath:            opts.SrcPath,
		SrcAbsolutePath:    FullPath(base, opts.SrcPath),
		TargetPath:         targetPath,
		TargetAbsolutePath: FullPath(base, targetPath),
	}

	srcPathInTest, err := SourcePathInTest(paths.TargetAbsolutePath, paths.SrcAbsolutePath)
	if err != nil {
		return models.PathMetadata{}, err
	}
	paths.SrcPathInTest = srcPathInTest

	return paths, nil
}
