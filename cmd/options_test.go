package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/stubgen/core/config"
)

func newOptionsCmd(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addOptionFlags(c.Flags())
	require.NoError(t, c.ParseFlags(flags))
	return c
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0644))
}

func TestLoadOptionsDefaults(t *testing.T) {
	dir := t.TempDir()

	opts, err := loadOptions(newOptionsCmd(t), []string{"src/index.js"}, dir)
	require.NoError(t, err)
	assert.Equal(t, &config.Options{
		SrcPath:       "src/index.js",
		TestDirectory: config.DefaultTestDirectory,
		TestSuffix:    config.DefaultTestSuffix,
	}, opts)
}

func TestLoadOptionsPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "src_path: from-file.js\ntest_directory: spec\ntest_suffix: file\nexclude_dependencies: _ moment\n")

	t.Run("file", func(t *testing.T) {
		opts, err := loadOptions(newOptionsCmd(t), nil, dir)
		require.NoError(t, err)
		assert.Equal(t, "from-file.js", opts.SrcPath)
		assert.Equal(t, "spec", opts.TestDirectory)
		assert.Equal(t, "file", opts.TestSuffix)
		assert.Equal(t, []string{"_", "moment"}, opts.ExcludeList())
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("STUBGEN_TEST_SUFFIX", "env")

		opts, err := loadOptions(newOptionsCmd(t), nil, dir)
		require.NoError(t, err)
		assert.Equal(t, "env", opts.TestSuffix)
		assert.Equal(t, "spec", opts.TestDirectory)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("STUBGEN_TEST_SUFFIX", "env")

		opts, err := loadOptions(newOptionsCmd(t, "--test-suffix", "flag", "--exclude", "lodash"), nil, dir)
		require.NoError(t, err)
		assert.Equal(t, "flag", opts.TestSuffix)
		assert.Equal(t, []string{"lodash"}, opts.ExcludeList())
	})

	t.Run("positional argument over file", func(t *testing.T) {
		opts, err := loadOptions(newOptionsCmd(t), []string{"arg.js"}, dir)
		require.NoError(t, err)
		assert.Equal(t, "arg.js", opts.SrcPath)
	})

	t.Run("src flag over positional argument", func(t *testing.T) {
		opts, err := loadOptions(newOptionsCmd(t, "--src", "flag.js"), []string{"arg.js"}, dir)
		require.NoError(t, err)
		assert.Equal(t, "flag.js", opts.SrcPath)
	})
}

func TestLoadOptionsMissingSrcPath(t *testing.T) {
	_, err := loadOptions(newOptionsCmd(t), nil, t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingSrcPath)
}

func TestLoadOptionsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "src_path: [unterminated\n")

	_, err := loadOptions(newOptionsCmd(t), []string{"a.js"}, dir)
	assert.Error(t, err)
}
