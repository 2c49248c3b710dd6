package template_engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/stubgen/core/config"
	"github.com/tristendillon/stubgen/core/models"
	"gopkg.in/yaml.v3"
)

const expectedSpec = `const _ = require('lodash');
const chai = require('chai');
const proxyquire = require('proxyquire');
const sinon = require('sinon');

const { expect } = chai;
chai.use(require('sinon-chai'));

describe('src/foo.js', () => {

  const fooStub = {
    baz: _.noop,
    qux: _.noop,
    '@noCallThru': true,
  };

  const _Stub = {
    get: _.noop,
    '@noCallThru': true,
  };

  const testedModule = proxyquire('../../src/foo', {
    'bar-lib': fooStub,
    'lodash': _Stub,
  });

  context('your test here', () => {

  });
});
`

func TestRender_ProxyquireSpec(t *testing.T) {
	data := models.SkeletonData{
		SrcPath:       "src/foo.js",
		SrcPathInTest: "../../src/foo",
		TargetPath:    "tests/src/foo.spec.js",
		Modules: []models.StubSpec{
			{Module: "bar-lib", Name: "fooStub", UsedFunctions: []string{"baz", "qux"}},
			{Module: "lodash", Name: "_Stub", UsedFunctions: []string{"get"}},
		},
	}

	out, err := NewTemplateEngine().Render(TEMPLATES.PROXYQUIRE.SPEC, data)
	require.NoError(t, err)
	assert.Equal(t, expectedSpec, string(out))
}

func TestRender_NoModules(t *testing.T) {
	data := models.SkeletonData{SrcPath: "a.js", SrcPathInTest: "./a"}

	out, err := NewTemplateEngine().Render(TEMPLATES.PROXYQUIRE.SPEC, data)
	require.NoError(t, err)
	assert.Contains(t, string(out), "describe('a.js', () => {\n\n  const testedModule = proxyquire('./a', {\n  });")
}

func TestRender_EscapesQuotes(t *testing.T) {
	data := models.SkeletonData{
		SrcPath:       "it's.js",
		SrcPathInTest: "./it's",
		Modules:       []models.StubSpec{{Module: "o'brien", Name: "xStub", UsedFunctions: []string{"y"}}},
	}

	out, err := NewTemplateEngine().Render(TEMPLATES.PROXYQUIRE.SPEC, data)
	require.NoError(t, err)
	assert.Contains(t, string(out), `describe('it\'s.js'`)
	assert.Contains(t, string(out), `'o\'brien': xStub,`)
}

func TestRender_DirectoryRef(t *testing.T) {
	_, err := NewTemplateEngine().Render(TEMPLATES.PROXYQUIRE.Ref, nil)
	assert.Error(t, err)
}

func TestWriteOutput_CreatesDirectories(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tests", "src", "foo.spec.js")
	data := models.SkeletonData{SrcPath: "src/foo.js", SrcPathInTest: "../../src/foo"}

	rendered, err := NewTemplateEngine().Render(TEMPLATES.PROXYQUIRE.SPEC, data)
	require.NoError(t, err)
	require.NoError(t, WriteOutput(out, rendered))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "proxyquire('../../src/foo'")
}

func TestGenerateFolder_InitConfig(t *testing.T) {
	dir := t.TempDir()
	opts := &config.Options{SrcPath: "src/modules/http/index.js", ExcludeDependencies: "_ moment"}

	require.NoError(t, NewTemplateEngine().GenerateFolder(TEMPLATES.INIT.Ref, dir, opts))

	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)

	var parsed config.Options
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, config.Options{
		SrcPath:             "src/modules/http/index.js",
		TestDirectory:       "tests",
		TestSuffix:          "spec",
		ExcludeDependencies: "_ moment",
	}, parsed)
}

func TestGenerateFolder_FileRef(t *testing.T) {
	err := NewTemplateEngine().GenerateFolder(TEMPLATES.INIT.CONFIG, t.TempDir(), nil)
	assert.Error(t, err)
}

func TestValidateTemplate(t *testing.T) {
	engine := NewTemplateEngine()
	assert.NoError(t, engine.ValidateTemplate(TEMPLATES.PROXYQUIRE.SPEC))
	assert.NoError(t, engine.ValidateTemplate(TEMPLATES.PROXYQUIRE.Ref))
	assert.NoError(t, engine.ValidateTemplate(TEMPLATES.INIT.CONFIG))
	assert.Error(t, engine.ValidateTemplate(TemplateRef{Path: "missing.tmpl"}))
	assert.Error(t, engine.ValidateTemplate(TemplateRef{Path: "init", IsDir: false}))
}
