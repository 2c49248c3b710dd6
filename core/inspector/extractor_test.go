package inspector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/stubgen/core/models"
)

func TestExtractDependencies_NoDeclarations(t *testing.T) {
	for _, content := range []string{
		"",
		"module.exports = () => 42;\n",
		"import foo from 'foo';\nfoo.bar();\n",
	} {
		bindings, skipped := ExtractDependencies(content, nil)
		assert.Empty(t, bindings)
		assert.Empty(t, skipped)
	}
}

func TestExtractDependencies_NameAndModule(t *testing.T) {
	content := `const _ = require('lodash');
const couponQueries = require("../../payment/queries/coupon");
`
	bindings, skipped := ExtractDependencies(content, nil)
	require.Len(t, bindings, 2)
	assert.Empty(t, skipped)

	assert.Equal(t, models.DependencyBinding{BindingName: "_", ModuleIdentifier: "lodash"}, bindings[0])
	assert.Equal(t, models.DependencyBinding{
		BindingName:      "couponQueries",
		ModuleIdentifier: "../../payment/queries/coupon",
	}, bindings[1])
}

func TestExtractDependencies_Destructuring(t *testing.T) {
	content := `const { HttpError } = require('@cermati/cermati-utils/http/error');
const ({ a }) = require('weird');
const ok = require('ok');
`
	bindings, skipped := ExtractDependencies(content, nil)
	require.Len(t, bindings, 1)
	assert.Equal(t, "ok", bindings[0].BindingName)

	require.Len(t, skipped, 2)
	for _, s := range skipped {
		assert.Equal(t, models.SkipDestructuring, s.Reason)
	}
	assert.Equal(t, "{ HttpError }", skipped[0].BindingName)
	assert.Equal(t, "@cermati/cermati-utils/http/error", skipped[0].ModuleIdentifier)
}

func TestExtractDependencies_Excluded(t *testing.T) {
	content := `const _ = require('lodash');
const moment = require('moment');
const router = require('route-label');
`
	bindings, skipped := ExtractDependencies(content, ParseExcludeList("_  router"))
	require.Len(t, bindings, 1)
	assert.Equal(t, "moment", bindings[0].BindingName)

	require.Len(t, skipped, 2)
	assert.Equal(t, models.SkippedBinding{BindingName: "_", ModuleIdentifier: "lodash", Reason: models.SkipExcluded}, skipped[0])
	assert.Equal(t, models.SkippedBinding{BindingName: "router", ModuleIdentifier: "route-label", Reason: models.SkipExcluded}, skipped[1])
}

func TestExtractDependencies_MissingSemicolonIsIgnored(t *testing.T) {
	content := "const a = require('a')\nconst b = require('b');\n"
	bindings, _ := ExtractDependencies(content, nil)
	require.Len(t, bindings, 1)
	assert.Equal(t, "b", bindings[0].BindingName)
}

func TestExtractDependencies_CalledRequireIsIgnored(t *testing.T) {
	content := "const logger = require('@cermati/cermati-utils/logger')(__filename);\n"
	bindings, skipped := ExtractDependencies(content, nil)
	assert.Empty(t, bindings)
	assert.Empty(t, skipped)
}

func TestExtractDependencies_IndentedAndSameLine(t *testing.T) {
	content := "  const a = require('a'); let b = require(\"b\");\n\tvar c = require('c');\n"
	bindings, _ := ExtractDependencies(content, nil)
	require.Len(t, bindings, 3)
	assert.Equal(t, "a", bindings[0].BindingName)
	assert.Equal(t, "b", bindings[1].BindingName)
	assert.Equal(t, "c", bindings[2].BindingName)
}

func TestExtractDependencies_PeriodSeparator(t *testing.T) {
	content := "module.helpers = require('./helpers');\n"
	bindings, _ := ExtractDependencies(content, nil)
	require.Len(t, bindings, 1)
	assert.Equal(t, "helpers", bindings[0].BindingName)
	assert.Equal(t, "./helpers", bindings[0].ModuleIdentifier)
}

func TestExtractDependencies_MemberAssignmentIsUnsupported(t *testing.T) {
	content := `class Client {
  constructor() {
    this.client = require('http-client');
    config.store = require('./store');
  }
}
const plain = require('plain');
`
	bindings, skipped := ExtractDependencies(content, nil)
	require.Len(t, bindings, 1)
	assert.Equal(t, "plain", bindings[0].BindingName)

	require.Len(t, skipped, 2)
	assert.Equal(t, models.SkippedBinding{
		BindingName:      "this.client",
		ModuleIdentifier: "http-client",
		Reason:           models.SkipUnsupported,
	}, skipped[0])
	assert.Equal(t, models.SkippedBinding{
		BindingName:      "config.store",
		ModuleIdentifier: "./store",
		Reason:           models.SkipUnsupported,
	}, skipped[1])
}

func TestExtractDependencies_Duplicate(t *testing.T) {
	content := "const foo = require('a');\nconst foo = require('b');\n"
	bindings, skipped := ExtractDependencies(content, nil)
	require.Len(t, bindings, 1)
	assert.Equal(t, "a", bindings[0].ModuleIdentifier)

	require.Len(t, skipped, 1)
	assert.Equal(t, models.SkipDuplicate, skipped[0].Reason)
	assert.Equal(t, "b", skipped[0].ModuleIdentifier)
}

func TestParseExcludeList(t *testing.T) {
	assert.Empty(t, ParseExcludeList(""))
	assert.Empty(t, ParseExcludeList("   "))
	assert.Equal(t, []string{"_", "moment"}, ParseExcludeList(" _ moment "))
}
