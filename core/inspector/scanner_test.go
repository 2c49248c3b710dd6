package inspector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tristendillon/stubgen/core/models"
)

func binding(name string) models.DependencyBinding {
	return models.DependencyBinding{BindingName: name, ModuleIdentifier: name}
}

func TestScanUsage_DistinctInOrder(t *testing.T) {
	content := "foo.baz(1); foo.qux(2); foo.baz(3);"
	record := ScanUsage(content, binding("foo"))
	assert.Equal(t, "foo", record.BindingName)
	assert.Equal(t, []string{"baz", "qux"}, record.InvokedMembers)
}

func TestScanUsage_NoCalls(t *testing.T) {
	content := "const x = foo.bar;\nfoo();\nfoo.(1);\n"
	record := ScanUsage(content, binding("foo"))
	assert.Empty(t, record.InvokedMembers)
	assert.NotNil(t, record.InvokedMembers)
}

func TestScanUsage_NestedCalls(t *testing.T) {
	content := "foo.outer(foo.inner(1));\nreturn foo.last();"
	record := ScanUsage(content, binding("foo"))
	assert.Equal(t, []string{"outer", "inner", "last"}, record.InvokedMembers)
}

func TestScanUsage_RequiresBoundary(t *testing.T) {
	content := `myrouter.urlFor('a');
locals.router.render('b');
router_.go();
router.absoluteUrlFor('c');
`
	record := ScanUsage(content, binding("router"))
	assert.Equal(t, []string{"absoluteUrlFor"}, record.InvokedMembers)
}

func TestScanUsage_ChainedPropertyIsNotACall(t *testing.T) {
	content := "constants.APPLICATION.productTypes.get();"
	record := ScanUsage(content, binding("constants"))
	assert.Empty(t, record.InvokedMembers)
}

func TestScanUsage_EscapesBindingName(t *testing.T) {
	content := "$.ajax({});\nx.each();\n$$.ready();\n"
	record := ScanUsage(content, binding("$"))
	assert.Equal(t, []string{"ajax"}, record.InvokedMembers)

	content = "_.get(a);\nx_y.set(b);\n"
	record = ScanUsage(content, binding("_"))
	assert.Equal(t, []string{"get"}, record.InvokedMembers)
}
