package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSString(t *testing.T) {
	assert.Equal(t, "../helpers", JSString("../helpers"))
	assert.Equal(t, `it\'s`, JSString("it's"))
	assert.Equal(t, `C:\\src\\a`, JSString(`C:\src\a`))
}
