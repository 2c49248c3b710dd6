package shared

import "strings"

var jsStringReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// JSString escapes s for use inside a single-quoted JavaScript string literal.
func JSString(s string) string {
	return jsStringReplacer.Replace(s)
}
