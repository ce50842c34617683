package provider

import "strings"

var jsonStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

// EscapeJSONString escapes text for embedding as a JSON string value inside
// a hand-composed payload. The adapters in this package serialize their
// envelopes through encoding/json, which makes this redundant for them, but
// any template that splices model or player text into a JSON literal must
// run it through here first. Backslash is escaped before everything else.
func EscapeJSONString(s string) string {
	return jsonStringEscaper.Replace(s)
}
