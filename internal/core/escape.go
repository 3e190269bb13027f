package core

import (
	"net/url"
	"strings"
)

var jsonStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// EscapeJSONString escapes backslashes and double quotes only.
func EscapeJSONString(s string) string {
	return jsonStringEscaper.Replace(s)
}

func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EncodeURIComponent percent-encodes everything except unreserved characters.
func EncodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
