// Package render turns a raw summary into displayable output. Summaries may
// carry light emphasis markup: **bold**, *italic*, and newlines. Everything
// else passes through verbatim, escaped where the target needs it.
package render

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*\n]+)\*`)
)

// HTML renders a summary for the web page. The input is escaped before any
// substitution, so markup-significant characters from the backend render
// inert. Bold must run before italic so double markers are not split.
func HTML(s string) template.HTML {
	out := html.EscapeString(s)
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = strings.ReplaceAll(out, "\n", "<br>")
	return template.HTML(out)
}

// ANSI renders a summary for a terminal using SGR bold and italic.
func ANSI(s string) string {
	out := boldRe.ReplaceAllString(s, "\x1b[1m$1\x1b[22m")
	out = italicRe.ReplaceAllString(out, "\x1b[3m$1\x1b[23m")
	return out
}

// Plain strips the emphasis markers, yielding the text content of the
// rendered summary. This is what a clipboard copy receives.
func Plain(s string) string {
	out := boldRe.ReplaceAllString(s, "$1")
	out = italicRe.ReplaceAllString(out, "$1")
	return out
}
