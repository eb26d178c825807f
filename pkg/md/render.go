// render.go provides the markup fragments emitted by the line parser.
package md

import (
	"fmt"
	"strings"
)

// envelopeHead and envelopeTail wrap every converted document body.
var (
	envelopeHead = []string{"<!DOCTYPE html>", "<html>", "<head>", "</head>", "<body>", ""}
	envelopeTail = []string{"", "</body>", "</html>"}
)

// EnvelopeLen is the number of lines the document envelope adds to a body.
var EnvelopeLen = len(envelopeHead) + len(envelopeTail)

// Wrap surrounds body lines with the document envelope.
func Wrap(body []string) []string {
	out := make([]string, 0, len(body)+EnvelopeLen)
	out = append(out, envelopeHead...)
	out = append(out, body...)
	return append(out, envelopeTail...)
}

// htmlEscapes is applied in order, so "&" must come first.
var htmlEscapes = []struct{ from, to string }{
	{"&", "&amp;"},
	{`"`, "&quot;"},
	{"'", "&#39;"},
	{"¥", "&yen;"},
	{"<", "&lt;"},
	{">", "&gt;"},
}

// EscapeHTML escapes the reserved characters of a verbatim line.
func EscapeHTML(s string) string {
	for _, e := range htmlEscapes {
		s = strings.ReplaceAll(s, e.from, e.to)
	}
	return s
}

// openTag returns the wrapper emitted when c is opened, or "" for Normal.
func openTag(c BlockContext, class string) string {
	switch c {
	case Verbatim:
		if class == "" {
			return "<pre>"
		}
		return fmt.Sprintf(`<pre class="%s">`, class)
	case OrderedList:
		return "<ol>"
	case UnorderedListStar, UnorderedListDash:
		return "<ul>"
	case Table:
		return "<table>"
	}
	return ""
}

// closeTag returns the wrapper emitted when c is closed, or "" for Normal.
func closeTag(c BlockContext) string {
	switch c {
	case Verbatim:
		return "</pre>"
	case OrderedList:
		return "</ol>"
	case UnorderedListStar, UnorderedListDash:
		return "</ul>"
	case Table:
		return "</table>"
	}
	return ""
}

func heading(level int, text string) string {
	return fmt.Sprintf("<h%d>%s</h%d>", level, text, level)
}

func link(prefix, label, url, suffix string) string {
	return fmt.Sprintf(`%s<a href="%s">%s</a>%s`, prefix, url, label, suffix)
}
