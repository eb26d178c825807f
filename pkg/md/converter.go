// Package md converts lightweight markdown documents to HTML documents.
//
// The language token after an opening fence is trimmed of surrounding
// whitespace, so "``` go" opens <pre class="go">.
package md

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Engine selects the renderer used for the document body.
type Engine string

const (
	// EngineLine is the line-driven parser implemented by Parse.
	EngineLine Engine = "line"
	// EngineGoldmark renders CommonMark with GFM tables.
	EngineGoldmark Engine = "goldmark"
)

// Engines lists the supported engines.
var Engines = []Engine{EngineLine, EngineGoldmark}

// mdParser is a pre-configured goldmark instance with GFM table extension.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// ParseEngine returns the engine with the given name, ignoring case.
// An empty name selects EngineLine.
func ParseEngine(name string) (Engine, error) {
	if name == "" {
		return EngineLine, nil
	}
	for _, e := range Engines {
		if strings.EqualFold(name, string(e)) {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown engine %q", name)
}

// Convert renders lines as a complete HTML document using engine.
func Convert(lines []string, engine Engine) ([]string, error) {
	body, err := ConvertBody(lines, engine)
	if err != nil {
		return nil, err
	}
	return Wrap(body), nil
}

// ConvertBody renders lines as HTML body lines using engine.
func ConvertBody(lines []string, engine Engine) ([]string, error) {
	switch engine {
	case EngineLine, "":
		return ParseBody(lines), nil
	case EngineGoldmark:
		return renderGoldmark(lines)
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}

func renderGoldmark(lines []string) ([]string, error) {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(strings.Join(lines, "\n")), &buf); err != nil {
		return nil, err
	}
	html := strings.TrimSuffix(buf.String(), "\n")
	if html == "" {
		return nil, nil
	}
	return strings.Split(html, "\n"), nil
}

// SplitLines splits document text into lines, accepting "\n", "\r\n" and
// lone "\r" terminators. A leading byte order mark is dropped and a trailing
// terminator does not produce an empty line.
func SplitLines(text string) []string {
	text = strings.TrimPrefix(text, "\uFEFF")
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// JoinLines joins output lines with "\n", terminating each line.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
