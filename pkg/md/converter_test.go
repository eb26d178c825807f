package md

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEngine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Engine
		wantErr  bool
	}{
		{name: "empty defaults to line", input: "", expected: EngineLine},
		{name: "line", input: "line", expected: EngineLine},
		{name: "goldmark mixed case", input: "GoldMark", expected: EngineGoldmark},
		{name: "unknown", input: "pandoc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEngine(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown engine")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvert_LineEngine(t *testing.T) {
	in := []string{"# Title", "* a"}

	out, err := Convert(in, EngineLine)
	require.NoError(t, err)
	assert.Equal(t, Parse(in), out)
}

func TestConvert_GoldmarkEngine(t *testing.T) {
	out, err := Convert([]string{"# Hi"}, EngineGoldmark)
	require.NoError(t, err)
	assert.Equal(t, Wrap([]string{"<h1>Hi</h1>"}), out)
}

func TestConvert_GoldmarkTable(t *testing.T) {
	out, err := Convert([]string{"| a | b |", "|---|---|", "| 1 | 2 |"}, EngineGoldmark)
	require.NoError(t, err)

	html := strings.Join(out, "\n")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<th>a</th>")
	assert.Contains(t, html, "<td>2</td>")
}

func TestConvert_GoldmarkEmpty(t *testing.T) {
	out, err := Convert(nil, EngineGoldmark)
	require.NoError(t, err)
	assert.Equal(t, Wrap(nil), out)
}

func TestConvert_UnknownEngine(t *testing.T) {
	_, err := Convert([]string{"x"}, Engine("nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown engine "nope"`)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single line no newline", "a", []string{"a"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"inner blank line", "a\n\nb", []string{"a", "", "b"}},
		{"byte order mark", "\uFEFF# T\n", []string{"# T"}},
		{"lone carriage return", "a\rb\r", []string{"a", "b"}},
		{"mixed terminators", "a\r\nb\rc\n", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitLines(tt.input))
		})
	}
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "", JoinLines(nil))
	assert.Equal(t, "a\n\nb\n", JoinLines([]string{"a", "", "b"}))
}

func TestConvertBody(t *testing.T) {
	body, err := ConvertBody([]string{"* a"}, EngineLine)
	require.NoError(t, err)
	assert.Equal(t, []string{"<ul>", "<li>a</li>", "</ul>"}, body)

	body, err = ConvertBody([]string{"*a*"}, EngineGoldmark)
	require.NoError(t, err)
	assert.Equal(t, []string{"<p><em>a</em></p>"}, body)
}
