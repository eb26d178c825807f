package md

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "basic paragraph",
			input:    "<p>Hello world</p>",
			expected: "Hello world",
		},
		{
			name:     "h1 header",
			input:    "<h1>Title</h1>",
			expected: "# Title",
		},
		{
			name:     "h2 header",
			input:    "<h2>Subtitle</h2>",
			expected: "## Subtitle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToMarkdown(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToMarkdown_ParsedDocument(t *testing.T) {
	html := strings.Join(Parse([]string{"# Title", "", "Some text", "* item"}), "\n")

	result, err := ToMarkdown(html)
	require.NoError(t, err)
	assert.Contains(t, result, "# Title")
	assert.Contains(t, result, "Some text")
	assert.Contains(t, result, "item")
	assert.NotContains(t, result, "<body>")
}
