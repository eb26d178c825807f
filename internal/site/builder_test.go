package site

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/mdpub/pkg/md"
)

func newTree(t *testing.T) (source, output string) {
	t.Helper()
	root := t.TempDir()
	source = filepath.Join(root, "md")
	output = filepath.Join(root, "public")

	writeFile(t, filepath.Join(source, "index.md"), "# Home\r\n\r\n* one\r\n* two\r\n")
	writeFile(t, filepath.Join(source, "guide", "setup.md"), "```sh\necho <hi>\n```\n")
	writeFile(t, filepath.Join(source, "img", "logo.png"), "\x89PNG")
	return source, output
}

func TestBuilder_Build(t *testing.T) {
	source, output := newTree(t)

	report, err := NewBuilder(Options{SourceDir: source, OutputDir: output}).Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Count(ActionConverted))
	assert.Equal(t, 1, report.Count(ActionCopied))
	assert.Equal(t, 0, report.Count(ActionSkipped))

	index, err := os.ReadFile(filepath.Join(output, "md", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, md.JoinLines(md.Parse([]string{"# Home", "", "* one", "* two"})), string(index))

	setup, err := os.ReadFile(filepath.Join(output, "md", "guide", "setup.html"))
	require.NoError(t, err)
	assert.Contains(t, string(setup), "<pre class=\"sh\">\necho &lt;hi&gt;\n</pre>\n")

	logo, err := os.ReadFile(filepath.Join(output, "md", "img", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(logo))
}

func TestBuilder_SkipAssets(t *testing.T) {
	source, output := newTree(t)

	report, err := NewBuilder(Options{
		SourceDir:  source,
		OutputDir:  output,
		SkipAssets: true,
	}).Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Count(ActionSkipped))
	_, err = os.Stat(filepath.Join(output, "md", "img", "logo.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestBuilder_ExtensionAndEngine(t *testing.T) {
	source, output := newTree(t)

	_, err := NewBuilder(Options{
		SourceDir: source,
		OutputDir: output,
		Extension: ".htm",
		Engine:    md.EngineGoldmark,
	}).Build(context.Background())
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(output, "md", "index.htm"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<h1>Home</h1>")
	assert.Contains(t, string(index), "<li>one</li>")
}

func TestBuilder_UnknownEngine(t *testing.T) {
	source, output := newTree(t)

	_, err := NewBuilder(Options{
		SourceDir: source,
		OutputDir: output,
		Engine:    md.Engine("bogus"),
	}).Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to convert")
}

func TestBuilder_Cancelled(t *testing.T) {
	source, output := newTree(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewBuilder(Options{SourceDir: source, OutputDir: output}).Build(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Entries)
}

func TestBuilder_Logs(t *testing.T) {
	source, output := newTree(t)

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	_, err := NewBuilder(Options{SourceDir: source, OutputDir: output, Logger: logger}).Build(context.Background())
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "build complete")
	assert.Equal(t, 3, strings.Count(logs, "published"))
}

func TestBuilder_MissingSource(t *testing.T) {
	_, err := NewBuilder(Options{
		SourceDir: filepath.Join(t.TempDir(), "md"),
		OutputDir: t.TempDir(),
	}).Build(context.Background())
	require.Error(t, err)
}

func TestBuilder_OutputInsideSource(t *testing.T) {
	tests := []struct {
		name   string
		output func(root, source string) string
	}{
		{
			name:   "output root is the source",
			output: func(root, _ string) string { return filepath.Join(root, ".") },
		},
		{
			name:   "output root below the source",
			output: func(_, source string) string { return filepath.Join(source, "site") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			source := filepath.Join(root, "md")
			writeFile(t, filepath.Join(source, "index.md"), "# Home\n")
			writeFile(t, filepath.Join(source, "logo.png"), "PNGDATA")

			report, err := NewBuilder(Options{
				SourceDir: source,
				OutputDir: tt.output(root, source),
			}).Build(context.Background())
			require.ErrorIs(t, err, ErrOutputInsideSource)
			assert.Empty(t, report.Entries)

			logo, err := os.ReadFile(filepath.Join(source, "logo.png"))
			require.NoError(t, err)
			assert.Equal(t, "PNGDATA", string(logo))

			entries, err := os.ReadDir(source)
			require.NoError(t, err)
			assert.Len(t, entries, 2)
		})
	}
}

func TestBuilder_OutputBesideSource(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "md")
	writeFile(t, filepath.Join(source, "index.md"), "# Home\n")

	_, err := NewBuilder(Options{
		SourceDir: source,
		OutputDir: filepath.Join(root, "md-site"),
	}).Build(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "md-site", "md", "index.html"))
}
