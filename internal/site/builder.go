package site

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/open-cli-collective/mdpub/pkg/md"
)

// Action describes what happened to a source file.
type Action string

const (
	ActionConverted Action = "converted"
	ActionCopied    Action = "copied"
	ActionSkipped   Action = "skipped"
)

// Entry records the outcome for one source file.
type Entry struct {
	Source string `json:"source"`
	Dest   string `json:"dest,omitempty"`
	Action Action `json:"action"`
}

// Report lists the outcome of a build in source order.
type Report struct {
	SourceDir string  `json:"source_dir"`
	OutputDir string  `json:"output_dir"`
	Entries   []Entry `json:"entries"`
}

// Count returns the number of entries with the given action.
func (r *Report) Count(a Action) int {
	n := 0
	for _, e := range r.Entries {
		if e.Action == a {
			n++
		}
	}
	return n
}

// Options configures a Builder.
type Options struct {
	// SourceDir is the directory holding the markdown tree.
	SourceDir string
	// OutputDir is the root of the published tree. Files are written to
	// OutputDir/<base of SourceDir>/<relative path>.
	OutputDir string
	// Extension replaces ".md" on converted files.
	Extension string
	Engine    md.Engine
	// SkipAssets leaves non-markdown files out instead of copying them.
	SkipAssets bool
	Logger     *log.Logger
}

// Builder converts a source tree into a mirrored output tree.
type Builder struct {
	opts   Options
	logger *log.Logger
}

// NewBuilder creates a builder. A nil logger discards all log output.
func NewBuilder(opts Options) *Builder {
	if opts.Extension == "" {
		opts.Extension = ".html"
	}
	if opts.Engine == "" {
		opts.Engine = md.EngineLine
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{opts: opts, logger: logger}
}

// Build publishes every file under the source directory. It stops at the
// first failure or when ctx is cancelled, returning the entries completed so
// far alongside the error.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	report := &Report{SourceDir: b.opts.SourceDir, OutputDir: b.opts.OutputDir}

	outRoot, err := checkOutputRoot(b.opts.SourceDir, b.opts.OutputDir)
	if err != nil {
		return report, err
	}

	files, err := Enumerate(b.opts.SourceDir)
	if err != nil {
		return report, err
	}

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		src := filepath.Join(b.opts.SourceDir, rel)
		dest := OutputPath(outRoot, rel, b.opts.Extension)

		entry := Entry{Source: rel, Dest: dest}
		switch {
		case IsMarkdown(rel):
			if err := b.convertFile(src, dest); err != nil {
				return report, err
			}
			entry.Action = ActionConverted
		case b.opts.SkipAssets:
			entry.Dest = ""
			entry.Action = ActionSkipped
		default:
			if err := copyFile(src, dest); err != nil {
				return report, err
			}
			entry.Action = ActionCopied
		}

		b.logger.Debug("published", "source", rel, "action", entry.Action)
		report.Entries = append(report.Entries, entry)
	}

	b.logger.Info("build complete",
		"converted", report.Count(ActionConverted),
		"copied", report.Count(ActionCopied),
		"skipped", report.Count(ActionSkipped))

	return report, nil
}

// checkOutputRoot returns the directory files are published to and makes
// sure it lies outside the source tree.
func checkOutputRoot(sourceDir, outputDir string) (string, error) {
	source, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", sourceDir, err)
	}
	out, err := filepath.Abs(filepath.Join(outputDir, filepath.Base(source)))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", outputDir, err)
	}

	rel, err := filepath.Rel(source, out)
	if err == nil && (rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))) {
		return "", fmt.Errorf("%w: %s is inside %s", ErrOutputInsideSource, out, source)
	}
	return out, nil
}

func (b *Builder) convertFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}

	out, err := md.Convert(md.SplitLines(string(data)), b.opts.Engine)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dest, err)
	}
	if err := os.WriteFile(dest, []byte(md.JoinLines(out)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dest, err)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}
