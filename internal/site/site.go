// Package site publishes a tree of markdown files as HTML.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrSourceNotFound is returned when no source directory exists at or above
// the starting directory.
var ErrSourceNotFound = errors.New("source directory not found")

// ErrOutputInsideSource is returned when the publish directory would be the
// source directory or one of its descendants.
var ErrOutputInsideSource = errors.New("output directory is inside the source directory")

// FindSourceDir looks for a child directory called name in start and then in
// each of its parents, returning the absolute path of the first match.
func FindSourceDir(start, name string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %q directory in %s or its parents", ErrSourceNotFound, name, start)
		}
		dir = parent
	}
}

// Enumerate returns the regular files under root as sorted paths relative
// to root.
func Enumerate(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// IsMarkdown reports whether path has a markdown extension.
func IsMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}

// OutputPath returns where rel is written under outRoot. Markdown files get
// their extension replaced by ext; other files keep their name.
func OutputPath(outRoot, rel, ext string) string {
	if IsMarkdown(rel) {
		rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ext
	}
	return filepath.Join(outRoot, rel)
}
