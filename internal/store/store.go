// Package store persists run history as markdown documents with YAML
// frontmatter, guarded by advisory file locks.
package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Document is a markdown file with a YAML frontmatter block.
type Document struct {
	Meta Meta
	Body string
}

// ReadDocument parses path. A file without frontmatter is an error.
func ReadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	defer f.Close()

	var meta Meta
	body, err := frontmatter.MustParse(f, &meta)
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter in %s: %w", path, err)
	}
	return &Document{Meta: meta, Body: string(body)}, nil
}

// WriteDocument writes doc to path through a temp file in the same
// directory, so readers never see a partial entry.
func WriteDocument(path string, doc *Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any(doc.Meta)); err != nil {
		return fmt.Errorf("marshaling frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshaling frontmatter: %w", err)
	}
	buf.WriteString("---\n\n")
	buf.WriteString(doc.Body)

	tmp, err := os.CreateTemp(dir, ".entry-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
