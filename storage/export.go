package storage

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/electr1fy0/noteboard/notes"
)

type frontMatter struct {
	ID      string    `yaml:"id"`
	Title   string    `yaml:"title"`
	Created time.Time `yaml:"created"`
	Updated time.Time `yaml:"updated"`
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ExportName is the markdown file name used for n.
func ExportName(n notes.Note) string {
	slug := strings.Trim(unsafeName.ReplaceAllString(strings.ToLower(n.Title), "-"), "-.")
	if slug == "" {
		slug = "note"
	}
	id := n.ID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return fmt.Sprintf("%s-%s.md", slug, id)
}

// RenderMarkdown renders n as markdown with a YAML front matter block.
func RenderMarkdown(n notes.Note) ([]byte, error) {
	meta, err := yaml.Marshal(frontMatter{
		ID:      n.ID,
		Title:   n.Title,
		Created: n.CreatedAt,
		Updated: n.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(n.Content)
	b.WriteString("\n")
	return b.Bytes(), nil
}

// Export writes one markdown file per note into dir and returns how many
// were written.
func Export(fsys afero.Fs, dir string, list []notes.Note) (int, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}
	count := 0
	for _, n := range list {
		data, err := RenderMarkdown(n)
		if err != nil {
			return count, fmt.Errorf("render %s: %w", n.ID, err)
		}
		if err := afero.WriteFile(fsys, filepath.Join(dir, ExportName(n)), data, 0o644); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
