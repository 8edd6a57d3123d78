package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source lists content records from a single directory.
type Source struct {
	dir string
}

// NewSource creates a Source over the given content directory.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// SkippedFile records a content file that was excluded because its front
// matter could not be parsed.
type SkippedFile struct {
	File string
	Err  error
}

// List scans the content directory for .md/.mdx files, parses their front
// matter, and returns the records eligible for preview generation: drafts and
// records without a slug are excluded. Files with malformed front matter are
// returned as skipped, not as an error. A missing content directory yields an
// empty result.
//
// Records come back in directory-listing order (os.ReadDir sorts by name), so
// the sequence is deterministic across runs.
func (s *Source) List() ([]Record, []SkippedFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read content directory %s: %w", s.dir, err)
	}

	var records []Record
	var skipped []SkippedFile

	for _, entry := range entries {
		if entry.IsDir() || !hasContentExtension(entry.Name()) {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			skipped = append(skipped, SkippedFile{File: entry.Name(), Err: err})
			continue
		}

		rec, err := parseFrontMatter(entry.Name(), raw)
		if err != nil {
			skipped = append(skipped, SkippedFile{File: entry.Name(), Err: err})
			continue
		}

		if rec.Draft || rec.Slug == "" {
			continue
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

func hasContentExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".mdx"
}
