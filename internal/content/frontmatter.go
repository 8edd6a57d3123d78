package content

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// frontMatter is the raw shape of the metadata block. Date stays a string here
// so we can report the offending value when it does not parse.
type frontMatter struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Draft       bool   `yaml:"draft"`
}

// dateLayouts are the ISO-8601 forms accepted in front matter.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// parseFrontMatter extracts the leading delimiter-fenced yaml block from a
// content file and returns the record it describes. Body text is ignored. A file with
// no front matter block yields a zero record (which the slug filter drops).
func parseFrontMatter(fileName string, raw []byte) (Record, error) {
	rec := Record{FileName: fileName}

	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if !strings.HasPrefix(text, frontMatterDelimiter+"\n") {
		return rec, nil
	}

	rest := text[len(frontMatterDelimiter)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelimiter)
	if end < 0 {
		return rec, &ParseError{File: fileName, Message: "unterminated front matter block"}
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return rec, &ParseError{File: fileName, Message: "invalid yaml front matter", Cause: err}
	}

	rec.Slug = strings.TrimSpace(fm.Slug)
	rec.Title = fm.Title
	rec.Description = fm.Description
	rec.Draft = fm.Draft

	if fm.Date != "" {
		date, err := parseDate(fm.Date)
		if err != nil {
			return rec, &ParseError{File: fileName, Message: "unparseable date " + fm.Date, Cause: err}
		}
		rec.Date = date
	}

	return rec, nil
}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
