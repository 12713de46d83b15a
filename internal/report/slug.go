package report

import (
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]`)

// SlugFilename derives the download file name from a report title:
// case-folded, every character outside [a-z0-9] replaced with a
// hyphen, ".pdf" suffix.
func SlugFilename(title string) string {
	return nonSlug.ReplaceAllString(strings.ToLower(title), "-") + ".pdf"
}
