package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Scraped lenta.ru link text glues the headline, a HH:MM timestamp and a
// "D Month YYYY" date together without separators.
var headlineExpr = regexp.MustCompile(`^(.*?)(\d{2}:\d{2}),\s*(\d{1,2}\s+\S+\s+\d{4})`)

// FormatHeadline splits a raw scraped headline into "main, HH:MM, D Month
// YYYY" display form. Input that does not match the pattern is returned
// unchanged. Text trailing the date is dropped on purpose.
func FormatHeadline(raw string) string {
	m := headlineExpr.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	return fmt.Sprintf("%s, %s, %s", strings.TrimSpace(m[1]), m[2], m[3])
}
