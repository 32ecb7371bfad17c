// Package cleaner extracts readable text from HTML fragments that recruiters
// paste into profile and resume fields.
package cleaner

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagPattern        = regexp.MustCompile(`(?i)</?[a-z][a-z0-9]*[^<>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean returns the visible text of an HTML fragment with scripts and styles
// dropped and block elements separated by blank lines. Plain text passes
// through unchanged apart from trimming, so resume formatting survives.
func Clean(input string) string {
	if !tagPattern.MatchString(input) {
		return strings.TrimSpace(input)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return collapseWhitespace(tagPattern.ReplaceAllString(input, " "))
	}

	doc.Find("script, style, noscript, iframe").Remove()

	var blocks []string
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) > 0 {
			blocks = append(blocks, text)
		}
	})
	if len(blocks) > 0 {
		return strings.Join(blocks, "\n\n")
	}

	bodyText := strings.TrimSpace(doc.Find("body").Text())
	if len(bodyText) > 0 {
		return collapseWhitespace(bodyText)
	}

	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
