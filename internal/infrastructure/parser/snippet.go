package parser

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"NewsMoodBot/internal/ports"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]\s`)

// SnippetExtractor derives a one-sentence classifier snippet from an
// article page.
type SnippetExtractor struct {
	fetcher ports.PageFetcher
	logger  *slog.Logger
}

var _ ports.SnippetSource = (*SnippetExtractor)(nil)

// NewSnippetExtractor wires a page fetcher.
func NewSnippetExtractor(fetcher ports.PageFetcher, logger *slog.Logger) *SnippetExtractor {
	return &SnippetExtractor{fetcher: fetcher, logger: logger}
}

// FirstSentence fetches the article and returns the first sentence of its
// body text. It tries the article-body container first, then any paragraph
// on the page, then readability extraction. Every failure degrades to an
// empty string; a missing snippet never aborts a batch.
func (s *SnippetExtractor) FirstSentence(ctx context.Context, articleURL string) string {
	html, err := s.fetcher.Fetch(ctx, articleURL)
	if err != nil {
		s.warn("fetch article", "url", articleURL, "error", err)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		s.warn("parse article", "url", articleURL, "error", err)
		return ""
	}

	text := strings.TrimSpace(doc.Find("div.topic-body__content p").First().Text())
	if text == "" {
		text = strings.TrimSpace(doc.Find("p").First().Text())
	}
	if text == "" {
		text = s.readabilityText(html, articleURL)
	}

	return firstSentence(text)
}

// readabilityText is the last-resort extraction for pages whose markup has
// no usable paragraphs at all.
func (s *SnippetExtractor) readabilityText(html, articleURL string) string {
	parsed, err := url.Parse(articleURL)
	if err != nil {
		return ""
	}

	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err != nil {
		s.warn("readability fallback", "url", articleURL, "error", err)
		return ""
	}

	return strings.TrimSpace(article.TextContent)
}

// firstSentence cuts text at the first sentence-terminal punctuation that
// is followed by whitespace. Text without such a boundary is returned whole.
func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if loc := sentenceBoundary.FindStringIndex(text); loc != nil {
		return text[:loc[0]+1]
	}
	return text
}

func (s *SnippetExtractor) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
