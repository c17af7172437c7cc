package parser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"NewsMoodBot/internal/domain"
	"NewsMoodBot/internal/ports"
)

const minHeadlineRunes = 10

// Navigation chrome, legal boilerplate and rubric names that show up as
// links on every index page. Compared case-insensitively.
var headlineBlacklist = map[string]struct{}{
	"узнать больше":             {},
	"подробнее":                 {},
	"пресс-релизы":              {},
	"техподдержка":              {},
	"спецпроекты":               {},
	"условия использования":     {},
	"политика конфиденциальности":                      {},
	"правила применения рекомендательных технологий":   {},
	"условиями акции lenta.ru":                         {},
	"политикой конфиденциальности rambler id":          {},
	"бывший ссср":      {},
	"силовые структуры": {},
	"наука и техника":   {},
	"интернет и сми":    {},
	"путешествия":       {},
	"среда обитания":    {},
	"забота о себе":     {},
}

// Path fragments that mark non-article links (mail, embeds, help pages,
// rubric indexes).
var urlFragmentBlacklist = []string{
	"mailto:",
	"/parts/",
	"/specprojects/",
	"/info/",
	"help.rambler.ru",
	"/rubrics/",
}

// DayCrawler discovers headline/URL pairs on one day's news index page.
type DayCrawler struct {
	fetcher ports.PageFetcher
	baseURL string
	logger  *slog.Logger
}

var _ ports.NewsSource = (*DayCrawler)(nil)

// NewDayCrawler wires a page fetcher with the site base URL.
func NewDayCrawler(fetcher ports.PageFetcher, baseURL string, logger *slog.Logger) *DayCrawler {
	return &DayCrawler{
		fetcher: fetcher,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// Crawl fetches the index page for a day and returns its headlines, noise
// filtered out and deduplicated by URL. When the same URL appears more than
// once the last occurrence in document order wins, keeping the position of
// the first. A fetch failure is recoverable: callers treat it as an empty
// day.
func (c *DayCrawler) Crawl(ctx context.Context, day time.Time) ([]domain.NewsItem, error) {
	pageURL := c.indexURL(day)

	html, err := c.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch index %s: %w", pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse index %s: %w", pageURL, err)
	}

	var order []string
	byURL := make(map[string]domain.NewsItem)

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		headline := FormatHeadline(strings.TrimSpace(a.Text()))
		if !keepHeadline(headline) {
			return
		}

		href, _ := a.Attr("href")
		fullURL := c.resolveURL(href)
		if fullURL == "" || blacklistedURL(fullURL) {
			return
		}

		if _, seen := byURL[fullURL]; !seen {
			order = append(order, fullURL)
		}
		byURL[fullURL] = domain.NewsItem{Headline: headline, URL: fullURL}
	})

	items := make([]domain.NewsItem, 0, len(order))
	for _, u := range order {
		items = append(items, byURL[u])
	}

	c.debug("day crawled", "day", day.Format("2006-01-02"), "items", len(items))
	return items, nil
}

func (c *DayCrawler) indexURL(day time.Time) string {
	return fmt.Sprintf("%s/news/%04d/%02d/%02d/", c.baseURL, day.Year(), int(day.Month()), day.Day())
}

func (c *DayCrawler) resolveURL(href string) string {
	href = strings.TrimSpace(href)
	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "/"):
		return c.baseURL + href
	case strings.HasPrefix(href, "http"):
		return href
	default:
		return c.baseURL + "/" + href
	}
}

func keepHeadline(headline string) bool {
	if headline == "" || utf8.RuneCountInString(headline) <= minHeadlineRunes {
		return false
	}
	_, blacklisted := headlineBlacklist[strings.ToLower(headline)]
	return !blacklisted
}

func blacklistedURL(fullURL string) bool {
	for _, fragment := range urlFragmentBlacklist {
		if strings.Contains(fullURL, fragment) {
			return true
		}
	}
	return false
}

func (c *DayCrawler) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
