package medinfo

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// DescriptionSelector locates the product description on a 1mg search page.
const DescriptionSelector = "div.style__product-description___1vPQe"

// condenseThreshold is the description length above which a summarizer is used.
const condenseThreshold = 600

// fallbackLimit bounds a long description that could not be summarised, so
// the flashed text fits in the session cookie.
const fallbackLimit = 300

// Summarizer condenses long descriptions.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Client looks up medicine descriptions on the retail site.
type Client struct {
	http       *resty.Client
	summarizer Summarizer
	logger     *log.Logger
}

// New creates a lookup client for baseURL. summarizer may be nil.
func New(baseURL string, timeout time.Duration, summarizer Summarizer, logger *log.Logger) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; medReminder/1.0)")
	return &Client{
		http:       client,
		summarizer: summarizer,
		logger:     logger,
	}
}

// Lookup performs one search request for name and extracts the description.
// Every call hits the network; nothing is cached or retried.
func (c *Client) Lookup(ctx context.Context, name string) Result {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("name", searchSlug(name)).
		Get("/search/all")
	if err != nil {
		return Result{Kind: KindNetwork, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		return Result{
			Kind:       KindStatus,
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("unexpected status %s", res.Status()),
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return Result{Kind: KindNetwork, Err: fmt.Errorf("parse html: %w", err)}
	}
	sel := doc.Find(DescriptionSelector).First()
	if sel.Length() == 0 {
		return Result{Kind: KindNotFound}
	}

	return Result{Kind: KindFound, StatusCode: res.StatusCode(), Text: c.condense(ctx, strings.TrimSpace(sel.Text()))}
}

func (c *Client) condense(ctx context.Context, text string) string {
	if utf8.RuneCountInString(text) <= condenseThreshold {
		return text
	}
	if c.summarizer == nil {
		return truncate(text, fallbackLimit)
	}
	summary, err := c.summarizer.Summarize(ctx, text)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("medinfo: summarise description: %v", err)
		}
		return truncate(text, fallbackLimit)
	}
	return truncate(summary, condenseThreshold)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func searchSlug(name string) string {
	return strings.ReplaceAll(name, " ", "-")
}
