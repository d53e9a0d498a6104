package source

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	readability "github.com/go-shiori/go-readability"
)

// maxRenderedChars caps readable text taken from a rendered page.
const maxRenderedChars = 40000

// Renderer loads a page in headless Chrome and reduces it to readable
// text. It backs the ranking accessor when the wikitext parse finds no
// table rows, for example when the table lives in a template expanded only
// at render time.
type Renderer struct {
	userAgent string
	timeout   time.Duration
	maxChars  int
}

func NewRenderer(userAgent string, timeout time.Duration) *Renderer {
	return &Renderer{userAgent: userAgent, timeout: timeout, maxChars: maxRenderedChars}
}

func (r *Renderer) PageText(ctx context.Context, pageURL string) (string, error) {
	if strings.TrimSpace(pageURL) == "" {
		return "", errors.New("invalid url")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	html, err := r.fetchHTML(ctx, pageURL)
	if err != nil {
		return "", err
	}
	article, err := readability.FromReader(strings.NewReader(html), mustParseURL(pageURL))
	if err != nil {
		return "", err
	}
	text := article.TextContent
	if len(text) > r.maxChars {
		text = text[:r.maxChars]
	}
	return strings.TrimSpace(text), nil
}

func (r *Renderer) fetchHTML(ctx context.Context, pageURL string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.UserAgent(r.userAgent),
	)
	actx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	bctx, cancelBrowser := chromedp.NewContext(actx)
	defer cancelBrowser()

	var html string
	err := chromedp.Run(bctx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	return html, err
}

func mustParseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		return &url.URL{}
	}
	return u
}
