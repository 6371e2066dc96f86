package fetch

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"tripadvisor-scraper/utils"
)

// BrowserFetcher renders pages in headless Chrome before parsing them.
// Use it for pages that only fill in their markup client-side.
type BrowserFetcher struct {
	timeout       time.Duration
	logger        *utils.Logger
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
}

// BrowserOptions configures a BrowserFetcher.
type BrowserOptions struct {
	UserAgent string
	Timeout   time.Duration
	// ChromeBin overrides browser discovery when set.
	ChromeBin string
}

// NewBrowserFetcher starts a headless browser shared by every Fetch call.
func NewBrowserFetcher(opts BrowserOptions, logger *utils.Logger) (*BrowserFetcher, error) {
	chromeBin := findChromeBinary(opts.ChromeBin)
	logger.Info("[browser] Using browser binary: %s", chromeBin)

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.UserAgent(opts.UserAgent),
	)
	if chromeBin != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("browser: start: %w", err)
	}

	return &BrowserFetcher{
		timeout:       opts.Timeout,
		logger:        logger,
		browserCtx:    browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
	}, nil
}

// Fetch opens url in a new tab and parses the rendered document.
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	tabCtx, cancelTab := chromedp.NewContext(f.browserCtx)
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, f.timeout)
	defer cancelTimeout()

	stop := context.AfterFunc(ctx, cancelTimeout)
	defer stop()

	var status int64
	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		if r, ok := ev.(*network.EventResponseReceived); ok && r.Type == network.ResourceTypeDocument {
			atomic.CompareAndSwapInt64(&status, 0, r.Response.Status)
		}
	})

	var outerHTML string
	err := chromedp.Run(tabCtx,
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.OuterHTML("html", &outerHTML, chromedp.ByQuery),
	)
	if err != nil {
		f.logger.Warn("[browser] Error accessing %s: %v", url, err)
		return nil, &Error{URL: url, Err: err}
	}

	code := int(atomic.LoadInt64(&status))
	if code != http.StatusOK {
		f.logger.Warn("[browser] status %d for %s", code, url)
		return nil, &Error{URL: url, StatusCode: code}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(outerHTML))
	if err != nil {
		return nil, &Error{URL: url, StatusCode: code, Err: err}
	}
	return doc, nil
}

// Close shuts the browser down.
func (f *BrowserFetcher) Close() error {
	f.cancelBrowser()
	f.cancelAlloc()
	return nil
}

func findChromeBinary(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
