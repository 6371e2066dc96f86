package fetch

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"

	"tripadvisor-scraper/utils"
)

// HTTPFetcher fetches pages with a plain GET request.
type HTTPFetcher struct {
	client *resty.Client
	logger *utils.Logger
}

// HTTPOptions configures an HTTPFetcher.
type HTTPOptions struct {
	UserAgent string
	Timeout   time.Duration
}

// NewHTTPFetcher creates an HTTPFetcher; failed requests are never retried.
func NewHTTPFetcher(opts HTTPOptions, logger *utils.Logger) *HTTPFetcher {
	client := resty.New()
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(0)

	return &HTTPFetcher{client: client, logger: logger}
}

// Fetch issues a GET for url and parses the body when the status is 200.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		f.logger.Warn("[fetch] Error accessing %s: %v", url, err)
		return nil, &Error{URL: url, Err: err}
	}

	if res.StatusCode() != http.StatusOK {
		f.logger.Warn("[fetch] status %d for %s", res.StatusCode(), url)
		return nil, &Error{URL: url, StatusCode: res.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(utf8Body(res.Body(), res.Header().Get("Content-Type")))
	if err != nil {
		f.logger.Warn("[fetch] Could not parse %s: %v", url, err)
		return nil, &Error{URL: url, StatusCode: res.StatusCode(), Err: err}
	}

	f.logger.Debug("[fetch] %s: %d bytes", url, len(res.Body()))
	return doc, nil
}

// utf8Body decodes body to UTF-8 using the Content-Type header, a BOM or a
// <meta> charset declaration. Undetectable encodings are passed through.
func utf8Body(body []byte, contentType string) io.Reader {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return bytes.NewReader(body)
	}
	return r
}
