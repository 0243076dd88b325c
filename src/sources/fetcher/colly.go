package fetcher

import (
	"bytes"
	"context"
	"net/http"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/diogovalentte/tukangkomik/src/errordefs"
	"github.com/diogovalentte/tukangkomik/src/util"
)

// CollyFetcher fetches documents with a new colly collector for each request
type CollyFetcher struct {
	UserAgent string
	// CloudflareBypass wraps the transport to look like a browser to Cloudflare
	CloudflareBypass bool
	// Transport is used instead of http.DefaultTransport if not nil
	Transport http.RoundTripper
}

func (f *CollyFetcher) newCollector(ctx context.Context) *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(f.UserAgent),
		colly.AllowURLRevisit(),
	)

	transport := f.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if f.CloudflareBypass {
		transport = cloudflarebp.AddCloudFlareByPass(transport)
	}
	c.WithTransport(&contextTransport{ctx: ctx, transport: transport})

	return c
}

// Document implements Fetcher
func (f *CollyFetcher) Document(ctx context.Context, req *http.Request) (*goquery.Document, error) {
	errorContext := "error while fetching document"

	c := f.newCollector(ctx)

	var doc *goquery.Document
	var sharedErr error
	c.OnResponse(func(r *colly.Response) {
		if len(bytes.TrimSpace(r.Body)) == 0 {
			sharedErr = errordefs.ErrEmptyDocument
			return
		}

		doc, sharedErr = goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if sharedErr != nil {
			return
		}
		doc.Url = req.URL
	})

	err := c.Request(req.Method, req.URL.String(), nil, nil, req.Header.Clone())
	if err != nil {
		if util.ErrorContains(err, "Not Found") {
			return nil, util.AddErrorContext(errorContext, errordefs.ErrPageNotFound)
		}
		return nil, util.AddErrorContext(errorContext, util.AddErrorContext("error while visiting "+req.URL.String(), err))
	}
	if sharedErr != nil {
		return nil, util.AddErrorContext(errorContext, sharedErr)
	}
	if doc == nil {
		return nil, util.AddErrorContext(errorContext, errordefs.ErrEmptyDocument)
	}

	return doc, nil
}

// contextTransport cancels the collector requests when ctx is done
type contextTransport struct {
	ctx       context.Context
	transport http.RoundTripper
}

func (t *contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.transport.RoundTrip(req.WithContext(t.ctx))
}
