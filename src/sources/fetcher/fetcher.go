// Package fetcher implements the ways a source document is downloaded and parsed into a goquery.Document.
package fetcher

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/diogovalentte/tukangkomik/src/config"
)

// Fetcher downloads the document of a request
type Fetcher interface {
	// Document fetches req and returns the parsed document.
	// The document Url is the request URL.
	Document(ctx context.Context, req *http.Request) (*goquery.Document, error)
}

// New returns the fetcher set in configs
func New(configs *config.SourceConfigs) (Fetcher, error) {
	userAgent := configs.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	switch configs.Fetcher {
	case "colly", "":
		return &CollyFetcher{
			UserAgent:        userAgent,
			CloudflareBypass: configs.CloudflareBypass,
		}, nil
	case "browser":
		return NewBrowserFetcher(configs.BrowserControlURL, userAgent), nil
	default:
		return nil, fmt.Errorf("invalid fetcher '%s'", configs.Fetcher)
	}
}
