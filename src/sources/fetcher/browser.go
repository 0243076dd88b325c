package fetcher

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/diogovalentte/tukangkomik/src/errordefs"
	"github.com/diogovalentte/tukangkomik/src/util"
)

// BrowserFetcher fetches documents with a headless Chrome, for sites that need JavaScript
// to show the page. The browser is started on the first request.
type BrowserFetcher struct {
	// controlURL is the DevTools URL of a running browser, a new one is launched if empty
	controlURL string
	userAgent  string

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// NewBrowserFetcher returns a BrowserFetcher connecting to controlURL
func NewBrowserFetcher(controlURL, userAgent string) *BrowserFetcher {
	return &BrowserFetcher{
		controlURL: controlURL,
		userAgent:  userAgent,
	}
}

func (f *BrowserFetcher) getBrowser() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.browser != nil {
		return f.browser, nil
	}

	controlURL := f.controlURL
	if controlURL == "" {
		f.launcher = launcher.New().Headless(true)
		var err error
		controlURL, err = f.launcher.Launch()
		if err != nil {
			return nil, util.AddErrorContext("error while launching browser", err)
		}
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, util.AddErrorContext("error while connecting to browser", err)
	}
	f.browser = browser

	return browser, nil
}

// Document implements Fetcher
func (f *BrowserFetcher) Document(ctx context.Context, req *http.Request) (*goquery.Document, error) {
	errorContext := "error while fetching document with browser"

	browser, err := f.getBrowser()
	if err != nil {
		return nil, util.AddErrorContext(errorContext, err)
	}

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, util.AddErrorContext(errorContext, err)
	}
	defer page.Close()

	if err = page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
		return nil, util.AddErrorContext(errorContext, err)
	}

	headers := []string{}
	for key, values := range req.Header {
		if strings.EqualFold(key, "User-Agent") || len(values) == 0 {
			continue
		}
		headers = append(headers, key, values[0])
	}
	if len(headers) > 0 {
		if _, err = page.SetExtraHeaders(headers); err != nil {
			return nil, util.AddErrorContext(errorContext, err)
		}
	}

	if err = page.Navigate(req.URL.String()); err != nil {
		return nil, util.AddErrorContext(errorContext, util.AddErrorContext("error while visiting "+req.URL.String(), err))
	}
	if err = page.WaitLoad(); err != nil {
		return nil, util.AddErrorContext(errorContext, err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, util.AddErrorContext(errorContext, err)
	}
	if strings.TrimSpace(html) == "" {
		return nil, util.AddErrorContext(errorContext, errordefs.ErrEmptyDocument)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, util.AddErrorContext(errorContext, err)
	}
	doc.Url = req.URL

	return doc, nil
}

// Close closes the browser and kills it if it was launched by the fetcher
func (f *BrowserFetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}

	return err
}
