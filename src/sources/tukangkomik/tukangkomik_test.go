package tukangkomik

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/diogovalentte/tukangkomik/src/errordefs"
	"github.com/diogovalentte/tukangkomik/src/filters"
	"github.com/diogovalentte/tukangkomik/src/manga"
	"github.com/diogovalentte/tukangkomik/src/notifications"
	"github.com/diogovalentte/tukangkomik/src/preferences"
	"github.com/diogovalentte/tukangkomik/src/sources/mangathemesia"
)

const scopedBaseURLKey = "source_5808419379780108473/overrideBaseUrl"

type recordingToaster struct {
	messages []string
}

func (r *recordingToaster) Toast(_ context.Context, message string, _ notifications.Duration) error {
	r.messages = append(r.messages, message)
	return nil
}

type failingStore struct {
	preferences.Store
}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("store is down")
}

func newDocument(t *testing.T, rawURL, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("error parsing test document: %v", err)
	}
	doc.Url, err = url.Parse(rawURL)
	if err != nil {
		t.Fatalf("error parsing test document URL: %v", err)
	}

	return doc
}

func TestID(t *testing.T) {
	s := New(nil, nil)
	if s.ID() != 5808419379780108473 {
		t.Fatalf("expected ID 5808419379780108473, got %d", s.ID())
	}
}

func TestBaseURL(t *testing.T) {
	ctx := context.Background()
	store := preferences.NewMemoryStore()
	s := New(store, nil)

	t.Run("Should return the default base URL when the preference is not set", func(t *testing.T) {
		if s.BaseURL() != DefaultBaseURL {
			t.Fatalf("expected %s, got %s", DefaultBaseURL, s.BaseURL())
		}
	})
	t.Run("Should return the stored base URL", func(t *testing.T) {
		if err := store.Set(ctx, scopedBaseURLKey, "https://tukangkomik.com"); err != nil {
			t.Fatalf("error setting preference: %v", err)
		}
		if s.BaseURL() != "https://tukangkomik.com" {
			t.Fatalf("expected https://tukangkomik.com, got %s", s.BaseURL())
		}
		if s.Headers().Get("Referer") != "https://tukangkomik.com/" {
			t.Fatalf("expected the headers to use the stored base URL, got %s", s.Headers().Get("Referer"))
		}
	})
	t.Run("Should return the default base URL when the preference is empty", func(t *testing.T) {
		if err := store.Set(ctx, scopedBaseURLKey, ""); err != nil {
			t.Fatalf("error setting preference: %v", err)
		}
		if s.BaseURL() != DefaultBaseURL {
			t.Fatalf("expected %s, got %s", DefaultBaseURL, s.BaseURL())
		}
	})
	t.Run("Should return the default base URL when the store fails", func(t *testing.T) {
		failing := New(failingStore{store}, nil)
		if failing.BaseURL() != DefaultBaseURL {
			t.Fatalf("expected %s, got %s", DefaultBaseURL, failing.BaseURL())
		}
	})
	t.Run("Should return a non-empty stored base URL unchanged", func(t *testing.T) {
		for _, stored := range []string{"https://mirror.id/", "  https://mirror.id  ", "   "} {
			if err := store.Set(ctx, scopedBaseURLKey, stored); err != nil {
				t.Fatalf("error setting preference: %v", err)
			}
			if s.BaseURL() != stored {
				t.Fatalf("expected %q, got %q", stored, s.BaseURL())
			}
		}
	})
	t.Run("Should not repeat the slash of a stored base URL in the requests", func(t *testing.T) {
		if err := store.Set(ctx, scopedBaseURLKey, "https://mirror.id/"); err != nil {
			t.Fatalf("error setting preference: %v", err)
		}
		req, err := s.SearchMangaRequest(1, "foo", s.FilterList())
		if err != nil {
			t.Fatalf("error creating request: %v", err)
		}
		if req.URL.String() != "https://mirror.id/?s=foo&page=1" {
			t.Fatalf("expected https://mirror.id/?s=foo&page=1, got %s", req.URL)
		}
	})
}

func TestNewKeepsCallerOptions(t *testing.T) {
	opts := make([]mangathemesia.Option, 1, 2)
	opts[0] = mangathemesia.WithUserAgent("test-agent")

	s := New(nil, nil, opts...)
	if spare := opts[:2][1]; spare != nil {
		t.Fatalf("expected the options of the caller to not be changed")
	}
	if s.Headers().Get("User-Agent") != "test-agent" {
		t.Fatalf("expected the user agent option to be applied, got %q", s.Headers().Get("User-Agent"))
	}
}

func TestSearchMangaRequest(t *testing.T) {
	s := New(nil, nil)

	t.Run("Should use the manga directory search without a query", func(t *testing.T) {
		orderBy := s.OrderByFilter()
		_ = orderBy.SetValue("popular")
		filterList := filters.FilterList{orderBy}

		actual, err := s.SearchMangaRequest(1, "", filterList)
		if err != nil {
			t.Fatalf("error creating request: %v", err)
		}
		expected, err := s.Source.SearchMangaRequest(1, "", filterList)
		if err != nil {
			t.Fatalf("error creating base request: %v", err)
		}

		if actual.URL.String() != expected.URL.String() || actual.Method != expected.Method {
			t.Fatalf("expected %s %s, got %s %s", expected.Method, expected.URL, actual.Method, actual.URL)
		}
		if !reflect.DeepEqual(actual.Header, expected.Header) {
			t.Fatalf("expected headers %v, got %v", expected.Header, actual.Header)
		}
		if actual.URL.String() != DefaultBaseURL+"/manga/?title=&page=1&order=popular" {
			t.Fatalf("unexpected directory search URL %s", actual.URL)
		}
	})
	t.Run("Should use the site search with a query", func(t *testing.T) {
		actual, err := s.SearchMangaRequest(2, "foo", s.FilterList())
		if err != nil {
			t.Fatalf("error creating request: %v", err)
		}
		if actual.URL.String() != DefaultBaseURL+"/?s=foo&page=2" {
			t.Fatalf("expected %s/?s=foo&page=2, got %s", DefaultBaseURL, actual.URL)
		}
		if actual.Header.Get("Referer") != DefaultBaseURL+"/" {
			t.Fatalf("expected the source headers, got %v", actual.Header)
		}
	})
	t.Run("Should escape the query", func(t *testing.T) {
		actual, err := s.SearchMangaRequest(1, "one piece&x", nil)
		if err != nil {
			t.Fatalf("error creating request: %v", err)
		}
		if actual.URL.Query().Get("s") != "one piece&x" {
			t.Fatalf("expected query 'one piece&x', got %q", actual.URL.Query().Get("s"))
		}
	})
}

const detailsPageHTML = `<html><body>
<div class="bigcontent">
  <div class="thumbook"><div class="thumb"><img src="https://tukangkomik.id/cover.jpg" alt="Solo Leveling"></div></div>
  <div class="infox">
    <h1 class="entry-title">Solo Leveling Bahasa Indonesia</h1>
    <div class="tsinfo"><div class="imptdt">Status <i>Completed</i></div></div>
  </div>
</div>
</body></html>`

func TestMangaDetailsParse(t *testing.T) {
	s := New(nil, nil)

	t.Run("Should use the thumbnail alt as title", func(t *testing.T) {
		actual, err := s.MangaDetailsParse(newDocument(t, DefaultBaseURL+"/manga/solo-leveling/", detailsPageHTML))
		if err != nil {
			t.Fatalf("error parsing manga details: %v", err)
		}
		if actual.Title != "Solo Leveling" {
			t.Fatalf("expected title 'Solo Leveling', got %q", actual.Title)
		}
		if actual.Status != manga.StatusCompleted || actual.ThumbnailURL != "https://tukangkomik.id/cover.jpg" {
			t.Fatalf("expected the base source details, got %s", actual)
		}
	})
	t.Run("Should fail without a thumbnail", func(t *testing.T) {
		html := strings.Replace(detailsPageHTML, `<div class="thumb"><img src="https://tukangkomik.id/cover.jpg" alt="Solo Leveling"></div>`, "", 1)
		actual, err := s.MangaDetailsParse(newDocument(t, DefaultBaseURL+"/manga/solo-leveling/", html))
		if !errors.Is(err, errordefs.ErrThumbnailNotFound) {
			t.Fatalf("expected ErrThumbnailNotFound, got %v", err)
		}
		if actual != nil {
			t.Fatalf("expected no manga, got %s", actual)
		}
	})
}

func TestPageListParse(t *testing.T) {
	s := New(nil, nil)
	chapterURL := DefaultBaseURL + "/solo-leveling-chapter-1/"

	type test struct {
		name     string
		html     string
		expected []*manga.Page
	}
	tests := []test{
		{
			"reader script",
			`<div id="readerarea"><img src="https://cdn.test/ignored.jpg"></div>
			<script>var x = 1;</script>
			<script>ts_reader.run({"prevUrl":"","nextUrl":"","sources":[{"source":"Server 1","images":["https:\/\/cdn.test\/1.jpg","https:\/\/cdn.test\/2.jpg","https:\/\/cdn.test\/3.jpg"]},{"source":"Server 2","images":["https:\/\/mirror.test\/1.jpg"]}]});</script>`,
			[]*manga.Page{
				{Index: 0, URL: chapterURL, ImageURL: "https://cdn.test/1.jpg"},
				{Index: 1, URL: chapterURL, ImageURL: "https://cdn.test/2.jpg"},
				{Index: 2, URL: chapterURL, ImageURL: "https://cdn.test/3.jpg"},
			},
		},
		{
			"reader script without sources",
			`<script>ts_reader.run({"sources":[]});</script>`,
			[]*manga.Page{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := s.PageListParse(newDocument(t, chapterURL, test.html))
			if err != nil {
				t.Fatalf("error parsing page list: %v", err)
			}
			if !reflect.DeepEqual(actual, test.expected) {
				t.Fatalf("expected %v, got %v", test.expected, actual)
			}
		})
	}

	fallbackTests := map[string]string{
		"no reader script":    `<div id="readerarea"><img data-src="https://cdn.test/1.jpg"><img src="https://cdn.test/2.jpg"></div>`,
		"invalid reader data": `<div id="readerarea"><img src="https://cdn.test/1.jpg"></div><script>ts_reader.run(not json);</script>`,
		"empty document":      ``,
	}
	for name, html := range fallbackTests {
		t.Run("Should parse like the base source with "+name, func(t *testing.T) {
			actual, err := s.PageListParse(newDocument(t, chapterURL, html))
			if err != nil {
				t.Fatalf("error parsing page list: %v", err)
			}
			expected, err := s.Source.PageListParse(newDocument(t, chapterURL, html))
			if err != nil {
				t.Fatalf("error parsing page list with the base source: %v", err)
			}
			if !reflect.DeepEqual(actual, expected) {
				t.Fatalf("expected %v, got %v", expected, actual)
			}
		})
	}
}

func TestFilterList(t *testing.T) {
	s := New(nil, nil)
	filterList := s.FilterList()

	header, ok := filterList[0].(*filters.Header)
	if !ok || header.Name != "Note: Can't be used with text search!" {
		t.Fatalf("expected text search warning first, got %v", filterList[0])
	}
	if _, ok := filterList[1].(*filters.Separator); !ok {
		t.Fatalf("expected separator second, got %v", filterList[1])
	}

	keys := []string{}
	for _, filter := range filterList {
		if selectFilter, ok := filter.(*filters.Select); ok {
			keys = append(keys, selectFilter.Key)
		}
	}
	if !reflect.DeepEqual(keys, []string{"status", "type", "order"}) {
		t.Fatalf("expected status, type and order filters, got %v", keys)
	}
	if last := filterList[len(filterList)-1].(*filters.Header); last.Name != s.Intl().Get("genre_missing_warning") {
		t.Fatalf("expected genre missing warning last, got %q", last.Name)
	}
}

func TestSetupPreferenceScreen(t *testing.T) {
	ctx := context.Background()
	store := preferences.NewMemoryStore()
	toaster := &recordingToaster{}
	s := New(store, toaster)

	screen := preferences.NewScreen(s.PreferenceStore())
	s.SetupPreferenceScreen(screen)

	values, err := screen.Values(ctx)
	if err != nil {
		t.Fatalf("error getting preference values: %v", err)
	}
	expected := []preferences.PreferenceValue{{
		Key:           "overrideBaseUrl",
		Title:         "Ubah Domain",
		Summary:       "Update domain untuk ekstensi ini",
		DialogTitle:   "Ubah Domain",
		DialogMessage: "Default: https://tukangkomik.id",
		DefaultValue:  "https://tukangkomik.id",
		Value:         "https://tukangkomik.id",
	}}
	if !reflect.DeepEqual(values, expected) {
		t.Fatalf("expected %v, got %v", expected, values)
	}

	if err := screen.Change(ctx, BaseURLPrefKey, "https://tukangkomik.net"); err != nil {
		t.Fatalf("error changing preference: %v", err)
	}
	if !reflect.DeepEqual(toaster.messages, []string{s.Intl().Get("restart_app")}) {
		t.Fatalf("expected one restart toast, got %v", toaster.messages)
	}
	if s.BaseURL() != "https://tukangkomik.net" {
		t.Fatalf("expected the new base URL, got %s", s.BaseURL())
	}

	raw, _, _ := store.Get(ctx, scopedBaseURLKey)
	if raw != "https://tukangkomik.net" {
		t.Fatalf("expected the preference in the source scope, got %q", raw)
	}
}
