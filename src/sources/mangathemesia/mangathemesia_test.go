package mangathemesia

import (
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/diogovalentte/tukangkomik/src/filters"
	"github.com/diogovalentte/tukangkomik/src/manga"
)

const testBaseURL = "https://komik.test"

func newTestSource(opts ...Option) *Source {
	return New("Test Site", testBaseURL, "id", "/manga", opts...)
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

func TestGenerateID(t *testing.T) {
	type test struct {
		name     string
		lang     string
		expected int64
	}
	tests := []test{
		{"Tukangkomik", "id", 5808419379780108473},
		{"tukangkomik", "id", 5808419379780108473},
		{"Test Site", "en", 4557334950038824627},
	}

	for _, test := range tests {
		actual := GenerateID(test.name, test.lang, versionID)
		if actual != test.expected {
			t.Fatalf("expected ID %d for %s/%s, got %d", test.expected, test.name, test.lang, actual)
		}
	}
}

func TestBaseURL(t *testing.T) {
	t.Run("Should return the default base URL without a resolver", func(t *testing.T) {
		s := newTestSource()
		if s.BaseURL() != testBaseURL {
			t.Fatalf("expected %s, got %s", testBaseURL, s.BaseURL())
		}
	})
	t.Run("Should call the resolver on every access", func(t *testing.T) {
		current := "https://komik.one/"
		s := newTestSource(WithBaseURLResolver(func() string { return current }))
		if s.BaseURL() != "https://komik.one" {
			t.Fatalf("expected https://komik.one, got %s", s.BaseURL())
		}
		current = "https://komik.two"
		if s.BaseURL() != "https://komik.two" {
			t.Fatalf("expected https://komik.two, got %s", s.BaseURL())
		}
		if s.Headers().Get("Referer") != "https://komik.two/" {
			t.Fatalf("expected Referer https://komik.two/, got %s", s.Headers().Get("Referer"))
		}
	})
}

func TestRequests(t *testing.T) {
	s := newTestSource(WithProjectPage("/project"), WithUserAgent("test-agent"))

	status := s.StatusFilter()
	_ = status.SetValue("ongoing")
	seriesType := s.TypeFilter()
	_ = seriesType.SetValue("Manhwa")
	genres := &filters.Group{Key: GenreFilterKey, Filters: []*filters.TriState{
		{Name: "Action", Value: "action", State: filters.StateInclude},
		{Name: "Comedy", Value: "comedy"},
		{Name: "Romance", Value: "romance", State: filters.StateExclude},
	}}
	project := s.ProjectFilter()
	_ = project.SetValue(ProjectFilterOn)

	type test struct {
		name     string
		request  func() (*http.Request, error)
		expected string
	}
	tests := []test{
		{"popular", func() (*http.Request, error) { return s.PopularMangaRequest(1) }, testBaseURL + "/manga/?title=&page=1&order=popular"},
		{"latest", func() (*http.Request, error) { return s.LatestUpdatesRequest(2) }, testBaseURL + "/manga/?title=&page=2&order=update"},
		{
			"search with filters",
			func() (*http.Request, error) {
				return s.SearchMangaRequest(3, "one piece", filters.FilterList{&filters.Header{}, status, seriesType, s.OrderByFilter(), genres})
			},
			testBaseURL + "/manga/?title=one+piece&page=3&status=ongoing&type=Manhwa&order=&genre%5B%5D=action&genre%5B%5D=-romance",
		},
		{"project page", func() (*http.Request, error) { return s.SearchMangaRequest(1, "", filters.FilterList{project}) }, testBaseURL + "/project/?title=&page=1"},
		{"text search", func() (*http.Request, error) { return s.TextSearchRequest(2, "foo") }, testBaseURL + "/?s=foo&page=2"},
		{"manga details", func() (*http.Request, error) { return s.MangaDetailsRequest("/manga/solo-leveling/") }, testBaseURL + "/manga/solo-leveling/"},
		{"chapter list", func() (*http.Request, error) { return s.ChapterListRequest("/manga/solo-leveling/") }, testBaseURL + "/manga/solo-leveling/"},
		{"page list", func() (*http.Request, error) { return s.PageListRequest("/solo-leveling-chapter-1/") }, testBaseURL + "/solo-leveling-chapter-1/"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req, err := test.request()
			if err != nil {
				t.Fatalf("error creating request: %v", err)
			}
			if req.Method != http.MethodGet {
				t.Fatalf("expected GET request, got %s", req.Method)
			}
			if req.URL.String() != test.expected {
				t.Fatalf("expected URL %s, got %s", test.expected, req.URL)
			}
			if req.Header.Get("Referer") != testBaseURL+"/" {
				t.Fatalf("expected Referer %s/, got %s", testBaseURL, req.Header.Get("Referer"))
			}
			if req.Header.Get("User-Agent") != "test-agent" {
				t.Fatalf("expected User-Agent test-agent, got %s", req.Header.Get("User-Agent"))
			}
		})
	}

	if _, err := s.MangaDetailsRequest(""); err == nil {
		t.Fatalf("expected error for a manga without URL")
	}
}

const searchPageHTML = `<html><body>
<div class="listupd">
  <div class="bs"><div class="bsx">
    <a href="https://komik.test/manga/solo-leveling/" title="Solo Leveling">
      <div class="limit"><img data-src="https://komik.test/solo.jpg" src="data:image/gif;base64,R0lGOD"></div>
      <div class="bigor"><div class="tt">Solo Leveling</div></div>
    </a>
  </div></div>
  <div class="bs"><div class="bsx">
    <a href="/manga/one-piece/">
      <div class="limit"><img src="/one-piece.jpg"></div>
      <div class="bigor"><div class="tt"> One Piece </div></div>
    </a>
  </div></div>
</div>
<div class="pagination"><a class="next page-numbers" href="https://komik.test/manga/?page=2">Next</a></div>
<ul class="genrez">
  <li><input type="checkbox" value="action" id="genre-1"><label for="genre-1">Action</label></li>
  <li><input type="checkbox" value="romance" id="genre-2"><label for="genre-2">Romance</label></li>
</ul>
</body></html>`

func TestSearchMangaParse(t *testing.T) {
	s := newTestSource()

	if len(s.GenreList()) != 0 {
		t.Fatalf("expected no genres before parsing a search page")
	}

	mangasPage, err := s.SearchMangaParse(newDocument(t, testBaseURL+"/manga/?title=&page=1", searchPageHTML))
	if err != nil {
		t.Fatalf("error parsing search page: %v", err)
	}

	expected := &manga.MangasPage{
		Mangas: []*manga.Manga{
			{URL: "/manga/solo-leveling/", Title: "Solo Leveling", ThumbnailURL: "https://komik.test/solo.jpg"},
			{URL: "/manga/one-piece/", Title: "One Piece", ThumbnailURL: "https://komik.test/one-piece.jpg"},
		},
		HasNextPage: true,
	}
	if !reflect.DeepEqual(mangasPage, expected) {
		t.Fatalf("expected %v, got %v", expected, mangasPage)
	}

	expectedGenres := []Genre{{Name: "Action", Value: "action"}, {Name: "Romance", Value: "romance"}}
	if !reflect.DeepEqual(s.GenreList(), expectedGenres) {
		t.Fatalf("expected genres %v, got %v", expectedGenres, s.GenreList())
	}

	lastPage, err := s.SearchMangaParse(newDocument(t, testBaseURL+"/manga/?page=9", `<div class="listupd"></div>`))
	if err != nil {
		t.Fatalf("error parsing search page: %v", err)
	}
	if lastPage.HasNextPage || len(lastPage.Mangas) != 0 {
		t.Fatalf("expected an empty last page, got %v", lastPage)
	}
	if len(s.GenreList()) != 2 {
		t.Fatalf("expected genres to be kept after parsing a page without genres")
	}
}

func TestGenreCacheExpiration(t *testing.T) {
	s := newTestSource(WithGenreCacheTTL(time.Millisecond))
	s.SetGenreList([]Genre{{Name: "Action", Value: "action"}})

	time.Sleep(10 * time.Millisecond)
	if len(s.GenreList()) != 0 {
		t.Fatalf("expected genres to expire, got %v", s.GenreList())
	}
}

const detailsPageHTML = `<html><body>
<div class="bigcontent">
  <div class="thumbook"><div class="thumb"><img src="https://komik.test/cover.jpg" alt="Solo Leveling"></div></div>
  <div class="infox">
    <h1 class="entry-title">Solo Leveling Bahasa Indonesia</h1>
    <div class="seriestualt">Na Honjaman Level Up</div>
    <div class="tsinfo">
      <div class="imptdt">Status <i>Ongoing</i></div>
      <div class="imptdt">Type <a href="https://komik.test/manga/?type=manhwa">manhwa</a></div>
      <div class="imptdt">Author <i>Chugong</i></div>
      <div class="imptdt">Artist <i>-</i></div>
    </div>
    <div class="mgen"><a href="#">Action</a><a href="#">Fantasy</a><a href="#">action</a></div>
    <div class="entry-content entry-content-single" itemprop="description"><p>Sepuluh tahun lalu, gerbang muncul.</p></div>
  </div>
</div>
</body></html>`

func TestMangaDetailsParse(t *testing.T) {
	s := newTestSource()

	actual, err := s.MangaDetailsParse(newDocument(t, testBaseURL+"/manga/solo-leveling/", detailsPageHTML))
	if err != nil {
		t.Fatalf("error parsing manga details: %v", err)
	}

	expected := &manga.Manga{
		URL:          "/manga/solo-leveling/",
		Title:        "Solo Leveling Bahasa Indonesia",
		Author:       "Chugong",
		Description:  "Sepuluh tahun lalu, gerbang muncul.\n\nNama Alternatif: Na Honjaman Level Up",
		Genre:        "Action, Fantasy, Manhwa",
		Status:       manga.StatusOngoing,
		ThumbnailURL: "https://komik.test/cover.jpg",
		Initialized:  true,
	}
	if !reflect.DeepEqual(actual, expected) {
		t.Fatalf("expected %s, got %s", expected, actual)
	}
}

func TestMangaDetailsAlternativeNames(t *testing.T) {
	s := newTestSource()

	tests := []struct {
		name string
		html string
	}{
		{name: "alternative", html: `<div class="bigcontent"><div class="thumb"><img src="https://komik.test/cover.jpg"></div><span class="alternative">Ore Dake Level Up</span></div>`},
		{name: "wd-full", html: `<div class="bigcontent"><div class="thumb"><img src="https://komik.test/cover.jpg"></div><div class="wd-full"><b>alt</b> <span>Ore Dake Level Up</span></div></div>`},
		{name: "alter", html: `<div class="bigcontent"><div class="thumb"><img src="https://komik.test/cover.jpg"></div><b class="alter">Ore Dake Level Up</b></div>`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := s.MangaDetailsParse(newDocument(t, testBaseURL+"/manga/solo-leveling/", test.html))
			if err != nil {
				t.Fatalf("error parsing manga details: %v", err)
			}
			if actual.Description != "Nama Alternatif: Ore Dake Level Up" {
				t.Fatalf("expected the alternative name in the description, got %q", actual.Description)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := map[string]manga.Status{
		"Ongoing":    manga.StatusOngoing,
		"Publishing": manga.StatusOngoing,
		"Berjalan":   manga.StatusOngoing,
		"Completed":  manga.StatusCompleted,
		"Tamat":      manga.StatusCompleted,
		"On Hiatus":  manga.StatusOnHiatus,
		"Dropped":    manga.StatusCancelled,
		"":           manga.StatusUnknown,
		"Coming":     manga.StatusUnknown,
	}

	for status, expected := range tests {
		if actual := ParseStatus(status); actual != expected {
			t.Fatalf("expected %s for %q, got %s", expected, status, actual)
		}
	}
}

const chapterListHTML = `<html><body>
<div class="eplister" id="chapterlist"><ul>
  <li data-num="2"><div class="chbox"><div class="eph-num">
    <a href="https://komik.test/solo-leveling-chapter-2/"><span class="chapternum">Chapter 2</span><span class="chapterdate">Januari 5, 2024</span></a>
  </div></div></li>
  <li data-num="1.5"><div class="chbox"><div class="eph-num">
    <a href="https://komik.test/solo-leveling-chapter-1-5/"><span class="chapternum">Chapter 1.5</span><span class="chapterdate">December 31, 2023</span></a>
  </div></div></li>
  <li><a href="https://komik.test/solo-leveling-extra/">Extra</a></li>
</ul></div>
</body></html>`

func TestChapterListParse(t *testing.T) {
	s := newTestSource()

	actual, err := s.ChapterListParse(newDocument(t, testBaseURL+"/manga/solo-leveling/", chapterListHTML))
	if err != nil {
		t.Fatalf("error parsing chapter list: %v", err)
	}

	expected := []*manga.Chapter{
		{URL: "/solo-leveling-chapter-2/", Name: "Chapter 2", DateUpload: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), ChapterNumber: 2},
		{URL: "/solo-leveling-chapter-1-5/", Name: "Chapter 1.5", DateUpload: time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), ChapterNumber: 1.5},
		{URL: "/solo-leveling-extra/", Name: "Extra", ChapterNumber: -1},
	}
	if !reflect.DeepEqual(actual, expected) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
}

func TestPageListParse(t *testing.T) {
	s := newTestSource()
	chapterURL := testBaseURL + "/solo-leveling-chapter-1/"

	type test struct {
		name     string
		html     string
		expected []*manga.Page
	}
	tests := []test{
		{
			"reader area images",
			`<div id="readerarea"><img src=""><img data-src="https://cdn.test/1.jpg" src="https://komik.test/lazy.gif"><img src="https://cdn.test/2.jpg"></div>`,
			[]*manga.Page{
				{Index: 0, URL: chapterURL, ImageURL: "https://cdn.test/1.jpg"},
				{Index: 1, URL: chapterURL, ImageURL: "https://cdn.test/2.jpg"},
			},
		},
		{
			"images list in a script",
			`<div id="readerarea"></div><script>ts_reader.run({"prevUrl":"","sources":[{"source":"Server 1","images":["https:\/\/cdn.test\/1.jpg","https:\/\/cdn.test\/2.jpg"]}]});</script>`,
			[]*manga.Page{
				{Index: 0, URL: chapterURL, ImageURL: "https://cdn.test/1.jpg"},
				{Index: 1, URL: chapterURL, ImageURL: "https://cdn.test/2.jpg"},
			},
		},
		{"no images", `<div id="readerarea"></div>`, []*manga.Page{}},
		{"invalid images list", `<script>var x = {"images": [1, 2]};</script>`, []*manga.Page{}},
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
}

func filterTypes(filterList filters.FilterList) []string {
	types := []string{}
	for _, filter := range filterList {
		types = append(types, filter.Type())
	}

	return types
}

func TestFilterList(t *testing.T) {
	t.Run("Should ask to reset the filters when the genres are unknown", func(t *testing.T) {
		s := newTestSource()
		filterList := s.FilterList()

		expected := []string{"separator", "select", "select", "select", "header"}
		if !reflect.DeepEqual(filterTypes(filterList), expected) {
			t.Fatalf("expected %v, got %v", expected, filterTypes(filterList))
		}
		if header := filterList[4].(*filters.Header); header.Name != s.Intl().Get("genre_missing_warning") {
			t.Fatalf("expected genre missing warning, got %q", header.Name)
		}
	})
	t.Run("Should show the genres and the project filter", func(t *testing.T) {
		s := newTestSource(WithProjectPage(DefaultProjectPage))
		s.SetGenreList([]Genre{{Name: "Action", Value: "action"}})
		filterList := s.FilterList()

		expected := []string{"separator", "select", "select", "select", "header", "group", "separator", "header", "header", "select"}
		if !reflect.DeepEqual(filterTypes(filterList), expected) {
			t.Fatalf("expected %v, got %v", expected, filterTypes(filterList))
		}
		if header := filterList[8].(*filters.Header); header.Name != "Test Site Daftar Proyek" {
			t.Fatalf("expected project list header, got %q", header.Name)
		}
		if _, ok := filterList.Group(GenreFilterKey); !ok {
			t.Fatalf("expected genre group")
		}
	})
}
