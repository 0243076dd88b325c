package mangathemesia

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/diogovalentte/tukangkomik/src/errordefs"
	"github.com/diogovalentte/tukangkomik/src/filters"
	"github.com/diogovalentte/tukangkomik/src/util"
)

// query is an URL query that keeps the parameters in the order they were added
type query []string

func (q *query) add(key, value string) {
	*q = append(*q, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

func (q query) encode() string {
	return strings.Join(q, "&")
}

// PopularMangaRequest returns the request of the popular mangas listing
func (s *Source) PopularMangaRequest(page int) (*http.Request, error) {
	filterList, err := s.orderedBy("popular")
	if err != nil {
		return nil, util.AddErrorContext("error while creating popular mangas request", err)
	}

	return s.SearchMangaRequest(page, "", filterList)
}

// LatestUpdatesRequest returns the request of the latest updated mangas listing
func (s *Source) LatestUpdatesRequest(page int) (*http.Request, error) {
	filterList, err := s.orderedBy("update")
	if err != nil {
		return nil, util.AddErrorContext("error while creating latest updates request", err)
	}

	return s.SearchMangaRequest(page, "", filterList)
}

func (s *Source) orderedBy(order string) (filters.FilterList, error) {
	orderBy := s.OrderByFilter()
	if err := orderBy.SetValue(order); err != nil {
		return nil, err
	}

	return filters.FilterList{orderBy}, nil
}

// SearchMangaRequest returns the request of the manga directory search, like
// "{baseUrl}/manga/?title=one&page=1&status=ongoing&type=&order=popular&genre[]=action"
func (s *Source) SearchMangaRequest(page int, title string, filterList filters.FilterList) (*http.Request, error) {
	directory := s.mangaURLDirectory

	q := query{}
	q.add("title", title)
	q.add("page", strconv.Itoa(page))
	for _, filter := range filterList {
		switch f := filter.(type) {
		case *filters.Select:
			switch f.Key {
			case StatusFilterKey, TypeFilterKey, OrderByFilterKey:
				q.add(f.Key, f.SelectedValue())
			case ProjectFilterKey:
				if f.SelectedValue() == ProjectFilterOn {
					directory = s.projectPageString
				}
			}
		case *filters.Group:
			if f.Key != GenreFilterKey {
				continue
			}
			for _, genre := range f.Filters {
				switch genre.State {
				case filters.StateInclude:
					q.add(GenreFilterKey+"[]", genre.Value)
				case filters.StateExclude:
					q.add(GenreFilterKey+"[]", "-"+genre.Value)
				}
			}
		}
	}

	return s.GET(s.BaseURL() + directory + "/?" + q.encode())
}

// TextSearchRequest returns the request of the site search, "{baseUrl}/?s={text}&page={page}".
// The site search ignores the filters.
func (s *Source) TextSearchRequest(page int, text string) (*http.Request, error) {
	q := query{}
	q.add("s", text)
	q.add("page", strconv.Itoa(page))

	return s.GET(s.BaseURL() + "/?" + q.encode())
}

// MangaDetailsRequest returns the request of the manga page
func (s *Source) MangaDetailsRequest(mangaURL string) (*http.Request, error) {
	if mangaURL == "" {
		return nil, util.AddErrorContext("error while creating manga details request", errordefs.ErrMangaHasNoURL)
	}

	return s.GET(util.AbsoluteURL(s.BaseURL(), mangaURL))
}

// ChapterListRequest returns the request of the page listing the manga chapters, the manga page
func (s *Source) ChapterListRequest(mangaURL string) (*http.Request, error) {
	if mangaURL == "" {
		return nil, util.AddErrorContext("error while creating chapter list request", errordefs.ErrMangaHasNoURL)
	}

	return s.GET(util.AbsoluteURL(s.BaseURL(), mangaURL))
}

// PageListRequest returns the request of the chapter reader page
func (s *Source) PageListRequest(chapterURL string) (*http.Request, error) {
	if chapterURL == "" {
		return nil, util.AddErrorContext("error while creating page list request", errordefs.ErrChapterHasNoURL)
	}

	return s.GET(util.AbsoluteURL(s.BaseURL(), chapterURL))
}
