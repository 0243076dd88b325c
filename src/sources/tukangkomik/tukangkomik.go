// Package tukangkomik implements the source of the Tukangkomik site, a MangaThemesia site
// with a configurable domain and a reader that loads the pages from a script.
package tukangkomik

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/diogovalentte/tukangkomik/src/errordefs"
	"github.com/diogovalentte/tukangkomik/src/filters"
	"github.com/diogovalentte/tukangkomik/src/manga"
	"github.com/diogovalentte/tukangkomik/src/notifications"
	"github.com/diogovalentte/tukangkomik/src/preferences"
	"github.com/diogovalentte/tukangkomik/src/sources/mangathemesia"
	"github.com/diogovalentte/tukangkomik/src/util"
)

const (
	Name              = "Tukangkomik"
	DefaultBaseURL    = "https://tukangkomik.id"
	Lang              = "id"
	MangaURLDirectory = "/manga"

	// BaseURLPrefKey is the preference overriding the site domain
	BaseURLPrefKey     = "overrideBaseUrl"
	baseURLPrefTitle   = "Ubah Domain"
	baseURLPrefSummary = "Update domain untuk ekstensi ini"
)

// Source is the Tukangkomik source
type Source struct {
	*mangathemesia.Source
	prefs   preferences.Store
	toaster notifications.Toaster
}

// New returns the Tukangkomik source.
// Its preferences are kept in store under the "source_{id}" scope.
func New(store preferences.Store, toaster notifications.Toaster, opts ...mangathemesia.Option) *Source {
	if store == nil {
		store = preferences.NewMemoryStore()
	}

	s := &Source{toaster: toaster}
	sourceOpts := make([]mangathemesia.Option, 0, len(opts)+1)
	sourceOpts = append(sourceOpts, opts...)
	sourceOpts = append(sourceOpts, mangathemesia.WithBaseURLResolver(s.BaseURL))
	s.Source = mangathemesia.New(Name, DefaultBaseURL, Lang, MangaURLDirectory, sourceOpts...)
	s.prefs = preferences.Scoped(store, fmt.Sprintf("source_%d", s.ID()))

	return s
}

// PreferenceStore returns the store of the source preferences
func (s *Source) PreferenceStore() preferences.Store {
	return s.prefs
}

// BaseURL returns the domain set by the user or the default base URL if it's not set
func (s *Source) BaseURL() string {
	value, found, err := s.prefs.Get(context.Background(), BaseURLPrefKey)
	if err != nil {
		s.Logger().Error().Err(err).Msg("error while getting the base URL preference, using the default base URL")
		return s.DefaultBaseURL()
	}
	if !found || value == "" {
		return s.DefaultBaseURL()
	}

	return value
}

// SearchMangaRequest uses the site search when there is a query, the filters are ignored in this case.
// Without a query, it searches the manga directory with the filters.
func (s *Source) SearchMangaRequest(page int, query string, filterList filters.FilterList) (*http.Request, error) {
	if query == "" {
		return s.Source.SearchMangaRequest(page, query, filterList)
	}

	return s.TextSearchRequest(page, query)
}

// MangaDetailsParse parses the manga page.
// The title is the alt text of the series thumbnail, the page heading has extra words like "Bahasa Indonesia".
func (s *Source) MangaDetailsParse(doc *goquery.Document) (*manga.Manga, error) {
	errorContext := "error while parsing manga details"

	mangaReturn, err := s.Source.MangaDetailsParse(doc)
	if err != nil {
		return nil, util.AddErrorContext(errorContext, err)
	}

	thumbnail := doc.Find(mangathemesia.SeriesThumbnailSelector).First()
	if thumbnail.Length() == 0 {
		return nil, util.AddErrorContext(errorContext, errordefs.ErrThumbnailNotFound)
	}
	mangaReturn.Title = thumbnail.AttrOr("alt", "")

	return mangaReturn, nil
}

// FilterList returns the search filters with a warning that they can't be used with a query
func (s *Source) FilterList() filters.FilterList {
	filterList := filters.FilterList{
		&filters.Header{Name: s.Intl().Get("text_search_warning")},
		&filters.Separator{},
		s.StatusFilter(),
		s.TypeFilter(),
		s.OrderByFilter(),
	}
	filterList = append(filterList, s.GenreFilters()...)
	filterList = append(filterList, s.ProjectFilters()...)

	return filterList
}
