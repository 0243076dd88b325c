package mangathemesia

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/patrickmn/go-cache"

	"github.com/diogovalentte/tukangkomik/src/filters"
)

// Filter keys, they are also the search query parameters
const (
	StatusFilterKey  = "status"
	TypeFilterKey    = "type"
	OrderByFilterKey = "order"
	GenreFilterKey   = "genre"
	ProjectFilterKey = "project"

	// ProjectFilterOn is the project filter value that lists only the site projects
	ProjectFilterOn = "project-filter-on"

	genresCacheKey = "genres"
)

// Genre is a genre of the site search page
type Genre struct {
	Name  string
	Value string
}

// StatusOptions returns the options of the status filter
func (s *Source) StatusOptions() []filters.Option {
	return []filters.Option{
		{Name: s.intl.Get("status_filter_option_all"), Value: ""},
		{Name: s.intl.Get("status_filter_option_ongoing"), Value: "ongoing"},
		{Name: s.intl.Get("status_filter_option_completed"), Value: "completed"},
		{Name: s.intl.Get("status_filter_option_hiatus"), Value: "hiatus"},
		{Name: s.intl.Get("status_filter_option_dropped"), Value: "dropped"},
	}
}

// TypeOptions returns the options of the type filter
func (s *Source) TypeOptions() []filters.Option {
	return []filters.Option{
		{Name: s.intl.Get("type_filter_option_all"), Value: ""},
		{Name: s.intl.Get("type_filter_option_manga"), Value: "Manga"},
		{Name: s.intl.Get("type_filter_option_manhwa"), Value: "Manhwa"},
		{Name: s.intl.Get("type_filter_option_manhua"), Value: "Manhua"},
		{Name: s.intl.Get("type_filter_option_comic"), Value: "Comic"},
	}
}

// OrderByOptions returns the options of the order by filter
func (s *Source) OrderByOptions() []filters.Option {
	return []filters.Option{
		{Name: s.intl.Get("order_by_filter_default"), Value: ""},
		{Name: s.intl.Get("order_by_filter_az"), Value: "title"},
		{Name: s.intl.Get("order_by_filter_za"), Value: "titlereverse"},
		{Name: s.intl.Get("order_by_filter_latest_update"), Value: "update"},
		{Name: s.intl.Get("order_by_filter_latest_added"), Value: "latest"},
		{Name: s.intl.Get("order_by_filter_popular"), Value: "popular"},
	}
}

// ProjectOptions returns the options of the project filter
func (s *Source) ProjectOptions() []filters.Option {
	return []filters.Option{
		{Name: s.intl.Get("project_filter_all_manga"), Value: ""},
		{Name: s.intl.Get("project_filter_only_project"), Value: ProjectFilterOn},
	}
}

// StatusFilter returns a new status filter
func (s *Source) StatusFilter() *filters.Select {
	return &filters.Select{Key: StatusFilterKey, Name: s.intl.Get("status_filter_title"), Options: s.StatusOptions()}
}

// TypeFilter returns a new type filter
func (s *Source) TypeFilter() *filters.Select {
	return &filters.Select{Key: TypeFilterKey, Name: s.intl.Get("type_filter_title"), Options: s.TypeOptions()}
}

// OrderByFilter returns a new order by filter
func (s *Source) OrderByFilter() *filters.Select {
	return &filters.Select{Key: OrderByFilterKey, Name: s.intl.Get("order_by_filter_title"), Options: s.OrderByOptions()}
}

// ProjectFilter returns a new project filter
func (s *Source) ProjectFilter() *filters.Select {
	return &filters.Select{Key: ProjectFilterKey, Name: s.intl.Get("project_filter_title"), Options: s.ProjectOptions()}
}

// GenreFilter returns a new genre filter with the cached genres
func (s *Source) GenreFilter() *filters.Group {
	genres := s.GenreList()
	group := &filters.Group{
		Key:     GenreFilterKey,
		Name:    s.intl.Get("genre_filter_title"),
		Filters: make([]*filters.TriState, 0, len(genres)),
	}
	for _, genre := range genres {
		group.Filters = append(group.Filters, &filters.TriState{Name: genre.Name, Value: genre.Value})
	}

	return group
}

// GenreList returns the genres scraped from the search page.
// It's empty until a search page is parsed or after the cache expires.
func (s *Source) GenreList() []Genre {
	genres, found := s.genres.Get(genresCacheKey)
	if !found {
		return []Genre{}
	}

	return genres.([]Genre)
}

// SetGenreList caches genres
func (s *Source) SetGenreList(genres []Genre) {
	s.genres.Set(genresCacheKey, genres, cache.DefaultExpiration)
}

// parseGenres returns the genres of the "ul.genrez" list of the search page
func parseGenres(doc *goquery.Document) []Genre {
	genres := []Genre{}
	doc.Find("ul.genrez li").Each(func(_ int, li *goquery.Selection) {
		value, exists := li.Find("input").Attr("value")
		if !exists {
			return
		}
		genres = append(genres, Genre{
			Name:  strings.TrimSpace(li.Find("label").Text()),
			Value: value,
		})
	})

	return genres
}

// FilterList returns the search filters of the site
func (s *Source) FilterList() filters.FilterList {
	filterList := filters.FilterList{
		&filters.Separator{},
		s.StatusFilter(),
		s.TypeFilter(),
		s.OrderByFilter(),
	}
	filterList = append(filterList, s.GenreFilters()...)
	filterList = append(filterList, s.ProjectFilters()...)

	return filterList
}

// GenreFilters returns the genre filter and its warning if the genres are known,
// or a header asking to reload the filters if not
func (s *Source) GenreFilters() filters.FilterList {
	if len(s.GenreList()) == 0 {
		return filters.FilterList{&filters.Header{Name: s.intl.Get("genre_missing_warning")}}
	}

	return filters.FilterList{
		&filters.Header{Name: s.intl.Get("genre_exclusion_warning")},
		s.GenreFilter(),
	}
}

// ProjectFilters returns the project filter and its headers, or nothing if the site has no project page
func (s *Source) ProjectFilters() filters.FilterList {
	if !s.hasProjectPage {
		return filters.FilterList{}
	}

	return filters.FilterList{
		&filters.Separator{},
		&filters.Header{Name: s.intl.Get("project_filter_warning")},
		&filters.Header{Name: s.intl.Format("project_filter_name", s.name)},
		s.ProjectFilter(),
	}
}
