// Package sources implements the manga sources registry and the fetch pipeline.
// A source builds the request, the pipeline fetches the document and the source parses it.
// The sources should not be used directly, instead, the functions in this package should be used.
package sources

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/diogovalentte/tukangkomik/src/config"
	"github.com/diogovalentte/tukangkomik/src/errordefs"
	"github.com/diogovalentte/tukangkomik/src/filters"
	"github.com/diogovalentte/tukangkomik/src/manga"
	"github.com/diogovalentte/tukangkomik/src/preferences"
	"github.com/diogovalentte/tukangkomik/src/sources/fetcher"
	"github.com/diogovalentte/tukangkomik/src/sources/models"
	"github.com/diogovalentte/tukangkomik/src/util"
)

var (
	mu sync.RWMutex
	// sources is a map of all sources by ID
	sources = map[string]models.Source{}

	documentFetcher fetcher.Fetcher = &fetcher.CollyFetcher{UserAgent: config.DefaultUserAgent}
)

// SetFetcher sets the fetcher used to get the sources documents
func SetFetcher(f fetcher.Fetcher) {
	mu.Lock()
	defer mu.Unlock()
	documentFetcher = f
}

// SourceID returns the ID of a source as used by the registry
func SourceID(source models.Source) string {
	return strconv.FormatInt(source.ID(), 10)
}

// RegisterSource registers a new source
func RegisterSource(source models.Source) {
	mu.Lock()
	defer mu.Unlock()
	sources[SourceID(source)] = source
}

// DeleteSource deletes a source
func DeleteSource(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(sources, id)
}

// GetSource returns a source
func GetSource(id string) (models.Source, error) {
	mu.RLock()
	defer mu.RUnlock()

	source, ok := sources[id]
	if !ok {
		return nil, util.AddErrorContext("source '"+id+"'", errordefs.ErrSourceNotFound)
	}

	return source, nil
}

// GetSources returns all sources
func GetSources() map[string]models.Source {
	mu.RLock()
	defer mu.RUnlock()

	sourcesCopy := make(map[string]models.Source, len(sources))
	for id, source := range sources {
		sourcesCopy[id] = source
	}

	return sourcesCopy
}

// GetSourceInfo returns the information of a source
func GetSourceInfo(id string) (*models.SourceInfo, error) {
	source, err := GetSource(id)
	if err != nil {
		return nil, err
	}

	return sourceInfo(source), nil
}

// GetSourcesInfo returns the information of all sources sorted by name
func GetSourcesInfo() []*models.SourceInfo {
	infos := []*models.SourceInfo{}
	for _, source := range GetSources() {
		infos = append(infos, sourceInfo(source))
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos
}

func sourceInfo(source models.Source) *models.SourceInfo {
	_, configurable := source.(models.ConfigurableSource)

	return &models.SourceInfo{
		ID:           SourceID(source),
		Name:         source.Name(),
		Lang:         source.Lang(),
		BaseURL:      source.BaseURL(),
		Configurable: configurable,
	}
}

// fetch gets the document of req.
// notFoundErr replaces the fetcher error if the page doesn't exist.
func fetch(ctx context.Context, req *http.Request, notFoundErr error) (*goquery.Document, error) {
	mu.RLock()
	f := documentFetcher
	mu.RUnlock()

	doc, err := f.Document(ctx, req)
	if err != nil {
		if notFoundErr != nil && errors.Is(err, errordefs.ErrPageNotFound) {
			return nil, util.AddErrorContext("error while fetching "+req.URL.String(), notFoundErr)
		}
		return nil, err
	}

	return doc, nil
}

// GetPopularManga gets a page of the most popular mangas of a source
func GetPopularManga(ctx context.Context, sourceID string, page int) (*manga.MangasPage, error) {
	contextError := "error while getting popular mangas from source"

	source, err := GetSource(sourceID)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	req, err := source.PopularMangaRequest(page)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	return listMangas(ctx, source, req, contextError)
}

// GetLatestUpdates gets a page of the last updated mangas of a source
func GetLatestUpdates(ctx context.Context, sourceID string, page int) (*manga.MangasPage, error) {
	contextError := "error while getting latest updated mangas from source"

	source, err := GetSource(sourceID)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	req, err := source.LatestUpdatesRequest(page)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	return listMangas(ctx, source, req, contextError)
}

// SearchManga searches the mangas of a source by query and filters
func SearchManga(ctx context.Context, sourceID string, page int, query string, filterList filters.FilterList) (*manga.MangasPage, error) {
	contextError := "error while searching mangas in source"

	source, err := GetSource(sourceID)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	req, err := source.SearchMangaRequest(page, query, filterList)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	return listMangas(ctx, source, req, contextError)
}

func listMangas(ctx context.Context, source models.Source, req *http.Request, contextError string) (*manga.MangasPage, error) {
	doc, err := fetch(ctx, req, nil)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	mangasPage, err := source.SearchMangaParse(doc)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	return mangasPage, nil
}

// GetMangaDetails gets the metadata of a manga using a source
func GetMangaDetails(ctx context.Context, sourceID, mangaURL string) (*manga.Manga, error) {
	contextError := "error while getting manga details from source"

	source, err := GetSource(sourceID)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	req, err := source.MangaDetailsRequest(mangaURL)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	doc, err := fetch(ctx, req, errordefs.ErrMangaNotFound)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	mangaReturn, err := source.MangaDetailsParse(doc)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}
	if mangaReturn.URL == "" {
		mangaReturn.URL = util.RelativeURL(mangaURL)
	}

	return mangaReturn, nil
}

// GetChapterList gets the chapters of a manga using a source
func GetChapterList(ctx context.Context, sourceID, mangaURL string) ([]*manga.Chapter, error) {
	contextError := "error while getting manga chapters from source"

	source, err := GetSource(sourceID)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	req, err := source.ChapterListRequest(mangaURL)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	doc, err := fetch(ctx, req, errordefs.ErrMangaNotFound)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	chapters, err := source.ChapterListParse(doc)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	return chapters, nil
}

// GetPageList gets the pages of a chapter using a source
func GetPageList(ctx context.Context, sourceID, chapterURL string) ([]*manga.Page, error) {
	contextError := "error while getting chapter pages from source"

	source, err := GetSource(sourceID)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	req, err := source.PageListRequest(chapterURL)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	doc, err := fetch(ctx, req, errordefs.ErrChapterNotFound)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	pages, err := source.PageListParse(doc)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	return pages, nil
}

// GetFilterList returns a new filter list of a source
func GetFilterList(sourceID string) (filters.FilterList, error) {
	source, err := GetSource(sourceID)
	if err != nil {
		return nil, util.AddErrorContext("error while getting source filters", err)
	}

	return source.FilterList(), nil
}

// GetPreferenceScreen returns the preference screen of a source backed by the source store
func GetPreferenceScreen(sourceID string) (*preferences.Screen, error) {
	contextError := "error while getting source preferences"

	source, err := GetSource(sourceID)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	configurable, ok := source.(models.ConfigurableSource)
	if !ok {
		return nil, util.AddErrorContext(contextError, errordefs.ErrSourceNotConfigurable)
	}

	screen := preferences.NewScreen(configurable.PreferenceStore())
	configurable.SetupPreferenceScreen(screen)

	return screen, nil
}
