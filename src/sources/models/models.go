// Package models implements the interfaces the sources implement to be used by the sources package
package models

import (
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/diogovalentte/tukangkomik/src/filters"
	"github.com/diogovalentte/tukangkomik/src/manga"
	"github.com/diogovalentte/tukangkomik/src/preferences"
)

// Source is the interface for a manga source.
// A source builds the requests and parses the fetched documents, it doesn't fetch anything itself.
type Source interface {
	ID() int64
	Name() string
	Lang() string
	// BaseURL is read on every request, it can change while the source is used
	BaseURL() string

	PopularMangaRequest(page int) (*http.Request, error)
	LatestUpdatesRequest(page int) (*http.Request, error)
	SearchMangaRequest(page int, query string, filterList filters.FilterList) (*http.Request, error)
	// SearchMangaParse parses the popular, latest and search pages
	SearchMangaParse(doc *goquery.Document) (*manga.MangasPage, error)

	MangaDetailsRequest(mangaURL string) (*http.Request, error)
	MangaDetailsParse(doc *goquery.Document) (*manga.Manga, error)
	ChapterListRequest(mangaURL string) (*http.Request, error)
	ChapterListParse(doc *goquery.Document) ([]*manga.Chapter, error)
	PageListRequest(chapterURL string) (*http.Request, error)
	PageListParse(doc *goquery.Document) ([]*manga.Page, error)

	// FilterList returns a new filter list, the caller can change its state
	FilterList() filters.FilterList
}

// ConfigurableSource is a source with preferences the user can change
type ConfigurableSource interface {
	Source
	// PreferenceStore returns the store scoped to the source
	PreferenceStore() preferences.Store
	SetupPreferenceScreen(screen *preferences.Screen)
}

// SourceInfo is the public information of a source
type SourceInfo struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Lang         string `json:"lang" yaml:"lang"`
	BaseURL      string `json:"base_url" yaml:"base_url"`
	Configurable bool   `json:"configurable" yaml:"configurable"`
}
