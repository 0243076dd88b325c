package routes

import (
	"github.com/diogovalentte/tukangkomik/src/manga"
	"github.com/diogovalentte/tukangkomik/src/preferences"
	"github.com/diogovalentte/tukangkomik/src/sources/models"
)

// The types below are used only by the API documentation

type responseMessage struct {
	Message string `json:"message"`
}

type sourcesResponse struct {
	Sources []*models.SourceInfo `json:"sources"`
}

type mangasPageResponse struct {
	Mangas manga.MangasPage `json:"mangas"`
}

type mangaResponse struct {
	Manga manga.Manga `json:"manga"`
}

type chaptersResponse struct {
	Chapters []manga.Chapter `json:"chapters"`
}

type pagesResponse struct {
	Pages []manga.Page `json:"pages"`
}

type filtersResponse struct {
	Filters []map[string]any `json:"filters"`
}

type preferencesResponse struct {
	Preferences []preferences.PreferenceValue `json:"preferences"`
}
