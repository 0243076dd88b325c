// Package manga implements the manga, chapter and page structs scraped from a source
package manga

import (
	"fmt"
	"strings"
)

type (
	// Status is the publication status of the manga in the source, it can be:
	// 0 - Unknown
	// 1 - Ongoing
	// 2 - Completed
	// 3 - Licensed
	// 4 - Publishing finished
	// 5 - Cancelled
	// 6 - On hiatus
	Status int
)

const (
	StatusUnknown Status = iota
	StatusOngoing
	StatusCompleted
	StatusLicensed
	StatusPublishingFinished
	StatusCancelled
	StatusOnHiatus
)

var statusNames = map[Status]string{
	StatusUnknown:            "unknown",
	StatusOngoing:            "ongoing",
	StatusCompleted:          "completed",
	StatusLicensed:           "licensed",
	StatusPublishingFinished: "publishing finished",
	StatusCancelled:          "cancelled",
	StatusOnHiatus:           "on hiatus",
}

func (s Status) String() string {
	name, ok := statusNames[s]
	if !ok {
		return statusNames[StatusUnknown]
	}

	return name
}

// Manga is the struct for a manga scraped from a source
type Manga struct {
	// URL is the URL of the manga without the base URL, like "/manga/one-piece/"
	URL string `json:"url" yaml:"url"`
	// Title is the name of the manga
	Title  string `json:"title" yaml:"title"`
	Artist string `json:"artist,omitempty" yaml:"artist,omitempty"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	// Description is the synopsis, alternative names are appended to it
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Genre is a comma separated list of genres
	Genre        string `json:"genre,omitempty" yaml:"genre,omitempty"`
	Status       Status `json:"status" yaml:"status"`
	ThumbnailURL string `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`
	// Initialized is true when the manga details were parsed from the manga page
	Initialized bool `json:"initialized" yaml:"initialized"`
}

func (m Manga) String() string {
	return fmt.Sprintf("Manga{URL: %s, Title: %s, Artist: %s, Author: %s, Genre: %s, Status: %s, ThumbnailURL: %s, Initialized: %v}", m.URL, m.Title, m.Artist, m.Author, m.Genre, m.Status, m.ThumbnailURL, m.Initialized)
}

// Genres returns the genres of the manga as a list
func (m *Manga) Genres() []string {
	genres := []string{}
	for _, genre := range strings.Split(m.Genre, ",") {
		genre = strings.TrimSpace(genre)
		if genre != "" {
			genres = append(genres, genre)
		}
	}

	return genres
}

// MangasPage is a page of mangas from a listing or search
type MangasPage struct {
	Mangas      []*Manga `json:"mangas" yaml:"mangas"`
	HasNextPage bool     `json:"has_next_page" yaml:"has_next_page"`
}
