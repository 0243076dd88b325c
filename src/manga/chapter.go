package manga

import (
	"fmt"
	"time"
)

// Chapter is the struct for a chapter scraped from a source
type Chapter struct {
	// URL is the URL of the chapter without the base URL
	URL  string `json:"url" yaml:"url"`
	Name string `json:"name" yaml:"name"`
	// DateUpload is the time when the chapter was released in the source.
	// Zero if the source doesn't show it or it can't be parsed.
	DateUpload time.Time `json:"date_upload" yaml:"date_upload"`
	// ChapterNumber is -1 when it can't be found
	ChapterNumber float64 `json:"chapter_number" yaml:"chapter_number"`
}

func (c Chapter) String() string {
	return fmt.Sprintf("Chapter{URL: %s, Name: %s, DateUpload: %s, ChapterNumber: %v}", c.URL, c.Name, c.DateUpload, c.ChapterNumber)
}

// Page is one image of a chapter.
type Page struct {
	// Index is the zero-based position of the page in the chapter
	Index int `json:"index" yaml:"index"`
	// URL is the location of the document the page was found in
	URL      string `json:"url" yaml:"url"`
	ImageURL string `json:"image_url" yaml:"image_url"`
}

func (p Page) String() string {
	return fmt.Sprintf("Page{Index: %d, URL: %s, ImageURL: %s}", p.Index, p.URL, p.ImageURL)
}

// ReaderSession is the payload passed to the theme reader script, like:
// ts_reader.run({"sources": [{"source": "Server 1", "images": ["https://...", ...]}]});
type ReaderSession struct {
	Sources []ReaderImageSource `json:"sources"`
}

// ReaderImageSource is one image server of a ReaderSession.
// The images order is the pages order.
type ReaderImageSource struct {
	Source string   `json:"source"`
	Images []string `json:"images"`
}
