package mangathemesia

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/diogovalentte/tukangkomik/src/manga"
	"github.com/diogovalentte/tukangkomik/src/util"
)

// Selectors of the theme pages
const (
	SearchMangaSelector     = ".utao .uta .imgu, .listupd .bs .bsx, .listo .bs .bsx"
	SearchNextPageSelector  = "div.pagination .next, div.hpage .r"
	SeriesDetailsSelector   = "div.bigcontent, div.animefull, div.main-info, div.postbody"
	SeriesTitleSelector     = "h1.entry-title, .ts-breadcrumb li:last-child span"
	SeriesDescriptionSel    = ".desc, .entry-content[itemprop=description]"
	SeriesAltNameSelector   = `.alternative, .wd-full:contains("alt") span, .alter, .seriestualt`
	SeriesGenreSelector     = "div.gnr a, .mgen a, .seriestugenre a"
	SeriesThumbnailSelector = ".infomanga > div[itemprop=image] img, .thumb img"
	ChapterListSelector     = "div.bxcl li, div.cl li, #chapterlist li"
	PageSelector            = "div#readerarea img"
)

var (
	jsonImageListRegex = regexp.MustCompile(`"images"\s*:\s*(\[.*?])`)
	chapterNumberRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	// month names of the sites in Indonesian
	indonesianMonths = strings.NewReplacer(
		"Januari", "January", "Februari", "February", "Maret", "March", "Mei", "May",
		"Juni", "June", "Juli", "July", "Agustus", "August", "Oktober", "October", "Desember", "December",
	)
)

// SearchMangaParse parses a listing or search page.
// The genres list of the page is cached to be used by the filters.
func (s *Source) SearchMangaParse(doc *goquery.Document) (*manga.MangasPage, error) {
	if genres := parseGenres(doc); len(genres) > 0 {
		s.SetGenreList(genres)
	}

	mangasPage := &manga.MangasPage{Mangas: []*manga.Manga{}}
	doc.Find(SearchMangaSelector).Each(func(_ int, element *goquery.Selection) {
		link := element.Find("a").First()
		href, exists := link.Attr("href")
		if !exists {
			return
		}

		title := strings.TrimSpace(link.AttrOr("title", ""))
		if title == "" {
			title = strings.TrimSpace(element.Find(".tt").First().Text())
		}

		mangasPage.Mangas = append(mangasPage.Mangas, &manga.Manga{
			URL:          util.RelativeURL(href),
			Title:        title,
			ThumbnailURL: s.imgAttr(element.Find("img").First()),
		})
	})
	mangasPage.HasNextPage = doc.Find(SearchNextPageSelector).Length() > 0

	return mangasPage, nil
}

// MangaDetailsParse parses the manga page
func (s *Source) MangaDetailsParse(doc *goquery.Document) (*manga.Manga, error) {
	details := doc.Find(SeriesDetailsSelector).First()
	if details.Length() == 0 {
		details = doc.Selection
	}

	mangaReturn := &manga.Manga{Initialized: true}
	if doc.Url != nil {
		mangaReturn.URL = util.RelativeURL(doc.Url.String())
	}
	mangaReturn.Title = strings.TrimSpace(details.Find(SeriesTitleSelector).First().Text())
	mangaReturn.Artist = removeEmptyPlaceholder(infoValue(details, "artist"))
	mangaReturn.Author = removeEmptyPlaceholder(infoValue(details, "author"))

	descriptions := []string{}
	details.Find(SeriesDescriptionSel).Each(func(_ int, e *goquery.Selection) {
		if text := strings.TrimSpace(e.Text()); text != "" {
			descriptions = append(descriptions, text)
		}
	})
	description := strings.Join(descriptions, "\n")
	if altName := strings.TrimSpace(ownText(details.Find(SeriesAltNameSelector).First())); altName != "" {
		description = strings.TrimSpace(description + "\n\n" + s.intl.Get("alt_names_heading") + altName)
	}
	mangaReturn.Description = description

	genres := []string{}
	seen := map[string]bool{}
	addGenre := func(genre string) {
		genre = strings.TrimSpace(genre)
		if genre == "" || seen[strings.ToLower(genre)] {
			return
		}
		seen[strings.ToLower(genre)] = true
		genres = append(genres, genre)
	}
	details.Find(SeriesGenreSelector).Each(func(_ int, e *goquery.Selection) {
		addGenre(e.Text())
	})
	if seriesType := removeEmptyPlaceholder(infoValue(details, "type")); seriesType != "" {
		addGenre(s.intl.Title(seriesType))
	}
	mangaReturn.Genre = strings.Join(genres, ", ")

	mangaReturn.Status = ParseStatus(infoValue(details, "status"))
	mangaReturn.ThumbnailURL = s.imgAttr(details.Find(SeriesThumbnailSelector).First())

	return mangaReturn, nil
}

// infoValue returns the value of the info row whose label contains label, like "Status" in
// <div class="imptdt">Status <i>Ongoing</i></div>
func infoValue(details *goquery.Selection, label string) string {
	var value string
	matches := func(text string) bool {
		return strings.Contains(strings.ToLower(text), label)
	}

	details.Find(".infotable tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if matches(row.Find("td").First().Text()) {
			value = row.Find("td").Last().Text()
			return false
		}
		return true
	})
	if value != "" {
		return strings.TrimSpace(value)
	}

	details.Find(".tsinfo .imptdt").EachWithBreak(func(_ int, info *goquery.Selection) bool {
		if matches(ownText(info)) {
			value = info.Find("i").First().Text()
			if strings.TrimSpace(value) == "" {
				value = info.Find("a").First().Text()
			}
			return false
		}
		return true
	})
	if value != "" {
		return strings.TrimSpace(value)
	}

	details.Find(".fmed").EachWithBreak(func(_ int, info *goquery.Selection) bool {
		if matches(info.Find("b").First().Text()) {
			value = info.Find("span").First().Text()
			return false
		}
		return true
	})

	return strings.TrimSpace(value)
}

// ownText returns the text of the element without the text of its children elements
func ownText(e *goquery.Selection) string {
	var text strings.Builder
	e.Contents().Each(func(_ int, child *goquery.Selection) {
		if goquery.NodeName(child) == "#text" {
			text.WriteString(child.Text())
		}
	})

	return strings.TrimSpace(text.String())
}

func removeEmptyPlaceholder(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "-", "n/a":
		return ""
	default:
		return strings.TrimSpace(value)
	}
}

// ParseStatus returns the status of a status text like "Ongoing" or "Tamat"
func ParseStatus(status string) manga.Status {
	status = strings.ToLower(status)
	switch {
	case status == "":
		return manga.StatusUnknown
	case strings.Contains(status, "ongoing"), strings.Contains(status, "publishing"), strings.Contains(status, "berjalan"):
		return manga.StatusOngoing
	case strings.Contains(status, "hiatus"):
		return manga.StatusOnHiatus
	case strings.Contains(status, "completed"), strings.Contains(status, "tamat"):
		return manga.StatusCompleted
	case strings.Contains(status, "dropped"), strings.Contains(status, "cancelled"):
		return manga.StatusCancelled
	default:
		return manga.StatusUnknown
	}
}

// ChapterListParse parses the chapters of the manga page
func (s *Source) ChapterListParse(doc *goquery.Document) ([]*manga.Chapter, error) {
	chapters := []*manga.Chapter{}
	doc.Find(ChapterListSelector).Each(func(_ int, element *goquery.Selection) {
		link := element.Find("a").First()
		href, exists := link.Attr("href")
		if !exists {
			return
		}

		name := strings.TrimSpace(element.Find(".lch a, .chapternum").Text())
		if name == "" {
			name = strings.TrimSpace(link.Text())
		}

		chapters = append(chapters, &manga.Chapter{
			URL:           util.RelativeURL(href),
			Name:          name,
			DateUpload:    s.parseChapterDate(element.Find(".chapterdate").First().Text()),
			ChapterNumber: parseChapterNumber(element.AttrOr("data-num", ""), name),
		})
	})

	return chapters, nil
}

// parseChapterDate returns the zero time if date can't be parsed
func (s *Source) parseChapterDate(date string) time.Time {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(s.dateFormat, indonesianMonths.Replace(date))
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func parseChapterNumber(dataNum, name string) float64 {
	for _, value := range []string{dataNum, name} {
		match := chapterNumberRegex.FindString(value)
		if match == "" {
			continue
		}
		number, err := strconv.ParseFloat(match, 64)
		if err == nil {
			return number
		}
	}

	return -1
}

// PageListParse parses the reader page images. The images are taken from the
// reader area or, if the area is empty, from the first "images" JSON list of the page scripts.
func (s *Source) PageListParse(doc *goquery.Document) ([]*manga.Page, error) {
	location := DocumentLocation(doc)

	pages := []*manga.Page{}
	doc.Find(PageSelector).Each(func(_ int, img *goquery.Selection) {
		imageURL := s.imgAttr(img)
		if imageURL == "" {
			return
		}
		pages = append(pages, &manga.Page{Index: len(pages), URL: location, ImageURL: imageURL})
	})
	if len(pages) > 0 {
		return pages, nil
	}

	html, err := doc.Html()
	if err != nil {
		return nil, util.AddErrorContext("error while getting document HTML", err)
	}
	match := jsonImageListRegex.FindStringSubmatch(html)
	if match == nil {
		return pages, nil
	}

	var imageURLs []string
	if err := json.Unmarshal([]byte(match[1]), &imageURLs); err != nil {
		s.log.Debug().Err(err).Str("url", location).Msg("page images list is not a JSON list of strings")
		return pages, nil
	}
	for i, imageURL := range imageURLs {
		pages = append(pages, &manga.Page{Index: i, URL: location, ImageURL: imageURL})
	}

	return pages, nil
}

// DocumentLocation returns the URL the document was fetched from, or "" if unknown
func DocumentLocation(doc *goquery.Document) string {
	if doc.Url == nil {
		return ""
	}

	return doc.Url.String()
}

// imgAttr returns the absolute image URL of a lazy loaded img element
func (s *Source) imgAttr(img *goquery.Selection) string {
	for _, attr := range []string{"data-lazy-src", "data-src", "data-cfsrc", "src"} {
		if value, exists := img.Attr(attr); exists && strings.TrimSpace(value) != "" {
			return util.AbsoluteURL(s.BaseURL(), strings.TrimSpace(value))
		}
	}

	return ""
}
