// Package routes implements the source routes
package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/diogovalentte/tukangkomik/src/errordefs"
	"github.com/diogovalentte/tukangkomik/src/sources"
)

// DefaultSourceID is the source used when a request doesn't have the source_id query parameter
var DefaultSourceID string

// SourceRoutes sets the source routes
func SourceRoutes(group *gin.RouterGroup) {
	{
		group.GET("/source", GetSources)
		group.GET("/mangas/popular", GetPopularManga)
		group.GET("/mangas/latest", GetLatestUpdates)
		group.GET("/mangas/search", SearchManga)
		group.GET("/manga", GetMangaDetails)
		group.GET("/manga/chapters", GetChapterList)
		group.GET("/chapter/pages", GetPageList)
		group.GET("/filters", GetFilterList)
	}
}

// @Summary Get sources
// @Description Returns the registered sources.
// @Produce json
// @Success 200 {object} sourcesResponse
// @Router /source [get]
func GetSources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sources": sources.GetSourcesInfo()})
}

// @Summary Get popular mangas
// @Description Gets a page of the most popular mangas of the source.
// @Produce json
// @Param source_id query string false "Source ID" Example(5808419379780108473)
// @Param page query int false "Page number" Example(1)
// @Success 200 {object} mangasPageResponse
// @Router /mangas/popular [get]
func GetPopularManga(c *gin.Context) {
	page, err := getPage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	mangasPage, err := sources.GetPopularManga(c.Request.Context(), getSourceID(c), page)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mangas": mangasPage})
}

// @Summary Get latest updates
// @Description Gets a page of the last updated mangas of the source.
// @Produce json
// @Param source_id query string false "Source ID" Example(5808419379780108473)
// @Param page query int false "Page number" Example(1)
// @Success 200 {object} mangasPageResponse
// @Router /mangas/latest [get]
func GetLatestUpdates(c *gin.Context) {
	page, err := getPage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	mangasPage, err := sources.GetLatestUpdates(c.Request.Context(), getSourceID(c), page)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mangas": mangasPage})
}

// @Summary Search mangas
// @Description Searches the source mangas. With a query, the site search is used and the filters are ignored. Without a query, the filters are set by their query parameters.
// @Produce json
// @Param source_id query string false "Source ID" Example(5808419379780108473)
// @Param page query int false "Page number" Example(1)
// @Param q query string false "Search query" Example("solo leveling")
// @Param status query string false "Status filter" Example(ongoing)
// @Param type query string false "Type filter" Example(Manhwa)
// @Param order query string false "Order by filter" Example(popular)
// @Param genre[] query []string false "Genres, excluded genres start with -" collectionFormat(multi)
// @Param project query string false "Project filter" Example(project-filter-on)
// @Success 200 {object} mangasPageResponse
// @Router /mangas/search [get]
func SearchManga(c *gin.Context) {
	page, err := getPage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	sourceID := getSourceID(c)
	filterList, err := sources.GetFilterList(sourceID)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"message": err.Error()})
		return
	}
	if err = filterList.ApplyQuery(c.Request.URL.Query()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	mangasPage, err := sources.SearchManga(c.Request.Context(), sourceID, page, c.Query("q"), filterList)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mangas": mangasPage})
}

// @Summary Get manga
// @Description Gets the manga details from the source.
// @Produce json
// @Param source_id query string false "Source ID" Example(5808419379780108473)
// @Param url query string true "Manga URL" Example("/manga/solo-leveling/")
// @Success 200 {object} mangaResponse
// @Router /manga [get]
func GetMangaDetails(c *gin.Context) {
	mangaURL := c.Query("url")
	if mangaURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "url is required"})
		return
	}

	mangaReturn, err := sources.GetMangaDetails(c.Request.Context(), getSourceID(c), mangaURL)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"manga": mangaReturn})
}

// @Summary Get manga chapters
// @Description Gets the manga chapters from the source.
// @Produce json
// @Param source_id query string false "Source ID" Example(5808419379780108473)
// @Param url query string true "Manga URL" Example("/manga/solo-leveling/")
// @Success 200 {object} chaptersResponse
// @Router /manga/chapters [get]
func GetChapterList(c *gin.Context) {
	mangaURL := c.Query("url")
	if mangaURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "url is required"})
		return
	}

	chapters, err := sources.GetChapterList(c.Request.Context(), getSourceID(c), mangaURL)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chapters": chapters})
}

// @Summary Get chapter pages
// @Description Gets the chapter pages images from the source.
// @Produce json
// @Param source_id query string false "Source ID" Example(5808419379780108473)
// @Param url query string true "Chapter URL" Example("/solo-leveling-chapter-1/")
// @Success 200 {object} pagesResponse
// @Router /chapter/pages [get]
func GetPageList(c *gin.Context) {
	chapterURL := c.Query("url")
	if chapterURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "url is required"})
		return
	}

	pages, err := sources.GetPageList(c.Request.Context(), getSourceID(c), chapterURL)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// @Summary Get filters
// @Description Returns the search filters of the source. The genres are shown after a listing is requested.
// @Produce json
// @Param source_id query string false "Source ID" Example(5808419379780108473)
// @Success 200 {object} filtersResponse
// @Router /filters [get]
func GetFilterList(c *gin.Context) {
	filterList, err := sources.GetFilterList(getSourceID(c))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"filters": filterList})
}

func getSourceID(c *gin.Context) string {
	return c.DefaultQuery("source_id", DefaultSourceID)
}

func getPage(c *gin.Context) (int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 0, errors.New("page must be a positive number")
	}

	return page, nil
}

// errorStatus returns the HTTP status code of an error returned by the sources
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errordefs.ErrSourceNotFound),
		errors.Is(err, errordefs.ErrMangaNotFound),
		errors.Is(err, errordefs.ErrChapterNotFound),
		errors.Is(err, errordefs.ErrPageNotFound),
		errors.Is(err, errordefs.ErrPreferenceNotFound):
		return http.StatusNotFound
	case errors.Is(err, errordefs.ErrSourceNotConfigurable),
		errors.Is(err, errordefs.ErrPreferenceChangeRejected),
		errors.Is(err, errordefs.ErrMangaHasNoURL),
		errors.Is(err, errordefs.ErrChapterHasNoURL):
		return http.StatusBadRequest
	case errors.Is(err, errordefs.ErrThumbnailNotFound), errors.Is(err, errordefs.ErrEmptyDocument):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
