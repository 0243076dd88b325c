// Package mangathemesia implements the base source for the sites built with the
// MangaThemesia WordPress theme. The site sources embed Source and override what
// their site does differently.
package mangathemesia

import (
	"crypto/md5"
	"encoding/binary"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/diogovalentte/tukangkomik/src/config"
	"github.com/diogovalentte/tukangkomik/src/intl"
	"github.com/diogovalentte/tukangkomik/src/util"
)

const (
	// DefaultDateFormat is the chapters release date format, like "January 2, 2006"
	DefaultDateFormat = "January 2, 2006"
	// DefaultProjectPage is the directory listing only the site's own projects
	DefaultProjectPage = "/project"
	// DefaultGenreCacheTTL is how long the genres scraped from the search page are kept
	DefaultGenreCacheTTL = 24 * time.Hour
	// versionID is part of the source ID, it changes only if the source URLs change
	versionID = 1
)

// Source is the base source of the MangaThemesia sites
type Source struct {
	name              string
	defaultBaseURL    string
	lang              string
	mangaURLDirectory string

	baseURLResolver   func() string
	userAgent         string
	dateFormat        string
	hasProjectPage    bool
	projectPageString string

	id     int64
	intl   *intl.Intl
	genres *cache.Cache
	log    *zerolog.Logger
}

// Option configures a Source
type Option func(*Source)

// WithBaseURLResolver sets the function called to get the base URL on every access,
// instead of using the default base URL
func WithBaseURLResolver(resolver func() string) Option {
	return func(s *Source) {
		s.baseURLResolver = resolver
	}
}

// WithUserAgent sets the User-Agent header of the requests
func WithUserAgent(userAgent string) Option {
	return func(s *Source) {
		if userAgent != "" {
			s.userAgent = userAgent
		}
	}
}

// WithDateFormat sets the time layout of the chapters release date
func WithDateFormat(layout string) Option {
	return func(s *Source) {
		s.dateFormat = layout
	}
}

// WithProjectPage enables the project filter, listing the mangas in directory
func WithProjectPage(directory string) Option {
	return func(s *Source) {
		s.hasProjectPage = true
		s.projectPageString = directory
	}
}

// WithGenreCacheTTL sets how long the genres are kept
func WithGenreCacheTTL(ttl time.Duration) Option {
	return func(s *Source) {
		if ttl > 0 {
			s.genres = cache.New(ttl, 2*ttl)
		}
	}
}

// WithLogger sets the logger of the source
func WithLogger(log *zerolog.Logger) Option {
	return func(s *Source) {
		s.log = log
	}
}

// New returns a new Source for the site named name.
// mangaURLDirectory is the directory listing the mangas, like "/manga".
func New(name, baseURL, lang, mangaURLDirectory string, opts ...Option) *Source {
	nop := zerolog.Nop()
	s := &Source{
		name:              name,
		defaultBaseURL:    strings.TrimSuffix(baseURL, "/"),
		lang:              lang,
		mangaURLDirectory: mangaURLDirectory,
		userAgent:         config.DefaultUserAgent,
		dateFormat:        DefaultDateFormat,
		projectPageString: DefaultProjectPage,
		id:                GenerateID(name, lang, versionID),
		intl:              intl.New(lang),
		genres:            cache.New(DefaultGenreCacheTTL, 2*DefaultGenreCacheTTL),
		log:               &nop,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GenerateID returns the ID of a source: the first 8 bytes of the MD5 of
// "{lowercase name}/{lang}/{version}" as a big endian positive int64
func GenerateID(name, lang string, version int) int64 {
	key := strings.ToLower(name) + "/" + lang + "/" + strconv.Itoa(version)
	sum := md5.Sum([]byte(key))

	return int64(binary.BigEndian.Uint64(sum[:8]) & math.MaxInt64)
}

// ID returns the source ID, used to scope its preferences as "source_{id}"
func (s *Source) ID() int64 {
	return s.id
}

// Name returns the site name
func (s *Source) Name() string {
	return s.name
}

// Lang returns the site language, like "id"
func (s *Source) Lang() string {
	return s.lang
}

// DefaultBaseURL returns the base URL the source was created with
func (s *Source) DefaultBaseURL() string {
	return s.defaultBaseURL
}

// BaseURL returns the base URL given by the resolver, or the default base URL if there is no resolver
func (s *Source) BaseURL() string {
	if s.baseURLResolver == nil {
		return s.defaultBaseURL
	}

	return strings.TrimSuffix(s.baseURLResolver(), "/")
}

// MangaURLDirectory returns the directory listing the mangas, like "/manga"
func (s *Source) MangaURLDirectory() string {
	return s.mangaURLDirectory
}

// HasProjectPage returns whether the site lists its own projects in a separated page
func (s *Source) HasProjectPage() bool {
	return s.hasProjectPage
}

// Intl returns the localized strings of the source language
func (s *Source) Intl() *intl.Intl {
	return s.intl
}

// Logger returns the source logger
func (s *Source) Logger() *zerolog.Logger {
	return s.log
}

// Headers returns the headers sent in every request
func (s *Source) Headers() http.Header {
	headers := http.Header{}
	headers.Set("User-Agent", s.userAgent)
	headers.Set("Referer", s.BaseURL()+"/")

	return headers
}

// GET returns a GET request to rawURL with the source headers
func (s *Source) GET(rawURL string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, util.AddErrorContext("error while creating request", err)
	}
	req.Header = s.Headers()

	return req, nil
}
