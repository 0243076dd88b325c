// Package config implements the configurations for the application.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// GlobalConfigs is a pointer to the Configs struct that holds all the configurations.
// It is used to access the configurations throughout the application.
// Should be initialized by the SetConfigs function.
var GlobalConfigs = &Configs{
	API:         &APIConfigs{},
	Source:      &SourceConfigs{},
	Preferences: &PreferencesConfigs{},
	Ntfy:        &NtfyConfigs{},
}

// Configs is a struct that holds all the configurations.
type Configs struct {
	API         *APIConfigs
	Source      *SourceConfigs
	Preferences *PreferencesConfigs
	Ntfy        *NtfyConfigs
}

// APIConfigs is a struct that holds the API configurations.
type APIConfigs struct {
	Port        string
	LogLevelInt int
}

// SourceConfigs is a struct that holds the configurations used to fetch documents from the source.
type SourceConfigs struct {
	// Fetcher is the document fetcher, "colly" or "browser".
	Fetcher string
	// BrowserControlURL is the DevTools URL of a running browser.
	// If empty, a headless browser is launched when Fetcher is "browser".
	BrowserControlURL string
	CloudflareBypass  bool
	UserAgent         string
	// GenreCacheTTL is how long the genre list scraped from the search page is kept.
	GenreCacheTTL time.Duration
}

// PreferencesConfigs is a struct that holds the configurations of the preferences store.
type PreferencesConfigs struct {
	// Backend is one of ValidPreferencesBackends.
	Backend       string
	SQLitePath    string
	RedisAddress  string
	RedisPassword string
	RedisDB       int
}

// NtfyConfigs is a struct that holds the ntfy configurations.
type NtfyConfigs struct {
	Address string
	Topic   string
	Token   string
	Valid   bool
}

var (
	ValidPreferencesBackends = []string{"memory", "postgres", "sqlite", "redis"}
	ValidFetchers            = []string{"colly", "browser"}
	DefaultUserAgent         = "Mozilla/5.0 (X11; Linux x86_64; rv:30.0) Gecko/20100101 Firefox/30.0"
)

// SetConfigs sets the configurations based on a .env file if provided or using environment variables.
func SetConfigs(filePath string) error {
	var err error

	if filePath != "" {
		err = godotenv.Load(filePath)
		if err != nil {
			return fmt.Errorf("error loading env file '%s': %s", filePath, err)
		}
	}

	logLevel := zerolog.InfoLevel
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr != "" {
		logLevel, err = zerolog.ParseLevel(logLevelStr)
		if err != nil {
			return fmt.Errorf("error parsing error level '%s': %s", logLevelStr, err)
		}
	}
	GlobalConfigs.API.LogLevelInt = int(logLevel)
	GlobalConfigs.API.Port = os.Getenv("API_PORT")
	if GlobalConfigs.API.Port == "" {
		GlobalConfigs.API.Port = "8080"
	}

	GlobalConfigs.Source.Fetcher = "colly"
	if fetcher := os.Getenv("FETCHER"); fetcher != "" {
		if !slices.Contains(ValidFetchers, fetcher) {
			return fmt.Errorf("error parsing FETCHER '%s': must be one of %s", fetcher, ValidFetchers)
		}
		GlobalConfigs.Source.Fetcher = fetcher
	}
	GlobalConfigs.Source.BrowserControlURL = os.Getenv("BROWSER_CONTROL_URL")

	cloudflareBypass := os.Getenv("CLOUDFLARE_BYPASS")
	switch cloudflareBypass {
	case "true":
		GlobalConfigs.Source.CloudflareBypass = true
	case "false", "":
		GlobalConfigs.Source.CloudflareBypass = false
	default:
		return fmt.Errorf("error parsing CLOUDFLARE_BYPASS '%s': must be 'true' or 'false'", cloudflareBypass)
	}

	GlobalConfigs.Source.UserAgent = os.Getenv("USER_AGENT")
	if GlobalConfigs.Source.UserAgent == "" {
		GlobalConfigs.Source.UserAgent = DefaultUserAgent
	}

	minutes := 24 * 60
	if envMinutes := os.Getenv("GENRE_CACHE_MINUTES"); envMinutes != "" {
		minutes, err = strconv.Atoi(envMinutes)
		if err != nil {
			return fmt.Errorf("error converting GENRE_CACHE_MINUTES '%s' to int: %s", envMinutes, err)
		}
	}
	GlobalConfigs.Source.GenreCacheTTL = time.Duration(minutes) * time.Minute

	GlobalConfigs.Preferences.Backend = "memory"
	if backend := os.Getenv("PREFERENCES_BACKEND"); backend != "" {
		if !slices.Contains(ValidPreferencesBackends, backend) {
			return fmt.Errorf("error parsing PREFERENCES_BACKEND '%s': must be one of %s", backend, ValidPreferencesBackends)
		}
		GlobalConfigs.Preferences.Backend = backend
	}
	GlobalConfigs.Preferences.SQLitePath = os.Getenv("SQLITE_PATH")
	if GlobalConfigs.Preferences.SQLitePath == "" {
		GlobalConfigs.Preferences.SQLitePath = "./preferences.db"
	}
	GlobalConfigs.Preferences.RedisAddress = os.Getenv("REDIS_ADDRESS")
	GlobalConfigs.Preferences.RedisPassword = os.Getenv("REDIS_PASSWORD")
	GlobalConfigs.Preferences.RedisDB = 0
	if envRedisDB := os.Getenv("REDIS_DB"); envRedisDB != "" {
		GlobalConfigs.Preferences.RedisDB, err = strconv.Atoi(envRedisDB)
		if err != nil {
			return fmt.Errorf("error converting REDIS_DB '%s' to int: %s", envRedisDB, err)
		}
	}
	if GlobalConfigs.Preferences.Backend == "redis" && GlobalConfigs.Preferences.RedisAddress == "" {
		return fmt.Errorf("REDIS_ADDRESS must be set when PREFERENCES_BACKEND is 'redis'")
	}

	GlobalConfigs.Ntfy.Address = os.Getenv("NTFY_ADDRESS")
	GlobalConfigs.Ntfy.Topic = os.Getenv("NTFY_TOPIC")
	GlobalConfigs.Ntfy.Token = os.Getenv("NTFY_TOKEN")
	GlobalConfigs.Ntfy.Valid = GlobalConfigs.Ntfy.Address != "" && GlobalConfigs.Ntfy.Topic != ""

	return nil
}
