// Package main implements the init and main function
package main

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/diogovalentte/tukangkomik/src"
	"github.com/diogovalentte/tukangkomik/src/config"
	"github.com/diogovalentte/tukangkomik/src/db"
	"github.com/diogovalentte/tukangkomik/src/notifications"
	"github.com/diogovalentte/tukangkomik/src/preferences"
	"github.com/diogovalentte/tukangkomik/src/routes"
	"github.com/diogovalentte/tukangkomik/src/sources"
	"github.com/diogovalentte/tukangkomik/src/sources/fetcher"
	"github.com/diogovalentte/tukangkomik/src/sources/mangathemesia"
	"github.com/diogovalentte/tukangkomik/src/sources/tukangkomik"
	"github.com/diogovalentte/tukangkomik/src/util"
)

var (
	log   *zerolog.Logger
	store preferences.Store
)

func init() {
	// You can set the path to use an .env file below.
	// It can be an absolute path or relative to this file (main.go)
	filePath := ""
	if err := config.SetConfigs(filePath); err != nil {
		panic(err)
	}

	logLevelInt := config.GlobalConfigs.API.LogLevelInt
	logLevel, _ := zerolog.ParseLevel(strconv.Itoa(logLevelInt))
	log = util.GetLogger(logLevel)

	if config.GlobalConfigs.Preferences.Backend == "postgres" {
		log.Info().Msg("Trying to connect to DB...")
		_db, err := db.OpenConn()
		if err != nil {
			panic(err)
		}
		err = db.CreateTables(_db, log)
		_db.Close()
		if err != nil {
			panic(err)
		}
	}

	var err error
	store, err = preferences.Open(config.GlobalConfigs.Preferences)
	if err != nil {
		panic(err)
	}
	log.Info().Msgf("Will keep the preferences in the '%s' store", config.GlobalConfigs.Preferences.Backend)

	documentFetcher, err := fetcher.New(config.GlobalConfigs.Source)
	if err != nil {
		panic(err)
	}
	sources.SetFetcher(documentFetcher)
	log.Info().Msgf("Will fetch the documents with the '%s' fetcher", config.GlobalConfigs.Source.Fetcher)

	source := tukangkomik.New(store, getToaster(),
		mangathemesia.WithUserAgent(config.GlobalConfigs.Source.UserAgent),
		mangathemesia.WithGenreCacheTTL(config.GlobalConfigs.Source.GenreCacheTTL),
		mangathemesia.WithLogger(log),
	)
	sources.RegisterSource(source)
	routes.DefaultSourceID = sources.SourceID(source)
}

// @title Tukangkomik API
// @version 1.0
// @description API to browse the Tukangkomik manga source and change its preferences.
// @BasePath /v1
func main() {
	defer store.Close()

	router := api.SetupRouter(log)
	router.SetTrustedProxies(nil)

	if err := router.Run(":" + config.GlobalConfigs.API.Port); err != nil {
		log.Error().Err(err).Msg("API stopped")
	}
}

// getToaster returns the toaster showing the messages of the sources,
// they're logged and sent to ntfy if it's configured
func getToaster() notifications.Toaster {
	toaster := notifications.MultiToaster{&notifications.LogToaster{Log: log}}
	if !config.GlobalConfigs.Ntfy.Valid {
		log.Info().Msg("Will not send the toasts to ntfy")
		return toaster
	}

	publisher, err := notifications.GetNtfyPublisher(config.GlobalConfigs.Ntfy)
	if err != nil {
		panic(err)
	}
	log.Info().Msg("Will send the toasts to ntfy")

	return append(toaster, publisher)
}
