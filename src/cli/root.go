// Package cli implements the tukangkomik command line, which browses the sources
// and edits their preferences without running the API.
package cli

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/diogovalentte/tukangkomik/src/config"
	"github.com/diogovalentte/tukangkomik/src/db"
	"github.com/diogovalentte/tukangkomik/src/errordefs"
	"github.com/diogovalentte/tukangkomik/src/notifications"
	"github.com/diogovalentte/tukangkomik/src/preferences"
	"github.com/diogovalentte/tukangkomik/src/sources"
	"github.com/diogovalentte/tukangkomik/src/sources/fetcher"
	"github.com/diogovalentte/tukangkomik/src/sources/mangathemesia"
	"github.com/diogovalentte/tukangkomik/src/sources/tukangkomik"
	"github.com/diogovalentte/tukangkomik/src/util"
)

var (
	flagEnvFile string
	flagOutput  string
	flagSource  string
	flagDebug   bool
)

var (
	log             *zerolog.Logger
	store           preferences.Store
	documentFetcher fetcher.Fetcher
)

var validOutputs = []string{"yaml", "json"}

var rootCmd = &cobra.Command{
	Use:          "tukangkomik",
	Short:        "Browse the Tukangkomik manga source from the command line",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if !slices.Contains(validOutputs, flagOutput) {
			return fmt.Errorf("invalid output '%s': must be one of %s", flagOutput, validOutputs)
		}

		return setup(cmd.ErrOrStderr())
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "load the configurations from this .env file, defaults to ./.env if it exists")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "yaml", "output format, yaml or json")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "source ID, defaults to the first registered source")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// Execute runs the command line with the process arguments
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configurations and registers the sources.
// It does nothing if a source is already registered.
func setup(logOutput io.Writer) error {
	if len(sources.GetSources()) > 0 {
		return nil
	}

	envFile := flagEnvFile
	if envFile == "" && util.FileExists(".env") {
		envFile = ".env"
	}
	if err := config.SetConfigs(envFile); err != nil {
		return err
	}

	logLevel := zerolog.Level(config.GlobalConfigs.API.LogLevelInt)
	if flagDebug {
		logLevel = zerolog.DebugLevel
	}
	l := zerolog.New(zerolog.ConsoleWriter{Out: logOutput}).Level(logLevel).With().Timestamp().Logger()
	log = &l

	if config.GlobalConfigs.Preferences.Backend == "postgres" {
		_db, err := db.OpenConn()
		if err != nil {
			return err
		}
		err = db.CreateTables(_db, log)
		_db.Close()
		if err != nil {
			return err
		}
	}

	var err error
	store, err = preferences.Open(config.GlobalConfigs.Preferences)
	if err != nil {
		return err
	}

	documentFetcher, err = fetcher.New(config.GlobalConfigs.Source)
	if err != nil {
		return err
	}
	sources.SetFetcher(documentFetcher)

	toaster, err := getToaster()
	if err != nil {
		return err
	}
	sources.RegisterSource(tukangkomik.New(store, toaster,
		mangathemesia.WithUserAgent(config.GlobalConfigs.Source.UserAgent),
		mangathemesia.WithGenreCacheTTL(config.GlobalConfigs.Source.GenreCacheTTL),
		mangathemesia.WithLogger(log),
	))
	log.Debug().Str("fetcher", config.GlobalConfigs.Source.Fetcher).Str("preferences", config.GlobalConfigs.Preferences.Backend).Msg("Sources registered")

	return nil
}

func teardown() error {
	if closer, ok := documentFetcher.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}
	documentFetcher = nil

	if store != nil {
		err := store.Close()
		store = nil
		return err
	}

	return nil
}

func getToaster() (notifications.Toaster, error) {
	toaster := notifications.MultiToaster{&notifications.LogToaster{Log: log}}
	if !config.GlobalConfigs.Ntfy.Valid {
		return toaster, nil
	}

	publisher, err := notifications.GetNtfyPublisher(config.GlobalConfigs.Ntfy)
	if err != nil {
		return nil, err
	}

	return append(toaster, publisher), nil
}

// sourceID returns the source selected with --source or the first registered source
func sourceID() (string, error) {
	if flagSource != "" {
		return flagSource, nil
	}

	infos := sources.GetSourcesInfo()
	if len(infos) == 0 {
		return "", errordefs.ErrSourceNotFound
	}

	return infos[0].ID, nil
}
