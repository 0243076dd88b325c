// Package main implements the database migration script.
// It creates the tables and, if MIGRATE_PREFERENCES_FROM is set to "sqlite" or "redis",
// copies the preferences of that store into the database.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/diogovalentte/tukangkomik/src/config"
	"github.com/diogovalentte/tukangkomik/src/db"
	"github.com/diogovalentte/tukangkomik/src/preferences"
	"github.com/diogovalentte/tukangkomik/src/util"
)

func init() {
	// the variables can also be set in the environment
	_ = godotenv.Load()

	if err := config.SetConfigs(""); err != nil {
		panic(err)
	}
}

func main() {
	log := util.GetLogger(zerolog.InfoLevel)

	conn, err := db.OpenConn()
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	err = db.CreateTables(conn, log)
	if err != nil {
		panic(err)
	}
	version, err := db.GetVersionFromDB(conn)
	if err != nil {
		panic(err)
	}
	log.Info().Msgf("Database schema version: %s", version)

	from := os.Getenv("MIGRATE_PREFERENCES_FROM")
	if from == "" {
		return
	}

	configs := *config.GlobalConfigs.Preferences
	configs.Backend = from
	fromStore, err := preferences.Open(&configs)
	if err != nil {
		panic(err)
	}
	defer fromStore.Close()

	log.Info().Msgf("Copying preferences from the '%s' store...", from)
	copied, err := preferences.Copy(context.Background(), fromStore, preferences.NewPostgresStoreFromDB(conn))
	if err != nil {
		panic(err)
	}
	log.Info().Msgf("%d preferences copied", copied)
}
