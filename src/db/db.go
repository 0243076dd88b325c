// Package db implements the database connection
package db

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq" // postgres driver
	"github.com/rs/zerolog"

	"github.com/diogovalentte/tukangkomik/src/util"
)

type dbConfigs struct {
	Host     string
	Port     string
	DB       string
	User     string
	Password string
}

func getConnString() string {
	configs := &dbConfigs{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		DB:       os.Getenv("POSTGRES_DB"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", configs.Host, configs.Port, configs.User, configs.Password, configs.DB)
}

// OpenConn opens a connection to the database
func OpenConn() (*sql.DB, error) {
	db, err := sql.Open("postgres", getConnString())
	if err != nil {
		return nil, util.AddErrorContext("error opening database connection", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, util.AddErrorContext(fmt.Sprintf("error pinging database %s:%s", os.Getenv("POSTGRES_HOST"), os.Getenv("POSTGRES_PORT")), err)
	}

	return db, nil
}

// CreateTables creates the tables in the database
func CreateTables(db *sql.DB, log *zerolog.Logger) error {
	log.Info().Msg("Creating tables if not exists...")
	tx, err := db.Begin()
	if err != nil {
		return util.AddErrorContext("error starting transaction to create database", err)
	}

	_, err = tx.Exec(`
        CREATE TABLE IF NOT EXISTS "preferences" (
          "key" text NOT NULL PRIMARY KEY,
          "value" text NOT NULL,
          "updated_at" timestamp NOT NULL DEFAULT now()
        );

		CREATE TABLE IF NOT EXISTS "version" (
			"version" VARCHAR(15) NOT NULL DEFAULT '1.0.0'
		);

		INSERT INTO version (version)
		SELECT '1.0.0'
		WHERE NOT EXISTS (SELECT 1 FROM version);
    `)
	if err != nil {
		tx.Rollback()
		return util.AddErrorContext("error creating tables in the database", err)
	}

	err = tx.Commit()
	if err != nil {
		return util.AddErrorContext("error committing transaction to create tables in the database", err)
	}

	log.Info().Msg("Database tables created")

	return nil
}

// GetVersionFromDB returns the schema version stored in the database
func GetVersionFromDB(db *sql.DB) (string, error) {
	const query = `SELECT version FROM version`
	var version string
	err := db.QueryRow(query).Scan(&version)
	if err != nil {
		return "", err
	}

	return version, nil
}
