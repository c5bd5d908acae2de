package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variables read by the CLI, optionally from a .env file.
const (
	envSaveKey = "HOOPSIM_SAVE_KEY" // passphrase sealing save files and slots
	envDB      = "HOOPSIM_DB"       // default save database for --db
)

// loadEnv reads .env from the working directory when present. Variables
// already set in the environment win.
func loadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("ignoring .env: %v", err)
	}
	if dbPath == "" {
		dbPath = os.Getenv(envDB)
	}
}
