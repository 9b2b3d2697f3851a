package config

import (
	"sync"

	"github.com/joho/godotenv"

	"github.com/gauthamtours/travels-backend/logger"
)

var loadOnce sync.Once

// LoadEnv loads variables from a .env file if one is present. Safe to call
// from multiple init functions; the file is only read once.
func LoadEnv() {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			logger.InfoLogger.Info("No .env file found, using environment variables")
		}
	})
}
