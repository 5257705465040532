package utils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DEV_ENV_FILENAME = ".env"

// InitEnvironmentVariables loads threshold and output overrides from a .env
// file when one exists. Production deployments inject real environment
// variables instead, so a missing file is not an error.
func InitEnvironmentVariables(envFile string) error {
	if os.Getenv("ENV") == "production" {
		log.Info("Running in production environment")
		return nil
	}

	if envFile == "" {
		envFile = DEV_ENV_FILENAME
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		log.Debugf("no %s file found, using process environment", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load %s file: %v", envFile, err)
	}

	return nil
}
