package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
)

const EnvFileKey = "OCTOFORK_ENV_FILE"

// LoadDotEnv loads environment variables from .env files. Variables already
// exported are not overridden. Files listed in OCTOFORK_ENV_FILE (comma
// separated) must exist; otherwise ./.env is loaded if present.
func LoadDotEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvFileKey)); v != "" {
		var files []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				files = append(files, p)
			}
		}
		if err := godotenv.Load(files...); err != nil {
			return goerr.Wrap(err, "failed to load env file", goerr.V("files", files))
		}
		return nil
	}

	if _, err := os.Stat(".env"); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to check .env")
	}
	if err := godotenv.Load(".env"); err != nil {
		return goerr.Wrap(err, "failed to load .env")
	}
	return nil
}
