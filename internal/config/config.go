package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ryo246912/gdvm/internal/logger"
)

const (
	// Owner and Repo identify the repository whose releases are listed.
	Owner = "godotengine"
	Repo  = "godot-builds"

	Host      = "github.com"
	UserAgent = "gdvm"

	// PerPage is both the requested page size and the pagination cutoff:
	// a page shorter than this ends the listing.
	PerPage = 100

	// MaxVersionsPerMajor caps how many versions are printed per major line.
	MaxVersionsPerMajor = 3

	ArchiveURL = "https://godotengine.org/download/archive/"

	TokenEnv = "GITHUB_TOKEN"
	DebugEnv = "GDVM_DEBUG"
	EnvFile  = ".env"
)

// Config holds the values read from the environment at startup
type Config struct {
	Token string
	Debug bool
}

// ConfigError reports a required setting that is missing
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s must be set in the environment or in a %s file", e.Key, EnvFile)
}

// Load seeds the environment from envFile when it exists and reads the
// settings. Variables already present in the environment are not overridden.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Log.Warn("ignoring unreadable env file", "path", envFile, "err", err)
	}

	token := os.Getenv(TokenEnv)
	if token == "" {
		return nil, &ConfigError{Key: TokenEnv}
	}

	debug, _ := strconv.ParseBool(os.Getenv(DebugEnv))

	return &Config{
		Token: token,
		Debug: debug,
	}, nil
}
