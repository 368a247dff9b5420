package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klwxsrx/ticketgate/internal/session/app/session"
	"github.com/klwxsrx/ticketgate/pkg/env"
)

const defaultSessionFileName = "ticketgate/session.json"

type Config struct {
	StorageFile     string
	RefreshInterval time.Duration
	ValidityTTL     time.Duration
}

func ParseConfig() (Config, error) {
	storageFile, err := env.ParseOptional[string]("SESSION_FILE")
	if err != nil {
		return Config{}, err
	}
	if storageFile == nil {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve default SESSION_FILE: %w", err)
		}
		path := filepath.Join(configDir, defaultSessionFileName)
		storageFile = &path
	}

	refreshInterval, err := env.ParseWithDefault("SESSION_REFRESH_INTERVAL", session.DefaultRefreshInterval)
	if err != nil {
		return Config{}, err
	}
	validityTTL, err := env.ParseWithDefault("SESSION_VALIDITY_TTL", session.DefaultValidityTTL)
	if err != nil {
		return Config{}, err
	}

	return Config{
		StorageFile:     *storageFile,
		RefreshInterval: refreshInterval,
		ValidityTTL:     validityTTL,
	}, nil
}
