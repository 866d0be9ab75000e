// Package factory constructs infrastructure adapters from configuration.
package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gatherly/gatherly/internal/config"
	"github.com/gatherly/gatherly/internal/storage"
	"github.com/gatherly/gatherly/internal/storage/postgres"
	"github.com/gatherly/gatherly/internal/storage/sqlite"
)

// NewStore returns the storage adapter selected by cfg.DBDriver.
func NewStore(cfg *config.Config, log zerolog.Logger) (storage.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		log.Info().Str("path", cfg.SQLitePath).Msg("using sqlite storage")
		return sqlite.New(cfg.SQLitePath)
	case "postgres":
		log.Info().Msg("using postgres storage")
		return postgres.New(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}
