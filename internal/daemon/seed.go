package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/auth"
	"github.com/nosytlabs/nosytlabs-site/internal/config"
)

// seed creates the configured admin account if the user table is empty.
func seed(cfg *config.Config, db *gorm.DB) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		log.Warn().Msg("no admin account configured, admin panel login is disabled until one exists")
		return nil
	}

	created, err := auth.NewLocalProvider(db).EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		return errors.Wrap(err, "failed to seed admin account")
	}

	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("created admin account")
	}

	return nil
}
