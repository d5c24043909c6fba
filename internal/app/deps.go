package app

import (
	"github.com/videobase/backend/internal/config"
	"github.com/videobase/backend/internal/db"
	"github.com/videobase/backend/internal/handlers"
	"github.com/videobase/backend/internal/repositories"
	"github.com/videobase/backend/internal/tokens"
)

// buildDependencies wires together concrete implementations used by the HTTP
// handlers. A nil pool selects the seeded in-memory store, which is the
// default serving mode when no database URL is configured.
func buildDependencies(pool db.Pool, cfg config.Config) (handlers.Dependencies, error) {
	issuer, err := tokens.NewIssuer([]byte(cfg.TokenSecret), cfg.SessionTTL, cfg.PlaybackTTL)
	if err != nil {
		return handlers.Dependencies{}, err
	}

	deps := handlers.Dependencies{
		Tokens:         issuer,
		DashboardLimit: cfg.DashboardLimit,
	}

	if pool != nil {
		deps.Users = repositories.NewPostgresUserRepository(pool)
		deps.Videos = repositories.NewPostgresVideoRepository(pool)
	} else {
		deps.Users = repositories.NewInMemoryUserRepository()
		deps.Videos = repositories.NewInMemoryVideoRepository(repositories.DefaultCatalog())
	}

	return deps, nil
}
