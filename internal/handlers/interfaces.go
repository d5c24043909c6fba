package handlers

import (
	"context"

	"github.com/videobase/backend/internal/models"
)

// UserStore captures the persistence operations required by the auth handlers.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// VideoStore captures catalog access required by the video handlers.
type VideoStore interface {
	FindByID(ctx context.Context, id string) (models.Video, error)
	ListActive(ctx context.Context, limit int) ([]models.Video, error)
}

// TokenService mints and verifies the bearer credentials used by the API.
type TokenService interface {
	IssueSession(subject string) (string, error)
	IssuePlayback(subject, videoID string) (string, error)
	VerifySession(token string) (string, error)
	VerifyPlayback(token, videoID string) (string, error)
}
