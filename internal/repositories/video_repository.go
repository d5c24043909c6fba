package repositories

import (
	"context"

	"github.com/videobase/backend/internal/models"
)

// VideoRepository exposes read access to the video catalog.
type VideoRepository interface {
	FindByID(ctx context.Context, id string) (models.Video, error)
	ListActive(ctx context.Context, limit int) ([]models.Video, error)
}
