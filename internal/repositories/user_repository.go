package repositories

import (
	"context"

	"github.com/videobase/backend/internal/models"
)

// UserRepository defines the data access contract for user accounts.
// Create must enforce email uniqueness atomically; callers never pre-check.
type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
}
