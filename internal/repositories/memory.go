package repositories

import (
	"context"
	"sync"

	"github.com/videobase/backend/internal/models"
)

// NewInMemoryUserRepository returns a UserRepository backed by an in-memory map.
// It is the default store when no database URL is configured.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]models.User)}
}

// InMemoryUserRepository implements UserRepository for tests and local development.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// Create stores a new user, rejecting duplicate emails. The check and the
// insert happen under one lock so concurrent signups cannot both succeed.
func (r *InMemoryUserRepository) Create(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return ErrConflict
	}
	r.users[user.Email] = user
	return nil
}

// FindByEmail retrieves a user by email.
func (r *InMemoryUserRepository) FindByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	user, ok := r.users[email]
	r.mu.RUnlock()
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

// Delete removes a user by email. Useful for tests.
func (r *InMemoryUserRepository) Delete(email string) {
	r.mu.Lock()
	delete(r.users, email)
	r.mu.Unlock()
}

// NewInMemoryVideoRepository returns a VideoRepository holding the provided
// catalog. The catalog is immutable after construction.
func NewInMemoryVideoRepository(catalog []models.Video) *InMemoryVideoRepository {
	videos := make(map[string]models.Video, len(catalog))
	order := make([]string, 0, len(catalog))
	for _, v := range catalog {
		videos[v.ID] = v
		order = append(order, v.ID)
	}
	return &InMemoryVideoRepository{videos: videos, order: order}
}

// InMemoryVideoRepository implements VideoRepository over a fixed catalog.
type InMemoryVideoRepository struct {
	mu     sync.RWMutex
	videos map[string]models.Video
	order  []string
}

// FindByID retrieves a catalog entry, active or not.
func (r *InMemoryVideoRepository) FindByID(_ context.Context, id string) (models.Video, error) {
	r.mu.RLock()
	video, ok := r.videos[id]
	r.mu.RUnlock()
	if !ok {
		return models.Video{}, ErrNotFound
	}
	return video, nil
}

// ListActive returns up to limit active entries in seed order.
func (r *InMemoryVideoRepository) ListActive(_ context.Context, limit int) ([]models.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var videos []models.Video
	for _, id := range r.order {
		if len(videos) >= limit {
			break
		}
		if v := r.videos[id]; v.IsActive {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

// SetActive flips a video's visibility. Useful for tests.
func (r *InMemoryVideoRepository) SetActive(id string, active bool) {
	r.mu.Lock()
	if v, ok := r.videos[id]; ok {
		v.IsActive = active
		r.videos[id] = v
	}
	r.mu.Unlock()
}

var _ UserRepository = (*InMemoryUserRepository)(nil)
var _ VideoRepository = (*InMemoryVideoRepository)(nil)
