package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/videobase/backend/internal/models"
)

func TestInMemoryUserRepositoryConflict(t *testing.T) {
	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	user := models.User{ID: "u1", Name: "A", Email: "a@x.com", PasswordHash: "hash"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := models.User{ID: "u2", Name: "B", Email: "a@x.com", PasswordHash: "other"}
	if err := repo.Create(ctx, dup); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	fetched, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if fetched.ID != "u1" {
		t.Fatalf("duplicate create must not replace the original, got %+v", fetched)
	}
}

func TestInMemoryUserRepositoryConcurrentCreate(t *testing.T) {
	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			results <- repo.Create(ctx, models.User{
				ID:    string(rune('a' + id)),
				Email: "race@x.com",
			})
		}(i)
	}
	wg.Wait()
	close(results)

	var created, conflicts int
	for err := range results {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if created != 1 {
		t.Fatalf("expected exactly one successful create, got %d", created)
	}
	if conflicts != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflicts)
	}
}

func TestInMemoryUserRepositoryNotFound(t *testing.T) {
	repo := NewInMemoryUserRepository()
	if _, err := repo.FindByEmail(context.Background(), "nobody@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInMemoryVideoRepositoryListActive(t *testing.T) {
	repo := NewInMemoryVideoRepository([]models.Video{
		{ID: "v1", Title: "one", YouTubeID: "yt1", IsActive: true},
		{ID: "v2", Title: "two", YouTubeID: "yt2", IsActive: true},
		{ID: "v3", Title: "three", YouTubeID: "yt3", IsActive: true},
		{ID: "v4", Title: "four", YouTubeID: "yt4", IsActive: false},
	})
	ctx := context.Background()

	videos, err := repo.ListActive(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("expected the limit to cap results at 2, got %d", len(videos))
	}
	if videos[0].ID != "v1" || videos[1].ID != "v2" {
		t.Fatalf("expected seed order, got %+v", videos)
	}

	repo.SetActive("v1", false)
	videos, err = repo.ListActive(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, v := range videos {
		if !v.IsActive {
			t.Fatalf("inactive video %s leaked into listing", v.ID)
		}
	}
}

func TestInMemoryVideoRepositoryFindByID(t *testing.T) {
	repo := NewInMemoryVideoRepository(DefaultCatalog())
	ctx := context.Background()

	video, err := repo.FindByID(ctx, "v1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if video.YouTubeID != "7EmboKQH8lM" {
		t.Fatalf("unexpected media id: %q", video.YouTubeID)
	}

	if _, err := repo.FindByID(ctx, "v999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
