package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/videobase/backend/internal/models"
)

// Pool abstracts the pgx connection pool to make testing easier.
type Pool interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Close()
}

// Connect initialises a PostgreSQL connection pool using the provided database URL.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	return pool, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        email TEXT NOT NULL,
        password_hash TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL
    )`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,
	`CREATE TABLE IF NOT EXISTS videos (
        id TEXT PRIMARY KEY,
        title TEXT NOT NULL,
        description TEXT NOT NULL DEFAULT '',
        youtube_id TEXT NOT NULL,
        full_url TEXT NOT NULL DEFAULT '',
        thumbnail_url TEXT NOT NULL DEFAULT '',
        is_active BOOLEAN NOT NULL DEFAULT TRUE
    )`,
}

// Migrate applies the embedded schema. Statements are idempotent, so running
// it on every start is safe.
func Migrate(ctx context.Context, pool Pool) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	for _, stmt := range schema {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}

	return nil
}

// SeedVideos upserts the provided catalog entries.
func SeedVideos(ctx context.Context, pool Pool, videos []models.Video) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	for _, v := range videos {
		_, err := conn.Exec(ctx, `
            INSERT INTO videos (id, title, description, youtube_id, full_url, thumbnail_url, is_active)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            ON CONFLICT (id)
            DO UPDATE SET title = EXCLUDED.title,
                          description = EXCLUDED.description,
                          youtube_id = EXCLUDED.youtube_id,
                          full_url = EXCLUDED.full_url,
                          thumbnail_url = EXCLUDED.thumbnail_url,
                          is_active = EXCLUDED.is_active
        `, v.ID, v.Title, v.Description, v.YouTubeID, v.FullURL, v.ThumbnailURL, v.IsActive)
		if err != nil {
			return fmt.Errorf("upsert video %s: %w", v.ID, err)
		}
	}

	return nil
}
