package models

import "time"

// User represents an account within the VideoBase platform.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Video is a catalog entry. The actual media lives on YouTube; YouTubeID is
// the external identifier the embed player needs and must never appear in
// catalog listings.
type Video struct {
	ID           string
	Title        string
	Description  string
	YouTubeID    string
	FullURL      string
	ThumbnailURL string
	IsActive     bool
}
