package repositories

import "github.com/videobase/backend/internal/models"

// DefaultCatalog returns the videos the service launches with. The in-memory
// store loads it directly; the seed command inserts it into PostgreSQL.
func DefaultCatalog() []models.Video {
	return []models.Video{
		{
			ID:           "v1",
			Title:        "Clean Code - Uncle Bob / Lesson 1",
			Description:  "Uncle Bob (Robert C. Martin) explains clean code principles, ethics in software, and why good code matters for society.",
			YouTubeID:    "7EmboKQH8lM",
			FullURL:      "https://www.youtube.com/watch?v=7EmboKQH8lM",
			ThumbnailURL: "https://img.youtube.com/vi/7EmboKQH8lM/maxresdefault.jpg",
			IsActive:     true,
		},
		{
			ID:           "v2",
			Title:        "Artificial Intelligence in 2025 | 60 Minutes Full Episodes",
			Description:  "Deep discussion on AI's job impact, unemployment risks, and tech evolution in the coming years.",
			YouTubeID:    "KpOcUrPdx-4",
			FullURL:      "https://www.youtube.com/watch?v=KpOcUrPdx-4",
			ThumbnailURL: "https://img.youtube.com/vi/KpOcUrPdx-4/maxresdefault.jpg",
			IsActive:     true,
		},
	}
}
