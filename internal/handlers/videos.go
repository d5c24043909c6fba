package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/videobase/backend/internal/logging"
	"github.com/videobase/backend/internal/middleware"
	"github.com/videobase/backend/internal/repositories"
	"github.com/videobase/backend/internal/tokens"
)

// DefaultDashboardLimit caps how many catalog entries the dashboard returns.
const DefaultDashboardLimit = 2

// VideoHandler provides the catalog listing and the two-step playback flow:
// a session holder trades its token for a playback token bound to one video,
// and the play endpoint accepts only that token for that video.
type VideoHandler struct {
	Videos         VideoStore
	Tokens         TokenService
	DashboardLimit int
}

// Dashboard handles GET /dashboard requests. The response never carries the
// external media id; that is only reachable through the playback exchange.
func (h VideoHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	limit := h.DashboardLimit
	if limit <= 0 {
		limit = DefaultDashboardLimit
	}

	videos, err := h.Videos.ListActive(ctx, limit)
	if err != nil {
		logging.FromContext(ctx).Error("dashboard listing failed", "error", err)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to load videos"})
		return
	}

	summaries := make([]videoSummary, 0, len(videos))
	for _, v := range videos {
		summaries = append(summaries, videoSummary{
			ID:           v.ID,
			Title:        v.Title,
			Description:  v.Description,
			FullURL:      v.FullURL,
			ThumbnailURL: v.ThumbnailURL,
			IsActive:     v.IsActive,
		})
	}

	respondJSON(ctx, w, http.StatusOK, summaries)
}

// Stream handles GET /video/{id}/stream requests, minting a playback token
// bound to the requested video for the authenticated session subject.
func (h VideoHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)
	videoID := r.PathValue("id")

	video, err := h.Videos.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondJSON(ctx, w, http.StatusNotFound, map[string]string{"error": "video not found"})
			return
		}
		logger.Error("stream video lookup failed", "error", err, "videoId", videoID)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to load video"})
		return
	}

	// Deactivated videos are hidden from listing, so they do not get playback
	// grants either.
	if !video.IsActive {
		respondJSON(ctx, w, http.StatusNotFound, map[string]string{"error": "video not found"})
		return
	}

	subject := middleware.SubjectFromContext(ctx)
	token, err := h.Tokens.IssuePlayback(subject, video.ID)
	if err != nil {
		logger.Error("stream failed to issue playback token", "error", err, "videoId", videoID)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to issue playback token"})
		return
	}

	respondJSON(ctx, w, http.StatusOK, streamResponse{VideoID: video.ID, PlaybackToken: token})
}

// Play handles GET /video/{id}/play requests. The endpoint is loaded by an
// embedded viewer, so the playback token arrives as a query parameter rather
// than a header, and errors are plain text. Verifier failures are logged but
// never echoed to the caller.
func (h VideoHandler) Play(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx, span := logging.StartSpan(r.Context(), "playback.render")
	defer span.End()

	logger := logging.FromContext(ctx)
	videoID := r.PathValue("id")

	token := r.URL.Query().Get("token")
	if token == "" {
		logger.Warn("playback request without token", "videoId", videoID)
		http.Error(w, "missing playback token", http.StatusUnauthorized)
		return
	}

	if _, err := h.Tokens.VerifyPlayback(token, videoID); err != nil {
		if errors.Is(err, tokens.ErrScopeMismatch) {
			logger.Warn("playback token bound to different scope", "videoId", videoID)
			http.Error(w, "invalid playback token", http.StatusForbidden)
			return
		}
		logger.Warn("playback token rejected", "videoId", videoID, "error", err)
		http.Error(w, "authentication failed", http.StatusUnauthorized)
		return
	}

	video, err := h.Videos.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.Error(w, "video not found", http.StatusNotFound)
			return
		}
		logger.Error("playback video lookup failed", "error", err, "videoId", videoID)
		http.Error(w, "failed to load video", http.StatusInternalServerError)
		return
	}

	if !video.IsActive {
		http.Error(w, "video not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := embedPage.Execute(w, embedData{YouTubeID: video.YouTubeID}); err != nil {
		logger.Error("render embed page", "error", err, "videoId", videoID)
	}
}

type videoSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	FullURL      string `json:"full_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsActive     bool   `json:"is_active"`
}

type streamResponse struct {
	VideoID       string `json:"video_id"`
	PlaybackToken string `json:"playback_token"`
}

type embedData struct {
	YouTubeID string
}

// embedPage fills the viewer's viewport with an autoplaying embed. Keeping
// the player markup server-side means clients never handle the media id.
var embedPage = template.Must(template.New("embed").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body, html { margin: 0; padding: 0; height: 100%; overflow: hidden; background: #000; }
        iframe { position: absolute; top: 0; left: 0; width: 100%; height: 100%; border: 0; }
    </style>
</head>
<body>
    <iframe
        src="https://www.youtube.com/embed/{{.YouTubeID}}?autoplay=1&modestbranding=1&rel=0"
        allow="autoplay; encrypted-media"
        allowfullscreen>
    </iframe>
</body>
</html>
`))
