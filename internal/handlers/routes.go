package handlers

import (
	"net/http"

	"github.com/videobase/backend/internal/middleware"
)

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Users          UserStore
	Videos         VideoStore
	Tokens         TokenService
	DashboardLimit int
}

// RegisterRoutes wires HTTP handlers into the provided ServeMux. The play
// endpoint stays outside the session guard: it authenticates with a playback
// token of its own.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	index := IndexHandler{}
	health := HealthHandler{}
	auth := AuthHandler{Users: deps.Users, Tokens: deps.Tokens}
	videos := VideoHandler{Videos: deps.Videos, Tokens: deps.Tokens, DashboardLimit: deps.DashboardLimit}

	requireSession := middleware.RequireSession(deps.Tokens)

	mux.HandleFunc("/{$}", index.Handle)
	mux.HandleFunc("/healthz", health.Handle)
	mux.HandleFunc("/auth/signup", auth.SignUp)
	mux.HandleFunc("/auth/login", auth.Login)
	mux.Handle("/auth/me", requireSession(http.HandlerFunc(auth.Me)))
	mux.Handle("/auth/logout", requireSession(http.HandlerFunc(auth.Logout)))
	mux.Handle("/dashboard", requireSession(http.HandlerFunc(videos.Dashboard)))
	mux.Handle("/video/{id}/stream", requireSession(http.HandlerFunc(videos.Stream)))
	mux.HandleFunc("/video/{id}/play", videos.Play)
}
