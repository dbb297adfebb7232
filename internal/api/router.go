package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/api/handler"
	apimiddleware "github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/api/middleware"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/middleware"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/game"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/highscore"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/storage"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	GameController   *game.Controller
	HighScoreService *highscore.Service
	Storage          storage.Storage
	HubManager       *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.HubManager)
	scoreHandler := handler.NewScoreHandler(cfg.HighScoreService, cfg.Storage)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Close).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/start", gameHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/select", gameHandler.Select).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/restart", gameHandler.Restart).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/home", gameHandler.Home).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/tutorial/open", gameHandler.TutorialOpen).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/tutorial/close", gameHandler.TutorialClose).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/events", gameHandler.Events).Methods(http.MethodGet)

	// Score routes
	api.HandleFunc("/highscore", scoreHandler.GetHighScore).Methods(http.MethodGet)
	api.HandleFunc("/records", scoreHandler.ListRecords).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
