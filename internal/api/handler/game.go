package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/api/request"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/api/response"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/model"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/game"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/web/sse"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	controller *game.Controller
	hubManager *sse.HubManager
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *game.Controller, hubManager *sse.HubManager) *GameHandler {
	return &GameHandler{
		controller: controller,
		hubManager: hubManager,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.CreateGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameStateFromService(state))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	state, err := h.controller.GetState(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromService(state))
}

// Start handles POST /api/v1/games/{id}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.StartGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	state, err := h.controller.StartGame(r.Context(), id, model.Mode(req.Mode))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromService(state))
}

// Select handles POST /api/v1/games/{id}/select
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.SelectBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	state, err := h.controller.SelectBlock(r.Context(), id, model.BlockID(req.BlockID))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromService(state))
}

// Restart handles POST /api/v1/games/{id}/restart
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	state, err := h.controller.RestartGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromService(state))
}

// Home handles POST /api/v1/games/{id}/home
func (h *GameHandler) Home(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	state, err := h.controller.GoHome(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromService(state))
}

// TutorialOpen handles POST /api/v1/games/{id}/tutorial/open
func (h *GameHandler) TutorialOpen(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	state, err := h.controller.OpenTutorial(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromService(state))
}

// TutorialClose handles POST /api/v1/games/{id}/tutorial/close
func (h *GameHandler) TutorialClose(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	state, err := h.controller.CloseTutorial(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromService(state))
}

// Close handles DELETE /api/v1/games/{id}
func (h *GameHandler) Close(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.controller.CloseGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	if h.hubManager != nil {
		h.hubManager.RemoveHub(id)
	}
	response.NoContent(w)
}

// Events handles GET /api/v1/games/{id}/events (SSE stream)
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	// Only stream events for games that exist
	if _, err := h.controller.GetState(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub)
}
