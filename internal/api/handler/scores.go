package handler

import (
	"net/http"
	"strconv"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/api/response"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/highscore"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/storage"
)

const defaultRecordLimit = 20

// ScoreHandler handles high score and game record endpoints
type ScoreHandler struct {
	highScores *highscore.Service
	storage    storage.Storage
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(highScores *highscore.Service, storage storage.Storage) *ScoreHandler {
	return &ScoreHandler{
		highScores: highScores,
		storage:    storage,
	}
}

// GetHighScore handles GET /api/v1/highscore
func (h *ScoreHandler) GetHighScore(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HighScore{
		HighScore: h.highScores.Current(),
	})
}

// ListRecords handles GET /api/v1/records
func (h *ScoreHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecordLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	records, err := h.storage.ListGameRecords(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := response.GameRecordList{Records: make([]response.GameRecord, 0, len(records))}
	for _, record := range records {
		out.Records = append(out.Records, response.GameRecordFromModel(record))
	}
	response.JSON(w, http.StatusOK, out)
}
