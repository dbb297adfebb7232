package response

import (
	"time"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/model"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/game"
)

// Block represents a block in API responses
type Block struct {
	ID    int64 `json:"id"`
	Value int   `json:"value"`
	Row   int   `json:"row"`
	Col   int   `json:"col"`
}

// GameState is the full observable state of a game
type GameState struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Mode   string `json:"mode,omitempty"`

	Score     int `json:"score"`
	HighScore int `json:"high_score"`
	Target    int `json:"target"`
	TimeLeft  int `json:"time_left,omitempty"`

	Blocks       []Block `json:"blocks"`
	Selection    []int64 `json:"selection"`
	SelectionSum int     `json:"selection_sum"`
}

// GameStateFromService converts a controller snapshot
func GameStateFromService(s game.State) GameState {
	blocks := make([]Block, len(s.Blocks))
	for i, b := range s.Blocks {
		blocks[i] = Block{
			ID:    int64(b.ID),
			Value: b.Value,
			Row:   b.Row,
			Col:   b.Col,
		}
	}
	selection := make([]int64, len(s.Selection))
	for i, id := range s.Selection {
		selection[i] = int64(id)
	}
	return GameState{
		ID:           string(s.ID),
		Status:       string(s.Status),
		Mode:         string(s.Mode),
		Score:        s.Score,
		HighScore:    s.HighScore,
		Target:       s.Target,
		TimeLeft:     s.TimeLeft,
		Blocks:       blocks,
		Selection:    selection,
		SelectionSum: s.SelectionSum,
	}
}

// HighScore is the response for the high score endpoint
type HighScore struct {
	HighScore int `json:"high_score"`
}

// GameRecord represents a finished round in API responses
type GameRecord struct {
	GameID          string    `json:"game_id"`
	Mode            string    `json:"mode"`
	Score           int       `json:"score"`
	DurationSeconds int       `json:"duration_seconds"`
	EndedAt         time.Time `json:"ended_at"`
}

// GameRecordFromModel converts a model.GameRecord
func GameRecordFromModel(r *model.GameRecord) GameRecord {
	return GameRecord{
		GameID:          string(r.GameID),
		Mode:            string(r.Mode),
		Score:           r.Score,
		DurationSeconds: int(r.Duration.Seconds()),
		EndedAt:         r.EndedAt,
	}
}

// GameRecordList wraps a list of game records
type GameRecordList struct {
	Records []GameRecord `json:"records"`
}
