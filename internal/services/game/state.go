package game

import (
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/model"
)

// EventSink receives presentation events emitted by the controller.
// Events are advisory; a nil sink is valid and discards everything.
type EventSink interface {
	Publish(event model.Event)
}

// State is a read-only snapshot of one game's observable state
type State struct {
	ID     model.GameID `json:"id"`
	Status model.Status `json:"status"`
	Mode   model.Mode   `json:"mode,omitempty"`

	Score     int `json:"score"`
	HighScore int `json:"high_score"`
	Target    int `json:"target"`
	TimeLeft  int `json:"time_left,omitempty"` // Time mode only

	Blocks       []model.Block   `json:"blocks"`
	Selection    []model.BlockID `json:"selection"`
	SelectionSum int             `json:"selection_sum"`
}

// snapshot builds a State from a live game. Caller must hold the game's lock.
func snapshot(g *liveGame) State {
	state := State{
		ID:        g.session.ID,
		Status:    g.session.Status,
		Mode:      g.session.Mode,
		Score:     g.session.Score,
		HighScore: g.session.HighScore,
		Target:    g.session.Target,
		TimeLeft:  g.session.TimeLeft,
		Blocks:    []model.Block{},
		Selection: []model.BlockID{},
	}
	if g.grid != nil {
		state.Blocks = g.grid.Snapshot()
	}
	if g.selection != nil {
		state.Selection = g.selection.IDs()
		if g.grid != nil {
			state.SelectionSum = g.selection.Sum(g.grid)
		}
	}
	return state
}
