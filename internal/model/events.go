package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// EventMatch fires when a selection clears; payload is MatchPayload
	EventMatch EventType = "match"
	// EventShake is a transient visual cue accompanying a match
	EventShake EventType = "shake"
	// EventRowSpawned fires after a row shift + spawn; payload is RowSpawnedPayload
	EventRowSpawned EventType = "row_spawned"
	// EventGameOver fires on overflow; payload is GameOverPayload
	EventGameOver EventType = "game_over"
	// EventStateChanged fires on every observable state change
	EventStateChanged EventType = "state_changed"
)

// Event is the base structure for all events.
// Events are advisory; ignoring them never affects game state.
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	Payload   any
}

// MatchPayload contains data for match events
type MatchPayload struct {
	Positions []Position `json:"positions"` // Cells the cleared blocks occupied
	Cleared   int        `json:"cleared"`   // Number of blocks cleared
	Awarded   int        `json:"awarded"`   // Points awarded for this match
	NewTarget int        `json:"new_target"`
}

// RowSpawnedPayload contains data for row spawned events
type RowSpawnedPayload struct {
	Forced bool `json:"forced"` // True when triggered by the countdown, not a match
}

// GameOverPayload contains data for game over events
type GameOverPayload struct {
	Score        int  `json:"score"`
	HighScore    int  `json:"high_score"`
	NewHighScore bool `json:"new_high_score"`
}
