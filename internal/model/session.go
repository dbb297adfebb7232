package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// Status represents the current phase of a session
type Status string

const (
	StatusIdle     Status = "idle"     // Pre-game / menu
	StatusPlaying  Status = "playing"  // Round in progress
	StatusGameOver Status = "gameover" // Round lost, score frozen
	StatusTutorial Status = "tutorial" // Informational, grid untouched
)

// Mode selects the row-spawn pacing for a session
type Mode string

const (
	// ModeClassic adds a row after every successful match
	ModeClassic Mode = "classic"
	// ModeTime adds a row every TimeModeLimit seconds; matches reset the countdown
	ModeTime Mode = "time"
)

// ValidMode reports whether m names a known game mode
func ValidMode(m Mode) bool {
	return m == ModeClassic || m == ModeTime
}

// Session is the top-level state of one game
type Session struct {
	ID     GameID
	Status Status
	Mode   Mode

	Score     int
	HighScore int
	Target    int // The oracle number the selection must sum to
	TimeLeft  int // Seconds until the next forced row, time mode only

	StartedAt time.Time // When the current round began
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GameRecord is a lightweight record of a finished round
type GameRecord struct {
	GameID   GameID        `json:"game_id"`
	Mode     Mode          `json:"mode"`
	Score    int           `json:"score"`
	Duration time.Duration `json:"duration"`
	EndedAt  time.Time     `json:"ended_at"`
}
