package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "towersums"

// highScoreKey returns the Redis key for the persisted high score.
// A single fixed key: the game tracks one high score across all sessions.
func highScoreKey() string {
	return fmt.Sprintf("%s:highscore", keyPrefix)
}

// gameRecordsKey returns the Redis key for the list of finished-round records
func gameRecordsKey() string {
	return fmt.Sprintf("%s:records", keyPrefix)
}
