package request

// StartGameRequest is the request body for starting a round
type StartGameRequest struct {
	Mode string `json:"mode"`
}

// SelectBlockRequest is the request body for toggling a block
type SelectBlockRequest struct {
	BlockID int64 `json:"block_id"`
}
