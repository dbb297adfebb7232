package model

// BlockID uniquely identifies a block for its whole lifetime
type BlockID int64

// Position identifies a cell on the grid
type Position struct {
	Row int `json:"row"` // 0-indexed from the top (row 0 is the loss boundary)
	Col int `json:"col"` // 0-indexed from the left
}

// Block is a single numbered unit occupying one grid cell
type Block struct {
	ID    BlockID `json:"id"`
	Value int     `json:"value"` // In [BlockValueMin, BlockValueMax]
	Row   int     `json:"row"`
	Col   int     `json:"col"`
}

// Pos returns the block's current position
func (b *Block) Pos() Position {
	return Position{Row: b.Row, Col: b.Col}
}
