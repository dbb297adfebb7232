package model

// Grid dimensions and game tuning constants
const (
	GridWidth  = 6  // Columns
	GridHeight = 10 // Rows; row 0 is the top, row GridHeight-1 the spawn row

	InitialRows = 3 // Rows populated at game start

	BlockValueMin = 1
	BlockValueMax = 9

	TargetMin = 10
	TargetMax = 25

	// TimeModeLimit is the countdown length in seconds for time mode
	TimeModeLimit = 10
)

// Grid holds the set of active blocks for a game.
// No two blocks ever share the same (row, col).
type Grid struct {
	Blocks []*Block

	// nextID is a monotonic counter for block identities
	nextID BlockID
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	return &Grid{}
}

// AddBlock inserts a fresh block with a unique identity at the given cell
func (g *Grid) AddBlock(value, row, col int) *Block {
	g.nextID++
	block := &Block{
		ID:    g.nextID,
		Value: value,
		Row:   row,
		Col:   col,
	}
	g.Blocks = append(g.Blocks, block)
	return block
}

// BlockByID returns the block with the given identity, or nil if absent
func (g *Grid) BlockByID(id BlockID) *Block {
	for _, b := range g.Blocks {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// BlockAt returns the block occupying the given cell, or nil if empty
func (g *Grid) BlockAt(row, col int) *Block {
	for _, b := range g.Blocks {
		if b.Row == row && b.Col == col {
			return b
		}
	}
	return nil
}

// BlockCount returns the number of active blocks
func (g *Grid) BlockCount() int {
	return len(g.Blocks)
}

// RemoveBlocks removes every block whose identity is in ids.
// Identities not present in the grid are ignored.
func (g *Grid) RemoveBlocks(ids []BlockID) {
	if len(ids) == 0 {
		return
	}
	remove := make(map[BlockID]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}
	kept := g.Blocks[:0]
	for _, b := range g.Blocks {
		if !remove[b.ID] {
			kept = append(kept, b)
		}
	}
	g.Blocks = kept
}

// ShiftUp moves every block one row toward the top.
// Callers must check IsOverflowing first; a block at row 0 would leave the grid.
func (g *Grid) ShiftUp() {
	for _, b := range g.Blocks {
		b.Row--
	}
}

// IsOverflowing returns true if any block occupies the topmost row,
// meaning the next shift would push it off the grid.
func (g *Grid) IsOverflowing() bool {
	for _, b := range g.Blocks {
		if b.Row == 0 {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of all blocks, safe to hand to callers
func (g *Grid) Snapshot() []Block {
	out := make([]Block, len(g.Blocks))
	for i, b := range g.Blocks {
		out[i] = *b
	}
	return out
}
