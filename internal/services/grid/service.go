package grid

import (
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/dependencies/random"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/model"
)

// Service provides grid construction and row-spawn mechanics
type Service struct {
	random random.Random
}

// New creates a new grid Service
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// NewGame builds a fresh grid with the bottom InitialRows rows populated.
// Structure is deterministic; block values are random.
func (s *Service) NewGame() *model.Grid {
	g := model.NewGrid()
	for row := model.GridHeight - model.InitialRows; row < model.GridHeight; row++ {
		for col := 0; col < model.GridWidth; col++ {
			g.AddBlock(s.randomValue(), row, col)
		}
	}
	return g
}

// AddBottomRow shifts every block one row toward the top and inserts a
// fresh row at the bottom. Callers must check Grid.IsOverflowing first.
func (s *Service) AddBottomRow(g *model.Grid) {
	g.ShiftUp()
	for col := 0; col < model.GridWidth; col++ {
		g.AddBlock(s.randomValue(), model.GridHeight-1, col)
	}
}

func (s *Service) randomValue() int {
	return s.random.IntRange(model.BlockValueMin, model.BlockValueMax)
}

// Interface for dependency injection
type ServiceInterface interface {
	NewGame() *model.Grid
	AddBottomRow(g *model.Grid)
}

var _ ServiceInterface = (*Service)(nil)
