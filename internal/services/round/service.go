package round

import (
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/dependencies/random"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/model"
)

// ScorePerBlock is the points awarded per cleared block
const ScorePerBlock = 10

// Outcome classifies the result of evaluating the selection against the target
type Outcome string

const (
	// OutcomeContinue means the sum is still below the target
	OutcomeContinue Outcome = "continue"
	// OutcomeOvershoot means the sum exceeded the target; selection resets
	OutcomeOvershoot Outcome = "overshoot"
	// OutcomeMatch means the sum hit the target exactly
	OutcomeMatch Outcome = "match"
)

// Result describes the full effect of one resolution pass
type Result struct {
	Outcome Outcome
	Sum     int

	// Match-only fields
	Cleared   []model.Position // Positions the cleared blocks occupied
	Awarded   int              // Points awarded
	NewTarget int              // Target generated after the match
}

// Service evaluates the selection after every mutation and applies
// match / overshoot effects to the grid, selection, and session.
type Service struct {
	random random.Random
}

// New creates a new round Service
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// NewTarget generates a fresh oracle number.
// Feasibility against the current grid is deliberately not checked.
func (s *Service) NewTarget() int {
	return s.random.IntRange(model.TargetMin, model.TargetMax)
}

// Resolve runs the match algorithm once. An empty selection sums to 0,
// which is always below the minimum target, so it never resolves.
func (s *Service) Resolve(session *model.Session, grid *model.Grid, selection *model.Selection) Result {
	sum := selection.Sum(grid)

	switch {
	case sum > session.Target:
		selection.Clear()
		return Result{Outcome: OutcomeOvershoot, Sum: sum}

	case sum < session.Target:
		return Result{Outcome: OutcomeContinue, Sum: sum}
	}

	// Match: clear the blocks, award points, roll a new target
	ids := selection.IDs()
	cleared := make([]model.Position, 0, len(ids))
	for _, id := range ids {
		if b := grid.BlockByID(id); b != nil {
			cleared = append(cleared, b.Pos())
		}
	}

	awarded := len(ids) * ScorePerBlock
	grid.RemoveBlocks(ids)
	selection.Clear()
	session.Score += awarded
	session.Target = s.NewTarget()

	return Result{
		Outcome:   OutcomeMatch,
		Sum:       sum,
		Cleared:   cleared,
		Awarded:   awarded,
		NewTarget: session.Target,
	}
}
