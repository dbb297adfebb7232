package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/dependencies/clock"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/dependencies/random"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/model"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/grid"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/highscore"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/round"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/scheduler"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// liveGame holds the in-memory state of one session. Its mutex serializes
// every mutation, so commands and countdown ticks never overlap.
type liveGame struct {
	mu sync.Mutex

	session   *model.Session
	grid      *model.Grid
	selection *model.Selection

	// countdown is non-nil only while a time-mode round is in play
	countdown *scheduler.Countdown

	// newHigh is set when the current round beat the persisted high score
	newHigh bool
}

// Controller manages game sessions: the status machine, selection
// resolution, row spawning, and mode pacing.
type Controller struct {
	gridService *grid.Service
	resolver    *round.Service
	highScores  *highscore.Service
	storage     storage.Storage
	clock       clock.Clock
	random      random.Random
	sink        EventSink
	logger      *slog.Logger

	mu    sync.RWMutex
	games map[model.GameID]*liveGame
}

// NewController creates a new game Controller
func NewController(
	gridService *grid.Service,
	resolver *round.Service,
	highScores *highscore.Service,
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	sink EventSink,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		gridService: gridService,
		resolver:    resolver,
		highScores:  highScores,
		storage:     storage,
		clock:       clock,
		random:      random,
		sink:        sink,
		logger:      logger,
		games:       make(map[model.GameID]*liveGame),
	}
}

// CreateGame registers a new session in the idle state
func (c *Controller) CreateGame(ctx context.Context) (State, error) {
	now := c.clock.Now()
	id := model.GameID(c.random.String(12, gameIDAlphabet))

	g := &liveGame{
		session: &model.Session{
			ID:        id,
			Status:    model.StatusIdle,
			HighScore: c.highScores.Current(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	c.mu.Lock()
	c.games[id] = g
	c.mu.Unlock()

	c.logger.Info("game created", slog.String("game_id", string(id)))

	g.mu.Lock()
	defer g.mu.Unlock()
	return snapshot(g), nil
}

// GetState returns the current observable state of a session
func (c *Controller) GetState(ctx context.Context, id model.GameID) (State, error) {
	g, err := c.lookup(id)
	if err != nil {
		return State{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return snapshot(g), nil
}

// StartGame begins a round in the given mode. Valid from idle or
// gameover; in any other status the command is ignored.
func (c *Controller) StartGame(ctx context.Context, id model.GameID, mode model.Mode) (State, error) {
	if !model.ValidMode(mode) {
		return State{}, model.ErrInvalidMode
	}

	g, err := c.lookup(id)
	if err != nil {
		return State{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Status == model.StatusIdle || g.session.Status == model.StatusGameOver {
		c.beginRound(g, mode)
	}
	return snapshot(g), nil
}

// RestartGame begins a fresh round in the session's recorded mode.
// Valid only from gameover; ignored otherwise.
func (c *Controller) RestartGame(ctx context.Context, id model.GameID) (State, error) {
	g, err := c.lookup(id)
	if err != nil {
		return State{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Status == model.StatusGameOver {
		c.beginRound(g, g.session.Mode)
	}
	return snapshot(g), nil
}

// GoHome abandons the current round and returns the session to idle.
// The grid and selection are discarded; the high score is untouched.
func (c *Controller) GoHome(ctx context.Context, id model.GameID) (State, error) {
	g, err := c.lookup(id)
	if err != nil {
		return State{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Status != model.StatusIdle {
		c.stopCountdown(g)
		g.session.Status = model.StatusIdle
		g.session.Score = 0
		g.session.Target = 0
		g.session.TimeLeft = 0
		g.grid = nil
		g.selection = nil
		c.touch(g)
		c.publishState(g)
	}
	return snapshot(g), nil
}

// OpenTutorial shows the tutorial. Valid only from idle; no game state
// is touched either way.
func (c *Controller) OpenTutorial(ctx context.Context, id model.GameID) (State, error) {
	g, err := c.lookup(id)
	if err != nil {
		return State{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Status == model.StatusIdle {
		g.session.Status = model.StatusTutorial
		c.touch(g)
		c.publishState(g)
	}
	return snapshot(g), nil
}

// CloseTutorial returns from the tutorial to idle
func (c *Controller) CloseTutorial(ctx context.Context, id model.GameID) (State, error) {
	g, err := c.lookup(id)
	if err != nil {
		return State{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Status == model.StatusTutorial {
		g.session.Status = model.StatusIdle
		c.touch(g)
		c.publishState(g)
	}
	return snapshot(g), nil
}

// SelectBlock toggles a block in the selection and resolves the round.
// A no-op outside playing status or for identities absent from the grid.
func (c *Controller) SelectBlock(ctx context.Context, id model.GameID, blockID model.BlockID) (State, error) {
	g, err := c.lookup(id)
	if err != nil {
		return State{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Status != model.StatusPlaying {
		return snapshot(g), nil
	}
	if g.grid.BlockByID(blockID) == nil {
		return snapshot(g), nil
	}

	g.selection.Toggle(blockID)
	result := c.resolver.Resolve(g.session, g.grid, g.selection)
	c.touch(g)

	if result.Outcome == round.OutcomeMatch {
		c.onMatch(ctx, g, result)
	}

	c.publishState(g)
	return snapshot(g), nil
}

// CloseGame removes a session from the registry, stopping its countdown
func (c *Controller) CloseGame(ctx context.Context, id model.GameID) error {
	g, err := c.lookup(id)
	if err != nil {
		return err
	}

	g.mu.Lock()
	c.stopCountdown(g)
	g.mu.Unlock()

	c.mu.Lock()
	delete(c.games, id)
	c.mu.Unlock()

	c.logger.Info("game closed", slog.String("game_id", string(id)))
	return nil
}

// CleanupStale removes sessions that are not playing and have been
// untouched for longer than maxAge. Returns the number removed.
func (c *Controller) CleanupStale(maxAge time.Duration) int {
	cutoff := c.clock.Now().Add(-maxAge)

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for id, g := range c.games {
		g.mu.Lock()
		stale := g.session.Status != model.StatusPlaying && g.session.UpdatedAt.Before(cutoff)
		if stale {
			c.stopCountdown(g)
		}
		g.mu.Unlock()

		if stale {
			delete(c.games, id)
			removed++
		}
	}

	if removed > 0 {
		c.logger.Info("stale games cleaned up", slog.Int("removed", removed))
	}
	return removed
}

// lookup finds a live game by id
func (c *Controller) lookup(id model.GameID) (*liveGame, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return g, nil
}

// beginRound resets all round state and starts play. Caller holds g.mu.
func (c *Controller) beginRound(g *liveGame, mode model.Mode) {
	c.stopCountdown(g)

	now := c.clock.Now()
	g.session.Mode = mode
	g.session.Status = model.StatusPlaying
	g.session.Score = 0
	g.session.Target = c.resolver.NewTarget()
	g.session.HighScore = c.highScores.Current()
	g.session.StartedAt = now
	g.session.UpdatedAt = now
	g.grid = c.gridService.NewGame()
	g.selection = model.NewSelection()
	g.newHigh = false

	if mode == model.ModeTime {
		g.session.TimeLeft = model.TimeModeLimit
		c.startCountdown(g)
	} else {
		g.session.TimeLeft = 0
	}

	c.logger.Info("round started",
		slog.String("game_id", string(g.session.ID)),
		slog.String("mode", string(mode)),
		slog.Int("target", g.session.Target),
	)

	c.publishState(g)
}

// onMatch applies post-match effects: high score bookkeeping,
// presentation events, and the mode scheduler's success hook.
// Caller holds g.mu.
func (c *Controller) onMatch(ctx context.Context, g *liveGame, result round.Result) {
	if c.highScores.Record(ctx, g.session.Score) {
		g.newHigh = true
	}
	g.session.HighScore = c.highScores.Current()

	c.publish(g, model.EventMatch, model.MatchPayload{
		Positions: result.Cleared,
		Cleared:   len(result.Cleared),
		Awarded:   result.Awarded,
		NewTarget: result.NewTarget,
	})
	c.publish(g, model.EventShake, nil)

	c.logger.Info("match",
		slog.String("game_id", string(g.session.ID)),
		slog.Int("cleared", len(result.Cleared)),
		slog.Int("score", g.session.Score),
	)

	switch g.session.Mode {
	case model.ModeClassic:
		// Classic pacing: every match pushes a new row immediately
		c.requestRowAdd(ctx, g, false)
	case model.ModeTime:
		// A match grants a fresh full countdown, no row add
		g.session.TimeLeft = model.TimeModeLimit
		c.stopCountdown(g)
		c.startCountdown(g)
	}
}

// requestRowAdd is the sole path by which the grid grows. If a block
// already occupies the top row the round ends instead, leaving the
// grid untouched. Caller holds g.mu.
func (c *Controller) requestRowAdd(ctx context.Context, g *liveGame, forced bool) {
	if g.grid.IsOverflowing() {
		c.endRound(ctx, g)
		return
	}

	c.gridService.AddBottomRow(g.grid)
	c.publish(g, model.EventRowSpawned, model.RowSpawnedPayload{Forced: forced})
}

// endRound transitions to gameover: the countdown is torn down, the
// score frozen, and a record of the round persisted. Caller holds g.mu.
func (c *Controller) endRound(ctx context.Context, g *liveGame) {
	c.stopCountdown(g)
	g.session.Status = model.StatusGameOver
	c.touch(g)

	record := &model.GameRecord{
		GameID:   g.session.ID,
		Mode:     g.session.Mode,
		Score:    g.session.Score,
		Duration: c.clock.Now().Sub(g.session.StartedAt),
		EndedAt:  c.clock.Now(),
	}
	if err := c.storage.SaveGameRecord(ctx, record); err != nil {
		c.logger.Warn("could not save game record",
			slog.String("game_id", string(g.session.ID)),
			slog.String("error", err.Error()),
		)
	}

	c.publish(g, model.EventGameOver, model.GameOverPayload{
		Score:        g.session.Score,
		HighScore:    g.session.HighScore,
		NewHighScore: g.newHigh,
	})

	c.logger.Info("game over",
		slog.String("game_id", string(g.session.ID)),
		slog.String("mode", string(g.session.Mode)),
		slog.Int("score", g.session.Score),
		slog.Bool("new_high_score", g.newHigh),
	)
}

// startCountdown launches the once-per-second tick for time mode.
// Caller holds g.mu; any previous countdown must already be stopped.
func (c *Controller) startCountdown(g *liveGame) {
	id := g.session.ID
	g.countdown = scheduler.Start(c.clock, time.Second, func() {
		c.tick(id)
	})
}

// stopCountdown tears down the countdown if one is running. Caller
// holds g.mu. Stop never blocks, so a tick waiting on g.mu cannot
// deadlock; it will observe the status change and bail.
func (c *Controller) stopCountdown(g *liveGame) {
	if g.countdown != nil {
		g.countdown.Stop()
		g.countdown = nil
	}
}

// tick handles one second elapsing in time mode
func (c *Controller) tick(id model.GameID) {
	g, err := c.lookup(id)
	if err != nil {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// The countdown may already be torn down by the time a late tick
	// acquires the lock
	if g.session.Status != model.StatusPlaying || g.session.Mode != model.ModeTime {
		return
	}

	g.session.TimeLeft--
	if g.session.TimeLeft <= 0 {
		c.requestRowAdd(context.Background(), g, true)
		if g.session.Status == model.StatusPlaying {
			g.session.TimeLeft = model.TimeModeLimit
		} else {
			g.session.TimeLeft = 0
		}
	}

	c.publishState(g)
}

// touch refreshes the session's updated timestamp. Caller holds g.mu.
func (c *Controller) touch(g *liveGame) {
	g.session.UpdatedAt = c.clock.Now()
}

// publish emits one event if a sink is attached. Caller holds g.mu.
func (c *Controller) publish(g *liveGame, eventType model.EventType, payload any) {
	if c.sink == nil {
		return
	}
	c.sink.Publish(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    g.session.ID,
		Payload:   payload,
	})
}

// publishState emits a full state snapshot. Caller holds g.mu.
func (c *Controller) publishState(g *liveGame) {
	c.publish(g, model.EventStateChanged, snapshot(g))
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context) (State, error)
	GetState(ctx context.Context, id model.GameID) (State, error)
	StartGame(ctx context.Context, id model.GameID, mode model.Mode) (State, error)
	RestartGame(ctx context.Context, id model.GameID) (State, error)
	GoHome(ctx context.Context, id model.GameID) (State, error)
	OpenTutorial(ctx context.Context, id model.GameID) (State, error)
	CloseTutorial(ctx context.Context, id model.GameID) (State, error)
	SelectBlock(ctx context.Context, id model.GameID, blockID model.BlockID) (State, error)
	CloseGame(ctx context.Context, id model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
