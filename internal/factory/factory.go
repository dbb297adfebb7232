package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/dependencies/clock"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/dependencies/random"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/game"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/grid"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/highscore"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/services/round"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/storage"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/storage/memory"
	redisstorage "github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/storage/redis"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	GridService      *grid.Service
	RoundService     *round.Service
	HighScoreService *highscore.Service
	GameController   *game.Controller
	HubManager       *sse.HubManager
	Broadcaster      *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	gridService := grid.New(rnd)
	roundService := round.New(rnd)
	highScoreService := highscore.New(store, logger)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)
	gameController := game.NewController(gridService, roundService, highScoreService, store, clk, rnd, broadcaster, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		Random:           rnd,
		GridService:      gridService,
		RoundService:     roundService,
		HighScoreService: highScoreService,
		GameController:   gameController,
		HubManager:       hubManager,
		Broadcaster:      broadcaster,
	}
}
