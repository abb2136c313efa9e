package main

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol16/model"
	"github.com/sheikhrachel/gol16/utils"
)

// game owns the two board buffers and the generation counter for one run
type game struct {
	cur, next  model.Board
	generation int

	config   utils.Config
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	logger   *utils.Logger

	lastFrameTime time.Time
	stableLogged  bool
	extinctLogged bool
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer, logger *utils.Logger) (*game, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] invalid config")
	}

	seed, err := model.LookupSeed(config.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to load seed")
	}

	live, dead := config.Markers()
	return &game{
		cur:           seed,
		config:        config,
		renderer:      model.NewTerminalRenderer(out, live, dead),
		stats:         utils.NewStats(),
		logger:        logger,
		lastFrameTime: time.Now(),
	}, nil
}

// run steps the game until ctx is cancelled or the configured generation limit is reached
func (g *game) run(ctx context.Context) error {
	delay := g.config.Delay()
	for {
		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			g.logger.Infof("reached generation limit (%d)", g.config.MaxGenerations)
			return nil
		}

		if err := g.step(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
	}
}

// step renders the current board, then advances it by one generation
func (g *game) step() error {
	if err := g.renderer.Display(&g.cur, g.generation); err != nil {
		return errors.Wrap(err, "[step] failed to render")
	}

	g.cur.NextGeneration(&g.next)
	g.observe()
	g.cur.CopyFrom(&g.next)
	g.generation++

	now := time.Now()
	g.stats.Update(g.generation, g.cur.CountLivingCells(), now.Sub(g.lastFrameTime))
	g.lastFrameTime = now
	return nil
}

// observe logs the first generation at which the board dies out or stops changing
func (g *game) observe() {
	if g.next == g.cur {
		if !g.stableLogged {
			g.logger.Infof("board is stable from generation %d", g.generation)
			g.stableLogged = true
		}
	} else {
		g.stableLogged = false
	}

	if g.next.CountLivingCells() == 0 {
		if !g.extinctLogged {
			g.logger.Infof("all cells dead at generation %d", g.generation+1)
			g.extinctLogged = true
		}
	} else {
		g.extinctLogged = false
	}
}
