package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/prismslide/internal/board"
	"github.com/vovakirdan/prismslide/internal/catalog"
	"github.com/vovakirdan/prismslide/internal/config"
)

// loadGame resolves the catalogue and config into an assembled board with
// its starting tokens.
func loadGame() (*board.Board, []board.Token, config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, cfg, err
	}

	modules, err := catalog.Load(flagModules)
	if err != nil {
		return nil, nil, cfg, err
	}

	boardCfg, err := cfg.Game.BoardConfig()
	if err != nil {
		return nil, nil, cfg, err
	}

	b, err := board.Build(boardCfg, modules)
	if err != nil {
		return nil, nil, cfg, err
	}

	tokens, err := cfg.Game.TokenList()
	if err != nil {
		return nil, nil, cfg, err
	}
	if err := board.ValidateTokens(b, tokens); err != nil {
		return nil, nil, cfg, fmt.Errorf("invalid token layout: %w", err)
	}

	return b, tokens, cfg, nil
}

// maxStates resolves the search ceiling: the flag wins over the config.
func maxStates(cfg config.Config) int {
	if flagMaxStates > 0 {
		return flagMaxStates
	}
	return cfg.Solver.MaxStates
}

// parseGoal resolves a goal argument: either a goal ID from the assembled
// board or an "x,y" coordinate pair.
func parseGoal(b *board.Board, arg string) (board.Goal, error) {
	if g, ok := b.GoalByID(arg); ok {
		return g, nil
	}

	parts := strings.SplitN(arg, ",", 2)
	if len(parts) == 2 {
		x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
		y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errX == nil && errY == nil {
			pos := board.C(x, y)
			if g, ok := b.GoalAt(pos); ok {
				return g, nil
			}
			// A bare coordinate target: accept any color
			return board.Goal{Pos: pos, Color: board.ColorAny}, nil
		}
	}

	return board.Goal{}, fmt.Errorf("unknown goal %q: use a goal ID or x,y coordinates", arg)
}
