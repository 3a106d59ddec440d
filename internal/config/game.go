package config

import (
	"fmt"
	"os"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// NewGameParams reads the parameters used when a client asks for a new game
// without specifying any. GAME_PRESET wins over the individual variables.
func NewGameParams() (*mines.GameParams, error) {
	if name, ok := os.LookupEnv("GAME_PRESET"); ok {
		preset, ok := mines.Presets[name]
		if !ok {
			return nil, fmt.Errorf("unknown GAME_PRESET %q", name)
		}
		return &preset, nil
	}

	def := mines.DefaultParams

	height, err := lookupInt("GAME_HEIGHT", def.Height)
	if err != nil {
		return nil, err
	}
	width, err := lookupInt("GAME_WIDTH", def.Width)
	if err != nil {
		return nil, err
	}
	mineCount, err := lookupInt("GAME_MINE_COUNT", def.MineCount)
	if err != nil {
		return nil, err
	}

	params := &mines.GameParams{Height: height, Width: width, MineCount: mineCount}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game defaults: %w", err)
	}
	return params, nil
}
