package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type GameParams struct {
	Height, Width, MineCount int
}

// MaxCells bounds the area of a board.
const MaxCells = 1 << 20

// DefaultParams is the classic 9x9 board with 10 mines.
var DefaultParams = GameParams{Height: 9, Width: 9, MineCount: 10}

var Presets = map[string]GameParams{
	"beginner":     DefaultParams,
	"intermediate": {Height: 16, Width: 16, MineCount: 40},
	"expert":       {Height: 16, Width: 30, MineCount: 99},
}

func (p GameParams) Unpack() (h int, w int, mc int) {
	return p.Height, p.Width, p.MineCount
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Height, p.Width, p.MineCount)
}

// ParseSeed reads parameters in the "h:w:m" form produced by Seed.
func ParseSeed(seed string) (*GameParams, error) {
	parts := strings.Split(seed, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid game params seed %q: want height:width:mines", seed)
	}
	var values [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid game params seed %q: %w", seed, err)
		}
		values[i] = n
	}
	return &GameParams{Height: values[0], Width: values[1], MineCount: values[2]}, nil
}

// Validate rejects parameters no board can be built from. A mine count
// larger than the board is accepted and capped at placement time.
func (p GameParams) Validate() error {
	if err := checkDimensions(p.Height, p.Width); err != nil {
		return err
	}
	if p.MineCount < 0 {
		return misuse("negative mine count %d", p.MineCount)
	}
	return nil
}

// PresetName returns the name of the preset p matches, or "custom".
func (p GameParams) PresetName() string {
	for _, name := range []string{"beginner", "intermediate", "expert"} {
		if Presets[name] == p {
			return name
		}
	}
	return "custom"
}
