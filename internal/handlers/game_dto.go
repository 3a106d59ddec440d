package handlers

import (
	"errors"
	"fmt"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

// CreateNewGameDTO takes either a preset name or explicit dimensions.
// Missing fields fall back to the server defaults.
type CreateNewGameDTO struct {
	Preset    string `schema:"preset"`
	Height    *int   `schema:"height"`
	Width     *int   `schema:"width"`
	MineCount *int   `schema:"mine_count"`
}

var ErrUnknownPreset = errors.New("unknown preset")

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

func (dto CreateNewGameDTO) Params(defaults mines.GameParams) (mines.GameParams, error) {
	params := defaults
	if dto.Preset != "" {
		preset, ok := mines.Presets[dto.Preset]
		if !ok {
			return params, fmt.Errorf("%w %q", ErrUnknownPreset, dto.Preset)
		}
		params = preset
	}
	if dto.Height != nil {
		params.Height = *dto.Height
	}
	if dto.Width != nil {
		params.Width = *dto.Width
	}
	if dto.MineCount != nil {
		params.MineCount = *dto.MineCount
	}
	return params, params.Validate()
}

type Position struct {
	Row    int `schema:"row,required"`
	Column int `schema:"column,required"`
}

func ParsePosition(src map[string][]string) (Position, error) {
	var pos Position
	err := decoder.Decode(&pos, src)
	return pos, err
}

type GameSessionDTO struct {
	GameSessionID string     `json:"game_session_id"`
	Grid          mines.Grid `json:"grid"`
	Height        int        `json:"height"`
	Width         int        `json:"width"`
	MineCount     int        `json:"mine_count"`
	Status        string     `json:"status"`
	StartedAt     int64      `json:"started_at"`
	EndedAt       *int64     `json:"ended_at,omitempty"`
	Token         string     `json:"token,omitempty"`
}

func NewGameSessionDTO(snap session.Snapshot) *GameSessionDTO {
	var endedAt *int64
	if snap.EndedAt != nil {
		e := snap.EndedAt.UnixMilli()
		endedAt = &e
	}
	return &GameSessionDTO{
		GameSessionID: snap.ID.String(),
		Grid:          snap.Grid,
		Height:        snap.Params.Height,
		Width:         snap.Params.Width,
		MineCount:     snap.Params.MineCount,
		Status:        snap.Status.String(),
		StartedAt:     snap.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
}
