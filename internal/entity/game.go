package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
)

const (
	StatusAwaitingHumanMove    = "awaiting_human_move"
	StatusAwaitingComputerMove = "awaiting_computer_move"
	StatusRoundOver            = "round_over"
	StatusMatchOver            = "match_over"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the state of a single round.
type Game struct {
	Board        *Board `json:"board"`
	HumanMark    Marker `json:"human_mark"`
	ComputerMark Marker `json:"computer_mark"`
	FirstTurn    Marker `json:"first_turn"`
	Turn         Marker `json:"turn"`
	Winner       Marker `json:"winner,omitempty"`
	Tie          bool   `json:"tie,omitempty"`
	Status       string `json:"status"`
}

// StatusFor - the awaiting status that matches the marker due to move.
func (that *Game) StatusFor(turn Marker) string {
	if turn == that.ComputerMark {
		return StatusAwaitingComputerMove
	}

	return StatusAwaitingHumanMove
}

func (that *Game) IsHumanTurn() bool {
	return that.Status == StatusAwaitingHumanMove
}

func (that *Game) IsComputerTurn() bool {
	return that.Status == StatusAwaitingComputerMove
}

func (that *Game) IsRoundOver() bool {
	return that.Status == StatusRoundOver
}

func (that *Game) IsMatchOver() bool {
	return that.Status == StatusMatchOver
}

// IsFinished - no more moves can be made on this board.
func (that *Game) IsFinished() bool {
	return that.IsRoundOver() || that.IsMatchOver()
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsHumanTurn(), that.IsComputerTurn():
		return nil
	case that.IsRoundOver():
		return apperror.ErrRoundOver
	case that.IsMatchOver():
		return apperror.ErrMatchOver
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
