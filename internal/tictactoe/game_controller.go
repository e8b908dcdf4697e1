package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/entity"
)

// NewGame - starts a round on the given board, firstTurn decides who moves first.
func NewGame(board *entity.Board, humanMark, computerMark, firstTurn entity.Marker) *entity.Game {
	game := &entity.Game{
		Board:        board,
		HumanMark:    humanMark,
		ComputerMark: computerMark,
		FirstTurn:    firstTurn,
		Turn:         firstTurn,
	}
	game.Status = game.StatusFor(firstTurn)

	return game
}

// MakeTurn - applies a move of marker to position and moves the round to its next state.
func MakeTurn(game *entity.Game, marker entity.Marker, position int) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if game.Turn != marker {
		return apperror.ErrNotYourTurn
	}

	if err := game.Board.MarkAt(position, marker); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	updateGameStatus(game, marker)

	return nil
}

// ResetGame - clears the board for a new round with the same size and opener.
func ResetGame(game *entity.Game) error {
	if err := game.Board.Configure(game.Board.SideLength()); err != nil {
		return fmt.Errorf("failed to reset board: %w", err)
	}

	game.Winner = entity.EmptyMarker
	game.Tie = false
	game.Turn = game.FirstTurn
	game.Status = game.StatusFor(game.FirstTurn)

	return nil
}

// updateGameStatus - checks the round status after a move.
func updateGameStatus(game *entity.Game, marker entity.Marker) {
	if winner, ok := game.Board.WinningMarker(); ok {
		game.Winner = winner
		game.Status = entity.StatusRoundOver

		return
	}

	if game.Board.IsFull() {
		game.Tie = true
		game.Status = entity.StatusRoundOver

		return
	}

	game.Turn = toggleMark(game, marker)
	game.Status = game.StatusFor(game.Turn)
}

func toggleMark(game *entity.Game, currentMark entity.Marker) entity.Marker {
	if currentMark == game.HumanMark {
		return game.ComputerMark
	}

	return game.HumanMark
}
