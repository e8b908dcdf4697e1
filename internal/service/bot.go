package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/gridgame/internal/entity"
	"github.com/rocketscienceinc/gridgame/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	ChooseMove(board entity.Grid, ownMark, opponentMark entity.Marker) (int, error)
	MakeTurn(game *entity.Game) (int, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService - rnd is only consulted when no line needs attention and the center is taken.
func NewBotService(rnd *rand.Rand) BotService {
	return &botService{rnd: rnd}
}

// ChooseMove - completes its own line, else blocks the opponent's, else takes the center,
// else picks a random open square.
func (that *botService) ChooseMove(board entity.Grid, ownMark, opponentMark entity.Marker) (int, error) {
	openPositions := board.OpenPositions()
	if len(openPositions) == 0 {
		return 0, ErrNoAvailableMoves
	}

	if position, ok := findThreat(board, ownMark); ok {
		return position, nil
	}

	if position, ok := findThreat(board, opponentMark); ok {
		return position, nil
	}

	center := board.CenterSquare()
	if marker, err := board.MarkerAt(center); err == nil && marker.IsEmpty() {
		return center, nil
	}

	return openPositions[that.rnd.Intn(len(openPositions))], nil
}

func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	position, err := that.ChooseMove(game.Board, game.ComputerMark, game.HumanMark)
	if err != nil {
		return 0, err
	}

	if err = tictactoe.MakeTurn(game, game.ComputerMark, position); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return position, nil
}

func findThreat(board entity.LineSource, marker entity.Marker) (int, bool) {
	for _, line := range board.WinningLines() {
		if position, ok := entity.ThreatPosition(line, board.LineMarkers(line), marker); ok {
			return position, true
		}
	}

	return 0, false
}
