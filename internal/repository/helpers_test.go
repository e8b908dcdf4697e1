package repository

import (
	"testing"

	"github.com/rocketscienceinc/gridgame/internal/entity"
	"github.com/rocketscienceinc/gridgame/internal/tictactoe"
	"github.com/stretchr/testify/require"
)

func newTestMatch(t *testing.T, id string) *entity.Match {
	t.Helper()

	board, err := entity.NewBoard(5)
	require.NoError(t, err)

	game := tictactoe.NewGame(board, entity.MarkerX, entity.MarkerO, entity.MarkerX)
	require.NoError(t, tictactoe.MakeTurn(game, entity.MarkerX, 13))

	return &entity.Match{
		ID:        id,
		Human:     entity.NewHumanPlayer("Ann", entity.MarkerX),
		Computer:  entity.NewComputerPlayer("Computer", entity.MarkerO),
		Game:      game,
		WinTarget: entity.DefaultWinTarget,
	}
}

func requireSameMatch(t *testing.T, expected, actual *entity.Match) {
	t.Helper()

	require.Equal(t, expected.ID, actual.ID)
	require.Equal(t, expected.Human, actual.Human)
	require.Equal(t, expected.Computer, actual.Computer)
	require.Equal(t, expected.WinTarget, actual.WinTarget)
	require.Equal(t, expected.Game.Status, actual.Game.Status)
	require.Equal(t, expected.Game.Turn, actual.Game.Turn)
	require.Equal(t, expected.Game.Board.SideLength(), actual.Game.Board.SideLength())
	require.Equal(t, expected.Game.Board.OpenPositions(), actual.Game.Board.OpenPositions())
}
