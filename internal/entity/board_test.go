package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Configure(t *testing.T) {
	t.Run("Every odd side length builds a fully open board", func(t *testing.T) {
		for _, sideLength := range []int{3, 5, 7, 9, 11} {
			// When: a board is configured
			board, err := NewBoard(sideLength)
			require.NoError(t, err)

			// Then: all positions are open and in reading order
			open := board.OpenPositions()
			require.Len(t, open, sideLength*sideLength)
			assert.Equal(t, 1, open[0])
			assert.Equal(t, sideLength*sideLength, open[len(open)-1])
			assert.Equal(t, board.Positions(), open)

			// Then: there are 2*sideLength+2 lines, each sideLength long
			lines := board.WinningLines()
			require.Len(t, lines, 2*sideLength+2)
			for _, line := range lines {
				assert.Len(t, line, sideLength)
			}
		}
	})

	t.Run("Rejects even and degenerate side lengths", func(t *testing.T) {
		for _, sideLength := range []int{-3, 0, 1, 2, 4, 6, 10} {
			// When: an invalid side length is configured
			board, err := NewBoard(sideLength)

			// Then: ErrInvalidConfiguration is returned
			require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
			assert.Nil(t, board)
		}
	})

	t.Run("Failed reconfiguration keeps the current board", func(t *testing.T) {
		// Given: a 3x3 board with a marker on it
		board, err := NewBoard(3)
		require.NoError(t, err)
		require.NoError(t, board.MarkAt(5, MarkerX))

		// When: reconfiguring with an even side length
		err = board.Configure(4)

		// Then: the board is left untouched
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
		assert.Equal(t, 3, board.SideLength())
		marker, err := board.MarkerAt(5)
		require.NoError(t, err)
		assert.Equal(t, MarkerX, marker)
	})

	t.Run("Configuring the same size twice leaves an empty board", func(t *testing.T) {
		// Given: a 5x5 board with a few markers
		board, err := NewBoard(5)
		require.NoError(t, err)
		require.NoError(t, board.MarkAt(1, MarkerX))
		require.NoError(t, board.MarkAt(13, MarkerO))

		// When: it is configured again with the same size
		require.NoError(t, board.Configure(5))

		// Then: no markers leak into the new board
		assert.Len(t, board.OpenPositions(), 25)
		_, ok := board.WinningMarker()
		assert.False(t, ok)
	})
}

func TestBoard_MarkAt(t *testing.T) {
	t.Run("Marks an open square", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(3)
		require.NoError(t, err)

		// When: marking position 4
		err = board.MarkAt(4, MarkerO)

		// Then: the square holds the marker and is no longer open
		require.NoError(t, err)
		marker, err := board.MarkerAt(4)
		require.NoError(t, err)
		assert.Equal(t, MarkerO, marker)
		assert.NotContains(t, board.OpenPositions(), 4)
	})

	t.Run("Occupied square is never overwritten", func(t *testing.T) {
		// Given: position 1 marked by X
		board, err := NewBoard(3)
		require.NoError(t, err)
		require.NoError(t, board.MarkAt(1, MarkerX))

		// When: O tries to mark position 1
		err = board.MarkAt(1, MarkerO)

		// Then: ErrSquareOccupied is returned and X stays
		require.ErrorIs(t, err, apperror.ErrSquareOccupied)
		marker, err := board.MarkerAt(1)
		require.NoError(t, err)
		assert.Equal(t, MarkerX, marker)
	})

	t.Run("Positions outside the grid are rejected", func(t *testing.T) {
		board, err := NewBoard(3)
		require.NoError(t, err)

		for _, position := range []int{-1, 0, 10, 25} {
			// When: marking outside the grid
			err = board.MarkAt(position, MarkerX)

			// Then: ErrInvalidPosition is returned
			require.ErrorIs(t, err, apperror.ErrInvalidPosition)
		}

		assert.Len(t, board.OpenPositions(), 9)
	})

	t.Run("Empty marker is rejected", func(t *testing.T) {
		board, err := NewBoard(3)
		require.NoError(t, err)

		err = board.MarkAt(1, EmptyMarker)

		require.ErrorIs(t, err, apperror.ErrInvalidMarker)
	})
}

func TestBoard_CenterSquare(t *testing.T) {
	tests := map[int]int{3: 5, 5: 13, 7: 25, 9: 41}

	for sideLength, center := range tests {
		board, err := NewBoard(sideLength)
		require.NoError(t, err)

		assert.Equal(t, center, board.CenterSquare(), "side length %d", sideLength)
	}
}

func TestBoard_WinningMarker(t *testing.T) {
	t.Run("Full row wins immediately", func(t *testing.T) {
		// Given: a 5x5 board where X fills the first row while O plays the second
		board, err := NewBoard(5)
		require.NoError(t, err)

		for i := 1; i <= 4; i++ {
			require.NoError(t, board.MarkAt(i, MarkerX))
			require.NoError(t, board.MarkAt(i+5, MarkerO))

			_, ok := board.WinningMarker()
			require.False(t, ok)
		}

		// When: X completes the row
		require.NoError(t, board.MarkAt(5, MarkerX))

		// Then: X is the winner although most squares are open
		winner, ok := board.WinningMarker()
		require.True(t, ok)
		assert.Equal(t, MarkerX, winner)
		assert.False(t, board.IsFull())
	})

	t.Run("Column and both diagonals are detected", func(t *testing.T) {
		tests := []struct {
			name      string
			positions []int
		}{
			{name: "second column", positions: []int{2, 5, 8}},
			{name: "diagonal", positions: []int{1, 5, 9}},
			{name: "anti-diagonal", positions: []int{7, 5, 3}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				board, err := NewBoard(3)
				require.NoError(t, err)

				for _, position := range tt.positions {
					require.NoError(t, board.MarkAt(position, MarkerO))
				}

				winner, ok := board.WinningMarker()
				require.True(t, ok)
				assert.Equal(t, MarkerO, winner)
			})
		}
	})

	t.Run("Tie leaves no winner on a full board", func(t *testing.T) {
		// Given: X,O,X / O,X,O / O,X,O
		board, err := NewBoard(3)
		require.NoError(t, err)

		layout := []Marker{
			MarkerX, MarkerO, MarkerX,
			MarkerO, MarkerX, MarkerO,
			MarkerO, MarkerX, MarkerO,
		}
		for i, marker := range layout {
			require.NoError(t, board.MarkAt(i+1, marker))
		}

		// When: asking for the winner
		_, ok := board.WinningMarker()

		// Then: there is none and the board is full
		assert.False(t, ok)
		assert.True(t, board.IsFull())
		assert.Empty(t, board.OpenPositions())
	})
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Encoded board decodes to the same squares", func(t *testing.T) {
		// Given: a 5x5 board with two markers
		board, err := NewBoard(5)
		require.NoError(t, err)
		require.NoError(t, board.MarkAt(1, MarkerX))
		require.NoError(t, board.MarkAt(25, MarkerO))

		// When: it is encoded and decoded
		data, err := json.Marshal(board)
		require.NoError(t, err)

		var decoded Board
		require.NoError(t, json.Unmarshal(data, &decoded))

		// Then: both boards hold the same markers
		assert.Equal(t, 5, decoded.SideLength())
		assert.Equal(t, board.OpenPositions(), decoded.OpenPositions())
		marker, err := decoded.MarkerAt(25)
		require.NoError(t, err)
		assert.Equal(t, MarkerO, marker)
	})

	t.Run("Mismatched square count is rejected", func(t *testing.T) {
		var board Board

		err := json.Unmarshal([]byte(`{"side_length":3,"squares":["X","O"]}`), &board)

		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
	})

	t.Run("Even side length is rejected", func(t *testing.T) {
		var board Board

		err := json.Unmarshal([]byte(`{"side_length":4,"squares":[]}`), &board)

		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
	})
}
