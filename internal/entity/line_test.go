package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Lines(t *testing.T) {
	t.Run("3x3 lines", func(t *testing.T) {
		board, err := NewBoard(3)
		require.NoError(t, err)

		assert.Equal(t, []Line{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, board.Rows())
		assert.Equal(t, []Line{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, board.Columns())
		assert.Equal(t, Line{1, 5, 9}, board.Diagonal())
		assert.Equal(t, Line{7, 5, 3}, board.AntiDiagonal())
	})

	t.Run("5x5 diagonals run corner to corner", func(t *testing.T) {
		board, err := NewBoard(5)
		require.NoError(t, err)

		assert.Equal(t, Line{1, 7, 13, 19, 25}, board.Diagonal())
		assert.Equal(t, Line{21, 17, 13, 9, 5}, board.AntiDiagonal())
	})

	t.Run("Lines come rows first, then columns, then diagonals", func(t *testing.T) {
		board, err := NewBoard(3)
		require.NoError(t, err)

		lines := board.WinningLines()

		assert.Equal(t, Line{1, 2, 3}, lines[0])
		assert.Equal(t, Line{1, 4, 7}, lines[3])
		assert.Equal(t, Line{1, 5, 9}, lines[6])
		assert.Equal(t, Line{7, 5, 3}, lines[7])
	})

	t.Run("Changing a returned line doesn't touch the board", func(t *testing.T) {
		board, err := NewBoard(3)
		require.NoError(t, err)

		rows := board.Rows()
		rows[0][0] = 42

		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, board.Positions())
	})
}

func TestIsWinningLine(t *testing.T) {
	tests := []struct {
		name    string
		markers []Marker
		want    bool
	}{
		{name: "all X", markers: []Marker{MarkerX, MarkerX, MarkerX}, want: true},
		{name: "all custom", markers: []Marker{"#", "#", "#", "#", "#"}, want: true},
		{name: "one empty", markers: []Marker{MarkerX, EmptyMarker, MarkerX}, want: false},
		{name: "all empty", markers: []Marker{EmptyMarker, EmptyMarker, EmptyMarker}, want: false},
		{name: "mixed", markers: []Marker{MarkerX, MarkerO, MarkerX}, want: false},
		{name: "no markers", markers: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWinningLine(tt.markers))
		})
	}
}

func TestIsThreatLine(t *testing.T) {
	tests := []struct {
		name    string
		markers []Marker
		marker  Marker
		want    bool
	}{
		{name: "two and an empty", markers: []Marker{MarkerO, EmptyMarker, MarkerO}, marker: MarkerO, want: true},
		{name: "opponent's threat", markers: []Marker{MarkerO, EmptyMarker, MarkerO}, marker: MarkerX, want: false},
		{name: "already won", markers: []Marker{MarkerO, MarkerO, MarkerO}, marker: MarkerO, want: false},
		{name: "blocked", markers: []Marker{MarkerO, MarkerX, MarkerO}, marker: MarkerO, want: false},
		{name: "two empties", markers: []Marker{MarkerO, EmptyMarker, EmptyMarker}, marker: MarkerO, want: false},
		{
			name:    "four and an empty on 5x5",
			markers: []Marker{MarkerX, MarkerX, EmptyMarker, MarkerX, MarkerX},
			marker:  MarkerX,
			want:    true,
		},
		{
			name:    "third marker disqualifies on 5x5",
			markers: []Marker{MarkerX, MarkerX, EmptyMarker, MarkerO, MarkerX},
			marker:  MarkerX,
			want:    false,
		},
		{name: "empty marker never threatens", markers: []Marker{EmptyMarker, EmptyMarker, MarkerX}, marker: EmptyMarker, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsThreatLine(tt.markers, tt.marker))
		})
	}
}

func TestThreatPosition(t *testing.T) {
	t.Run("Returns the open position", func(t *testing.T) {
		position, ok := ThreatPosition(Line{7, 5, 3}, []Marker{MarkerX, EmptyMarker, MarkerX}, MarkerX)

		require.True(t, ok)
		assert.Equal(t, 5, position)
	})

	t.Run("No position for a line that isn't a threat", func(t *testing.T) {
		_, ok := ThreatPosition(Line{1, 2, 3}, []Marker{MarkerX, EmptyMarker, EmptyMarker}, MarkerX)

		assert.False(t, ok)
	})
}
