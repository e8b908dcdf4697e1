package entity

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
)

const (
	MinSideLength     = 3
	DefaultSideLength = 3
)

// Markable is the part of a board that can be marked and queried.
type Markable interface {
	MarkAt(position int, marker Marker) error
	MarkerAt(position int) (Marker, error)
	OpenPositions() []int
	CenterSquare() int
}

// LineSource is the part of a board that knows its winning lines.
type LineSource interface {
	WinningLines() []Line
	LineMarkers(line Line) []Marker
}

// Grid is everything the opponent needs to see of a board.
type Grid interface {
	Markable
	LineSource
}

// Board is a square grid with an odd side length. Positions are numbered
// 1..sideLength² in reading order and every position always has a square.
type Board struct {
	sideLength int
	positions  []int
	squares    map[int]*Square
}

func NewBoard(sideLength int) (*Board, error) {
	board := &Board{}
	if err := board.Configure(sideLength); err != nil {
		return nil, err
	}

	return board, nil
}

// ValidateSideLength - a side length must be odd and at least MinSideLength.
func ValidateSideLength(sideLength int) error {
	if sideLength < MinSideLength || sideLength%2 == 0 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidConfiguration, sideLength)
	}

	return nil
}

// Configure - rebuilds all positions and squares, every square ends up empty.
func (that *Board) Configure(sideLength int) error {
	if err := ValidateSideLength(sideLength); err != nil {
		return err
	}

	count := sideLength * sideLength
	positions := make([]int, count)
	squares := make(map[int]*Square, count)

	for i := range positions {
		positions[i] = i + 1
		squares[i+1] = &Square{}
	}

	that.sideLength = sideLength
	that.positions = positions
	that.squares = squares

	return nil
}

func (that *Board) SideLength() int {
	return that.sideLength
}

func (that *Board) Positions() []int {
	return slices.Clone(that.positions)
}

func (that *Board) Contains(position int) bool {
	_, ok := that.squares[position]
	return ok
}

func (that *Board) MarkerAt(position int) (Marker, error) {
	square, ok := that.squares[position]
	if !ok {
		return EmptyMarker, fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	}

	return square.Marker, nil
}

func (that *Board) MarkAt(position int, marker Marker) error {
	if marker.IsEmpty() {
		return fmt.Errorf("%w: can't mark with an empty marker", apperror.ErrInvalidMarker)
	}

	square, ok := that.squares[position]
	if !ok {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	}

	if err := square.Mark(marker); err != nil {
		return fmt.Errorf("%w: %d", err, position)
	}

	return nil
}

// OpenPositions - positions of the empty squares in reading order.
func (that *Board) OpenPositions() []int {
	open := make([]int, 0, len(that.positions))
	for _, position := range that.positions {
		if that.squares[position].IsEmpty() {
			open = append(open, position)
		}
	}

	return open
}

func (that *Board) IsFull() bool {
	return len(that.OpenPositions()) == 0
}

// CenterSquare - the middle cell, at 1-based index sideLength²/2 + 1.
func (that *Board) CenterSquare() int {
	if len(that.positions) == 0 {
		return 0
	}

	return that.positions[len(that.positions)/2]
}

// WinningMarker - the marker of the first completed line, rows first, then
// columns, the diagonal and the anti-diagonal.
func (that *Board) WinningMarker() (Marker, bool) {
	for _, line := range that.WinningLines() {
		markers := that.LineMarkers(line)
		if IsWinningLine(markers) {
			return markers[0], true
		}
	}

	return EmptyMarker, false
}

type boardJSON struct {
	SideLength int      `json:"side_length"`
	Squares    []Marker `json:"squares"`
}

func (that *Board) MarshalJSON() ([]byte, error) {
	squares := make([]Marker, len(that.positions))
	for i, position := range that.positions {
		squares[i] = that.squares[position].Marker
	}

	return json.Marshal(boardJSON{
		SideLength: that.sideLength,
		Squares:    squares,
	})
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	if err := that.Configure(raw.SideLength); err != nil {
		return err
	}

	if len(raw.Squares) != len(that.positions) {
		return fmt.Errorf("%w: %d squares for side length %d",
			apperror.ErrInvalidConfiguration, len(raw.Squares), raw.SideLength)
	}

	for i, marker := range raw.Squares {
		that.squares[i+1].Marker = marker
	}

	return nil
}
